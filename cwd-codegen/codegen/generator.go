package codegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/iancoleman/strcase"
)

// DefaultCommand generates a typescript client for one contract.
const DefaultCommand = "cosmwasm-ts-codegen generate --plugin client --schema {schema} --out {out} --name {pascal} --no-bundle"

var ErrEmptyCommand = errors.New("empty generator command")

type Generator interface {
	Generate(ctx context.Context, job Job) error
}

type GeneratorFunc func(ctx context.Context, job Job) error

func (f GeneratorFunc) Generate(ctx context.Context, job Job) error {
	return f(ctx, job)
}

// CommandGenerator runs an external schema-to-client tool once per job.
// Arguments may reference the job through {name}, {pascal}, {schema}, {out}
// and {category}.
type CommandGenerator struct {
	Path string
	Args []string
}

var _ Generator = (*CommandGenerator)(nil)

func NewCommandGenerator(command string) (*CommandGenerator, error) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil, ErrEmptyCommand
	}
	return &CommandGenerator{Path: parts[0], Args: parts[1:]}, nil
}

func (g *CommandGenerator) Generate(ctx context.Context, job Job) error {
	if err := os.MkdirAll(job.OutDir, 0o755); err != nil {
		return err
	}

	args := make([]string, 0, len(g.Args))
	for _, a := range g.Args {
		args = append(args, expand(a, job))
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, g.Path, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w\n%s", g.Path, strings.Join(args, " "), err, out.String())
	}
	return nil
}

func expand(arg string, job Job) string {
	return strings.NewReplacer(
		"{name}", job.Name,
		"{pascal}", strcase.ToCamel(job.Name),
		"{schema}", job.SchemaDir,
		"{out}", job.OutDir,
		"{category}", string(job.Category),
	).Replace(arg)
}
