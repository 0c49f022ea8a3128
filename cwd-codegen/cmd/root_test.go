package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/elitexpro/dao-dao-contracts/cwd-codegen/codegen"
	"github.com/elitexpro/dao-dao-contracts/cwd-codegen/conf"
	"github.com/elitexpro/dao-dao-contracts/logger"
)

type RootTestSuite struct {
	suite.Suite
	root string
	out  string
}

func TestRoot(t *testing.T) {
	suite.Run(t, new(RootTestSuite))
}

func (s *RootTestSuite) SetupTest() {
	s.root = s.T().TempDir()
	s.out = filepath.Join(s.T().TempDir(), "types")
	for _, dir := range []string{
		"contracts/cwd-core/schema",
		"contracts/voting/cwd-voting-cw4/schema",
		"packages/cwd-interface/schema",
	} {
		s.Require().NoError(os.MkdirAll(filepath.Join(s.root, dir), 0o755))
	}
}

func (s *RootTestSuite) conf() *conf.Conf {
	return &conf.Conf{Root: s.root, OutDir: s.out, SchemaDir: "schema", LogLevel: logger.Silent}
}

func (s *RootTestSuite) Test_Run() {
	var mu sync.Mutex
	var generated []string
	gen := codegen.GeneratorFunc(func(ctx context.Context, job codegen.Job) error {
		mu.Lock()
		defer mu.Unlock()
		generated = append(generated, job.String())
		return nil
	})

	c := s.conf()
	c.MetricsFile = filepath.Join(s.T().TempDir(), "codegen.prom")
	s.Require().NoError(Run(context.Background(), c, gen, logger.NewMockLogger()))

	sort.Strings(generated)
	s.Equal([]string{"contracts/cwd-core", "packages/cwd-interface", "voting/cwd-voting-cw4"}, generated)

	raw, err := os.ReadFile(c.MetricsFile)
	s.Require().NoError(err)
	s.Contains(string(raw), "cwd_codegen_jobs_total")
}

func (s *RootTestSuite) Test_RunFails() {
	gen := codegen.GeneratorFunc(func(ctx context.Context, job codegen.Job) error {
		if job.Name == "cwd-core" {
			return errors.New("cosmwasm-ts-codegen: invalid schema")
		}
		return nil
	})

	err := Run(context.Background(), s.conf(), gen, logger.NewMockLogger())
	s.Require().Error(err)
	s.Contains(err.Error(), "cosmwasm-ts-codegen: invalid schema")
}

func (s *RootTestSuite) Test_Execute() {
	s.T().Setenv("CWD_CODEGEN_ROOT", s.root)
	s.T().Setenv("CWD_CODEGEN_OUT_DIR", s.out)
	s.T().Setenv("CWD_CODEGEN_COMMAND", "touch {out}/{pascal}.client.ts")
	s.T().Setenv("CWD_CODEGEN_LOG_LEVEL", "silent")
	s.T().Setenv("CWD_CODEGEN_ALLOW", "cwd-voting-cw4")

	rootCmd := RootCmd()
	rootCmd.SetArgs([]string{})
	s.Require().NoError(rootCmd.Execute())

	_, err := os.Stat(filepath.Join(s.out, "voting/cwd-voting-cw4/CwdVotingCw4.client.ts"))
	s.NoError(err)
	_, err = os.Stat(filepath.Join(s.out, "contracts/cwd-core"))
	s.True(os.IsNotExist(err))
}

func (s *RootTestSuite) Test_RejectsArgs() {
	rootCmd := RootCmd()
	rootCmd.SetArgs([]string{"extra"})
	s.Error(rootCmd.Execute())
}
