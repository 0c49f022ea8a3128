package cmd

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/elitexpro/dao-dao-contracts/cwd-codegen/codegen"
	"github.com/elitexpro/dao-dao-contracts/cwd-codegen/conf"
	"github.com/elitexpro/dao-dao-contracts/logger"
)

func RootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cwd-codegen",
		Short: "Generate clients for every contract and package schema directory.",
		Long: `Scans <root>/contracts and <root>/packages for schema directories and runs the
client generator for each of them in parallel.

Configured through the environment (CWD_CODEGEN_ROOT, CWD_CODEGEN_OUT_DIR,
CWD_CODEGEN_COMMAND, CWD_CODEGEN_ALLOW, CWD_CODEGEN_MAX_PARALLEL,
CWD_CODEGEN_METRICS_FILE, CWD_CODEGEN_CONFIG) and the verbosity level
CWD_CODEGEN_LOG_LEVEL or VERBOSITY: silent, normal, verbose or debug.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := conf.Load()
			if err != nil {
				return err
			}
			gen, err := codegen.NewCommandGenerator(c.Command)
			if err != nil {
				return err
			}
			return Run(cmd.Context(), c, gen, logger.FromEnv("cwd-codegen", c.LogLevel))
		},
	}
}

// Run scans the configured root and generates every discovered job.
func Run(ctx context.Context, c *conf.Conf, gen codegen.Generator, log logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	scanner := &codegen.Scanner{
		Root:      c.Root,
		OutDir:    c.OutDir,
		SchemaDir: c.SchemaDir,
		Allow:     c.Allow,
		Logger:    log,
	}
	jobs, err := scanner.Scan()
	if err != nil {
		return err
	}
	log.Info("discovered schema directories", logger.WithField("jobs", len(jobs)))

	reg := prometheus.NewRegistry()
	err = codegen.RunBatch(ctx, gen, jobs, codegen.BatchOptions{
		MaxParallel: c.MaxParallel,
		Logger:      log,
		Indicators:  codegen.NewIndicators(reg),
	})

	if c.MetricsFile != "" {
		if werr := codegen.WriteTextfile(c.MetricsFile, reg); werr != nil {
			log.Warn("cannot write metrics file", logger.WithField("path", c.MetricsFile), logger.WithError(werr))
		}
	}
	if err != nil {
		return fmt.Errorf("codegen failed:\n%w", err)
	}
	return nil
}
