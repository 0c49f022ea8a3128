package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cwdmacros "github.com/elitexpro/dao-dao-contracts/cwd-macros"
	"github.com/elitexpro/dao-dao-contracts/cwd-macros/msgdef"
	"github.com/elitexpro/dao-dao-contracts/logger"
)

func load(path string) (*msgdef.File, []cwdmacros.AugmentedEnumDefinition, error) {
	f, err := msgdef.Load(path)
	if err != nil {
		return nil, nil, err
	}
	defs, err := f.Definitions()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	augmented, err := cwdmacros.AugmentAll(defs)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, augmented, nil
}

func augmentCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "augment <declaration>",
		Short: "Print the enums of a declaration file with their interface variants merged in.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			f, augmented, err := load(args[0])
			if err != nil {
				return err
			}
			for _, d := range augmented {
				log.Debug("augmented enum", logger.WithField("enum", d.Name), logger.WithField("variants", len(d.Variants)))
			}

			out, err := msgdef.Render(f.Contract, augmented)
			if err != nil {
				return err
			}
			path, _ := cmd.Flags().GetString("out")
			if path == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return err
			}
			log.Info("wrote augmented enums", logger.WithField("path", path))
			return nil
		},
	}
	command.Flags().String("out", "", "Write to this file instead of stdout")
	return command
}
