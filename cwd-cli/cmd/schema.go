package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cwdmacros "github.com/elitexpro/dao-dao-contracts/cwd-macros"
	cwdschema "github.com/elitexpro/dao-dao-contracts/cwd-schema"
	"github.com/elitexpro/dao-dao-contracts/logger"
)

func schemaCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "schema <declaration>",
		Short: "Export the JSON schema of every enum of a declaration file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			_, augmented, err := load(args[0])
			if err != nil {
				return err
			}

			if check, _ := cmd.Flags().GetString("check"); check != "" {
				return checkMessage(cmd, augmented, check)
			}

			dir, _ := cmd.Flags().GetString("out")
			if dir == "" {
				dir = filepath.Join(filepath.Dir(args[0]), "schema")
			}
			for _, d := range augmented {
				path, err := cwdschema.Export(dir, d)
				if err != nil {
					return err
				}
				log.Info("exported schema", logger.WithField("enum", d.Name), logger.WithField("path", path))
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	command.Flags().String("out", "", "Schema directory, defaults to schema/ next to the declaration")
	command.Flags().String("check", "", "Validate a JSON message file against the enums instead of exporting")
	return command
}

// checkMessage prints every enum whose schema accepts the message and fails
// when none does.
func checkMessage(cmd *cobra.Command, augmented []cwdmacros.AugmentedEnumDefinition, path string) error {
	if len(augmented) == 0 {
		return fmt.Errorf("no enums to check %s against", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var errs []error
	for _, d := range augmented {
		if err := cwdschema.Build(d).Validate(raw); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Name, err))
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.Name)
	}
	if len(errs) == len(augmented) {
		return fmt.Errorf("%s matches no enum: %w", path, errors.Join(errs...))
	}
	return nil
}
