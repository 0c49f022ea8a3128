package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elitexpro/dao-dao-contracts/cwd-cli/conf"
	cwdinterface "github.com/elitexpro/dao-dao-contracts/cwd-interface"
)

// versionCmd answers the way the Info query of a module does.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version as an InfoResponse.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := cwdinterface.InfoResponse{
				Info: cwdinterface.ContractVersion{
					Contract: conf.Name,
					Version:  conf.GetVersion(),
				},
			}
			raw, err := info.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}
}
