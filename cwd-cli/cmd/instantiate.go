package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cwdinterface "github.com/elitexpro/dao-dao-contracts/cwd-interface"
)

// instantiateMsgCmd previews the wasm message a DAO dispatches for a
// ModuleInstantiateInfo, with the admin resolved against --contract.
func instantiateMsgCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "instantiate-msg <module-info.json>",
		Short: "Print the wasm instantiate message built from a module instantiate info.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			info, err := cwdinterface.UnmarshalModuleInstantiateInfo(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			contract, _ := cmd.Flags().GetString("contract")
			if info.Admin != nil && info.Admin.Instantiator != nil && contract == "" {
				return fmt.Errorf("%s: admin is the instantiator, --contract is required", args[0])
			}

			msg := info.IntoWasmMsg(contract)
			out, err := msg.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	command.Flags().String("contract", "", "Address of the contract doing the instantiation")
	return command
}
