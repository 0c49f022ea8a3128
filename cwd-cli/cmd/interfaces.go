package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	cwdmacros "github.com/elitexpro/dao-dao-contracts/cwd-macros"
)

func interfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interfaces [key]",
		Short: "List the registered interfaces, or show the variants of one.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			if len(args) == 0 {
				for _, key := range cwdmacros.Keys() {
					d, err := cwdmacros.Lookup(key)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\n", key, strings.Join(d.Names(), ", "))
				}
				return nil
			}

			key, err := cwdmacros.ParseInterfaceKey(args[0])
			if err != nil {
				return err
			}
			d, err := cwdmacros.Lookup(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s: %s\n", d.Key, d.Doc)
			for _, v := range d.Variants {
				fmt.Fprintf(w, "%s\t%s\t%s\n", v.Name, signature(v), v.Returns)
			}
			return nil
		},
	}
}

func signature(v cwdmacros.VariantSpec) string {
	switch v.Kind {
	case cwdmacros.PayloadUnit:
		return ""
	case cwdmacros.PayloadTuple:
		if len(v.Fields) == 1 {
			return "(" + v.Fields[0].Type + ")"
		}
		return "()"
	}
	fields := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		fields = append(fields, f.Name+": "+f.Type)
	}
	return "{" + strings.Join(fields, ", ") + "}"
}
