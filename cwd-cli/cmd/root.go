package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elitexpro/dao-dao-contracts/cwd-cli/conf"
	"github.com/elitexpro/dao-dao-contracts/logger"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cwd-cli",
		Short:         "Extend DAO DAO message enums with the shared module interfaces.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file, e.g. /path/to/config.toml")
	rootCmd.PersistentFlags().String("log-level", logger.Normal, "Verbosity: silent, normal, verbose or debug")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(interfacesCmd())
	rootCmd.AddCommand(augmentCmd())
	rootCmd.AddCommand(schemaCmd())
	rootCmd.AddCommand(instantiateMsgCmd())
	rootCmd.AddCommand(versionCmd())

	rootCmd.Version = conf.GetVersion()
	return rootCmd
}

func newLogger() logger.Logger {
	return logger.FromEnv(conf.Name, viper.GetString("log-level"))
}
