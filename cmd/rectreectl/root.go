package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("RECTREECTL")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "rectreectl",
		Short:         "Inspect recttree and spatree from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newLayoutCmd(v))
	root.AddCommand(newSpatreeCmd(v))
	return root
}
