package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bindFlags binds each named pflag on cmd into v, so values resolve in the
// usual Viper precedence order (explicit flag, then RECTREECTL_* env var,
// then the flag's default).
func bindFlags(cmd *cobra.Command, v *viper.Viper, names ...string) error {
	for _, name := range names {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
