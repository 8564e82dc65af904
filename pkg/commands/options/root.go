// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// RootOptions are the flags every command accepts.
type RootOptions struct {
	Journal string
	Debug   bool
}

func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().StringVarP(&o.Journal, "journal", "j", "",
		"Name of the journal to use, as configured.")
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false,
		"Print information useful for troubleshooting.")
}
