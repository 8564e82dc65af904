package options

import (
	"github.com/spf13/cobra"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Show entries on this date, example: --on="2020-2-28" or --on=yesterday.`)
}

// Range bounds a filter to the day given with --on. Both are empty when the
// flag is unset.
func (o *OnOptions) Range() (start, end string) {
	return o.OnString, o.OnString
}
