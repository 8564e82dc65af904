package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jrnl/pkg/journal"
)

// FilterOptions select entries.
type FilterOptions struct {
	OnOptions

	From    string
	Until   string
	And     bool
	Starred bool
	Limit   int
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		`Show entries on or after this date, example: --from="last week".`)
	cmd.Flags().StringVar(&o.Until, "until", "",
		`Show entries on or before this date, example: --until=2020-03.`)
	cmd.Flags().BoolVar(&o.And, "and", false,
		"Require all tags given rather than any of them.")
	cmd.Flags().BoolVar(&o.Starred, "starred", false,
		"Show only starred entries.")
	cmd.Flags().IntVarP(&o.Limit, "number", "n", 0,
		"Show only the last n matching entries.")
	AddOnArgs(cmd, &o.OnOptions)
}

// Filter turns the flags and the tags given as arguments into a journal filter.
// --on overrides --from and --until.
func (o *FilterOptions) Filter(tags []string) journal.Filter {
	f := journal.Filter{
		Tags:    tags,
		Start:   o.From,
		End:     o.Until,
		Starred: o.Starred,
		Strict:  o.And,
	}
	if o.OnString != "" {
		f.Start, f.End = o.Range()
	}
	return f
}
