package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jrnl/pkg/commands/options"
	"tableflip.dev/jrnl/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "get [tags]",
		Short: "Show entries, all of them or those matching tags and dates.",
		Example: `
jrnl get
jrnl get @bob @alice --and
jrnl get --from "last week" --until yesterday -n 5
jrnl get --on 2020-02-28 --short
jrnl get --starred --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			j, _, err := openJournal(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := get.Get{
				Journal: j,
				Filter:  fo.Filter(args),
				Limit:   fo.Limit,
				Short:   output.Short,
				JSON:    output.JSON,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShortArg(cmd, output)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
