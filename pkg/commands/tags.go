package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jrnl/pkg/commands/options"
	"tableflip.dev/jrnl/pkg/runner/tags"
)

func addTags(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "tags [tags]",
		Short: "List tags and how many entries use them.",
		Example: `
jrnl tags
jrnl tags --from 2020-01 --until 2020-03
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			j, _, err := openJournal(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := tags.Tags{
				Journal: j,
				Filter:  fo.Filter(args),
				JSON:    output.JSON,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
