package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jrnl/pkg/commands/options"
	"tableflip.dev/jrnl/pkg/editor"
	"tableflip.dev/jrnl/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "edit [tags]",
		Short: "Edit the matching entries in your editor.",
		Long: `Opens the matching entries in the configured editor. Changed entries
are saved, entries removed from the text are deleted, and entries that did
not match are left alone.`,
		Example: `
jrnl edit -n 1
jrnl edit @work --from yesterday
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			j, cfg, err := openJournal(ctx)
			if err != nil {
				return err
			}
			ed, err := editor.FromEnv(cfg.Editor)
			if err != nil {
				return err
			}
			s := edit.Edit{
				Journal: j,
				Filter:  fo.Filter(args),
				Limit:   fo.Limit,
				Editor:  ed,
			}
			return s.Do(ctx)
		},
	}

	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
