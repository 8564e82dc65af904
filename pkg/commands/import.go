package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/jrnl/pkg/runner/imports"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import entries from another journal file, or from stdin.",
		Example: `
jrnl import ~/old-journal.txt
cat ~/old-journal.txt | jrnl -j work import
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			j, _, err := openJournal(ctx)
			if err != nil {
				return err
			}

			var src io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}
			s := imports.Import{
				Journal: j,
				Source:  src,
			}
			return s.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
