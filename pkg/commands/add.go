package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/jrnl/pkg/editor"
	"tableflip.dev/jrnl/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Compose a new entry.",
		Long: `Compose a new entry from the arguments, from stdin when it is not a
terminal, or in your editor otherwise.

Start the text with a date and a colon to date the entry, end the first
line with a star to star it.`,
		Example: `
jrnl add yesterday: Went to the zoo. Saw @giraffes.
jrnl add "2020-02-28 18:00: Dinner with @alice *"
echo "A thought." | jrnl add
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			j, cfg, err := openJournal(ctx)
			if err != nil {
				return err
			}

			s := add.Add{
				Journal: j,
				Text:    strings.Join(args, " "),
			}
			if s.Text == "" {
				fd := os.Stdin.Fd()
				if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
					if ed, err := editor.FromEnv(cfg.Editor); err == nil {
						s.Editor = ed
					} else {
						fmt.Fprintln(os.Stderr, "[Compose Entry; press Ctrl+D to finish writing]")
					}
				}
				if s.Editor == nil {
					b, err := io.ReadAll(os.Stdin)
					if err != nil {
						return err
					}
					s.Text = string(b)
				}
			}
			return s.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
