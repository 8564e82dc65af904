package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jrnl/pkg/runner/upgrade"
)

func addUpgrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade journals written by jrnl 1.x to the current format.",
		Long: `Rewrites every configured journal, or the one given with --journal, in
the current format. The original is kept next to it with a .backup suffix.`,
		Example: `
jrnl upgrade
jrnl -j work upgrade
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s := upgrade.Upgrade{
				Config:  cfg,
				Options: openOptions(),
			}
			if root.Journal != "" {
				s.Names = []string{root.Journal}
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
