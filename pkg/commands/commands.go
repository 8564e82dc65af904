package commands

import (
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jrnl/pkg/commands/options"
	"tableflip.dev/jrnl/pkg/logger"
)

var (
	output = &options.OutputOptions{}
	root   = &options.RootOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "jrnl",
		Short: base.Wrap80("Collect your thoughts and notes without leaving the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Install(logger.New(os.Stderr, root.Debug))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddRootArgs(cmd, root)
	_ = cmd.RegisterFlagCompletionFunc("journal", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return journalCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addTags(topLevel)
	addEdit(topLevel)
	addImport(topLevel)
	addUpgrade(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
