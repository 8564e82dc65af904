// Package upgrade converts jrnl 1.x journals to the current format.
package upgrade

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/jrnl/pkg/journal"
	"tableflip.dev/jrnl/pkg/store"
)

type Upgrade struct {
	Config *store.Config
	// Names limits the upgrade to these journals; empty upgrades all.
	Names   []string
	Options journal.OpenOptions
	Prompt  io.Writer
}

func (n *Upgrade) Do(ctx context.Context) error {
	if n.Config == nil {
		return fmt.Errorf("can not upgrade, no config")
	}
	prompt := n.Prompt
	if prompt == nil {
		prompt = os.Stderr
	}
	names := n.Names
	if len(names) == 0 {
		names = n.Config.Names()
	}

	for _, name := range names {
		cfg, err := n.Config.Journal(name)
		if err != nil {
			return err
		}
		if cfg.Encrypt {
			fmt.Fprintf(prompt, "[Skipping encrypted journal '%s']\n", name)
			continue
		}
		path, err := store.ExpandPath(cfg.Path)
		if err != nil {
			return err
		}
		info, err := os.Stat(path)
		switch {
		case err != nil:
			fmt.Fprintf(prompt, "[Journal '%s' not found at %s]\n", name, path)
			continue
		case info.IsDir():
			fmt.Fprintf(prompt, "[Skipping directory journal '%s']\n", name)
			continue
		}
		j, err := journal.Upgrade(ctx, name, cfg, n.Options)
		if err != nil {
			return err
		}
		fmt.Fprintf(prompt, "[Journal '%s' upgraded with %d entries, backup at %s]\n",
			name, j.Len(), j.Target().Locator()+journal.BackupSuffix)
	}
	return nil
}
