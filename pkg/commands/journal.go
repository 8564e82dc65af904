package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"tableflip.dev/jrnl/pkg/journal"
	"tableflip.dev/jrnl/pkg/store"
)

// loadConfig reads the config file, writing the default one on first run.
func loadConfig() (*store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		return cfg, nil
	}

	path, err := store.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	if err := store.Install(path, "~/"+store.DefaultJournalConfig().Path); err != nil {
		return nil, err
	}
	fmt.Fprintf(os.Stderr, "[Config written to %s]\n", path)
	return store.LoadConfig()
}

func journalName() string {
	if root.Journal == "" {
		return store.DefaultJournal
	}
	return root.Journal
}

func openOptions() journal.OpenOptions {
	return journal.OpenOptions{Logger: log.Default(), Prompt: os.Stderr}
}

// openJournal opens the journal picked with --journal.
func openJournal(ctx context.Context) (*journal.Journal, *store.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	name := journalName()
	jc, err := cfg.Journal(name)
	if err != nil {
		return nil, nil, err
	}

	j, err := journal.OpenJournal(ctx, name, jc, openOptions())
	if errors.Is(err, journal.ErrUnsupportedDirectory) {
		fmt.Fprintf(os.Stderr, "[Error: %s is a directory, but doesn't seem to be a DayOne journal either.]\n", jc.Path)
		os.Exit(1)
	}
	if err != nil {
		return nil, nil, err
	}
	return j, cfg, nil
}
