package journal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/jrnl/pkg/store"
)

// ErrUnsupportedDirectory is returned for a journal path that is a directory
// but not a directory journal.
var ErrUnsupportedDirectory = errors.New("journal: directory is not a directory journal")

// OpenOptions tune OpenJournal.
type OpenOptions struct {
	// Legacy reads file journals in the jrnl 1.x format.
	Legacy bool
	// Encrypted builds the storage of journals with encrypt set.
	Encrypted func(cfg store.Journal) (store.Storage, error)

	Logger *log.Logger
	Prompt io.Writer
	Now    func() time.Time
}

// OpenJournal picks the storage for cfg, then opens and parses the journal.
func OpenJournal(ctx context.Context, name string, cfg store.Journal, o OpenOptions) (*Journal, error) {
	path, err := store.ExpandPath(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("journal: expand %q: %w", cfg.Path, err)
	}
	cfg.Path = path

	opts := []Option{WithLogger(o.Logger), WithPrompt(o.Prompt), WithClock(o.Now)}

	var target store.Target
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		if !store.IsDirectoryJournal(path) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedDirectory, path)
		}
		target = store.NewDirectory(path)
	} else {
		if o.Legacy {
			opts = append(opts, Legacy())
		}
		if cfg.Encrypt {
			if o.Encrypted == nil {
				return nil, fmt.Errorf("journal %s: %w", name, store.ErrEncryptionUnavailable)
			}
			s, err := o.Encrypted(cfg)
			if err != nil {
				return nil, fmt.Errorf("journal %s: %w", name, err)
			}
			target = s
		} else {
			target = store.NewFile(path)
		}
	}

	j := New(name, cfg, target, opts...)
	if err := j.Open(ctx); err != nil {
		return nil, err
	}
	return j, nil
}

// BackupSuffix is appended to the path of a journal saved before an upgrade.
const BackupSuffix = ".backup"

// Upgrade rewrites a jrnl 1.x journal in the current format after saving
// the original next to it. It returns the upgraded journal.
func Upgrade(ctx context.Context, name string, cfg store.Journal, o OpenOptions) (*Journal, error) {
	if cfg.Encrypt {
		return nil, fmt.Errorf("journal %s: upgrade: %w", name, store.ErrEncryptionUnavailable)
	}
	o.Legacy = true
	old, err := OpenJournal(ctx, name, cfg, o)
	if err != nil {
		return nil, err
	}
	src, ok := old.target.(store.Storage)
	if !ok {
		return nil, fmt.Errorf("journal %s: upgrade: %s is not a legacy file journal", name, old.target.Locator())
	}

	text, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	backup := store.NewFile(src.Locator() + BackupSuffix)
	if err := backup.Store(ctx, text); err != nil {
		return nil, fmt.Errorf("journal %s: backup: %w", name, err)
	}

	upgraded := New(name, old.Config, src, WithLogger(old.log), WithPrompt(old.prompt), WithClock(old.now))
	upgraded.Entries = old.Entries
	if err := upgraded.Write(ctx); err != nil {
		return nil, err
	}
	upgraded.log.Debug("upgraded journal", "name", name, "entries", upgraded.Len(), "backup", backup.Locator())
	return upgraded, nil
}
