package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	homedir "github.com/mitchellh/go-homedir"
)

type installFile struct {
	Editor          string            `toml:"editor"`
	Encrypt         bool              `toml:"encrypt"`
	DefaultHour     int               `toml:"default_hour"`
	DefaultMinute   int               `toml:"default_minute"`
	Timeformat      string            `toml:"timeformat"`
	Tagsymbols      string            `toml:"tagsymbols"`
	Highlight       bool              `toml:"highlight"`
	Linewrap        int               `toml:"linewrap"`
	IndentCharacter string            `toml:"indent_character"`
	Journals        map[string]string `toml:"journals"`
}

// DefaultConfigPath is where a first run writes its config file.
func DefaultConfigPath() (string, error) {
	if override := os.Getenv("JRNL_CONFIG_PATH"); override != "" {
		return filepath.Join(override, configName+"."+configType), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("store: locate home directory: %w", err)
	}
	return filepath.Join(home, configName+"."+configType), nil
}

// Install writes a config file with the default options and a single
// default journal at journalPath. An existing file is left alone.
func Install(path, journalPath string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: stat config: %w", err)
	}

	d := DefaultJournalConfig()
	out := installFile{
		Editor:          os.Getenv("EDITOR"),
		Encrypt:         d.Encrypt,
		DefaultHour:     d.DefaultHour,
		DefaultMinute:   d.DefaultMinute,
		Timeformat:      d.Timeformat,
		Tagsymbols:      d.Tagsymbols,
		Highlight:       d.Highlight,
		Linewrap:        d.Linewrap,
		IndentCharacter: d.IndentCharacter,
		Journals:        map[string]string{DefaultJournal: journalPath},
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("store: ensure config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("store: create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(out); err != nil {
		_ = f.Close()
		return fmt.Errorf("store: encode config: %w", err)
	}
	return f.Close()
}
