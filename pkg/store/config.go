package store

import (
	"errors"
	"fmt"
	"os"
	"sort"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/jrnl/pkg/entry"
)

const (
	// DefaultJournal is the journal used when none is named.
	DefaultJournal = "default"

	configName = ".jrnl"
	configType = "toml"
)

// Journal is the configuration of one journal.
type Journal struct {
	Path            string `json:"journal"`
	Encrypt         bool   `json:"encrypt"`
	DefaultHour     int    `json:"default_hour"`
	DefaultMinute   int    `json:"default_minute"`
	Timeformat      string `json:"timeformat"`
	Tagsymbols      string `json:"tagsymbols"`
	Highlight       bool   `json:"highlight"`
	Linewrap        int    `json:"linewrap"`
	IndentCharacter string `json:"indent_character"`
}

// DefaultJournalConfig holds the options a journal starts with.
func DefaultJournalConfig() Journal {
	return Journal{
		Path:            "journal.txt",
		Encrypt:         false,
		DefaultHour:     9,
		DefaultMinute:   0,
		Timeformat:      entry.DefaultTimeformat,
		Tagsymbols:      entry.DefaultTagSymbols,
		Highlight:       true,
		Linewrap:        80,
		IndentCharacter: "|",
	}
}

// Config is the loaded configuration file.
type Config struct {
	// File is the config file that was read, empty when none was found.
	File     string
	Editor   string
	Journals map[string]Journal
}

// Journal returns the named journal's configuration.
func (c *Config) Journal(name string) (Journal, error) {
	if name == "" {
		name = DefaultJournal
	}
	j, ok := c.Journals[name]
	if !ok {
		return Journal{}, fmt.Errorf("%w: %q", ErrUnknownJournal, name)
	}
	return j, nil
}

// Names lists configured journals in order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Journals))
	for name := range c.Journals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadConfig reads .jrnl.toml from $JRNL_CONFIG_PATH, the home directory or
// the working directory. Top level options apply to every journal; a
// journal given as a table overrides them.
//
//	encrypt = false
//	[journals]
//	default = "~/journal.txt"
//	[journals.work]
//	journal = "~/work.txt"
//	tagsymbols = "@#"
func LoadConfig() (*Config, error) {
	v := viper.New()
	d := DefaultJournalConfig()
	v.SetDefault("editor", os.Getenv("EDITOR"))
	v.SetDefault("journal", "~/"+d.Path)
	v.SetDefault("encrypt", d.Encrypt)
	v.SetDefault("default_hour", d.DefaultHour)
	v.SetDefault("default_minute", d.DefaultMinute)
	v.SetDefault("timeformat", d.Timeformat)
	v.SetDefault("tagsymbols", d.Tagsymbols)
	v.SetDefault("highlight", d.Highlight)
	v.SetDefault("linewrap", d.Linewrap)
	v.SetDefault("indent_character", d.IndentCharacter)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.SetEnvPrefix("JRNL")
	v.AutomaticEnv()

	if override := os.Getenv("JRNL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		File:     v.ConfigFileUsed(),
		Editor:   v.GetString("editor"),
		Journals: make(map[string]Journal),
	}

	globals := Journal{}
	overlay(v, &globals, true)

	for name, raw := range v.GetStringMap("journals") {
		j := globals
		switch val := raw.(type) {
		case string:
			j.Path = val
		case map[string]interface{}:
			if sub := v.Sub("journals." + name); sub != nil {
				overlay(sub, &j, false)
			}
		default:
			continue
		}
		cfg.Journals[name] = j
	}
	if len(cfg.Journals) == 0 {
		cfg.Journals[DefaultJournal] = globals
	}
	return cfg
}

// overlay copies the options set in v onto j; all copies every option,
// defaults included.
func overlay(v *viper.Viper, j *Journal, all bool) {
	set := func(key string) bool { return all || v.IsSet(key) }
	if set("journal") {
		j.Path = v.GetString("journal")
	}
	if set("encrypt") {
		j.Encrypt = v.GetBool("encrypt")
	}
	if set("default_hour") {
		j.DefaultHour = v.GetInt("default_hour")
	}
	if set("default_minute") {
		j.DefaultMinute = v.GetInt("default_minute")
	}
	if set("timeformat") {
		j.Timeformat = v.GetString("timeformat")
	}
	if set("tagsymbols") {
		j.Tagsymbols = v.GetString("tagsymbols")
	}
	if set("highlight") {
		j.Highlight = v.GetBool("highlight")
	}
	if set("linewrap") {
		j.Linewrap = v.GetInt("linewrap")
	}
	if set("indent_character") {
		j.IndentCharacter = v.GetString("indent_character")
	}
}
