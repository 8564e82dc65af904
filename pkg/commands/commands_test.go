package commands

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	homedir.DisableCache = true
	t.Setenv("HOME", dir)
	t.Setenv("JRNL_CONFIG_PATH", dir)
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	root.Journal = ""
	root.Debug = false
	return dir
}

func TestNewRegistersCommands(t *testing.T) {
	cmd := New()
	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"add", "completion", "edit", "get", "import", "info", "tags", "upgrade", "version"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected command %q in %v", want, names)
		}
	}
	if cmd.PersistentFlags().Lookup("journal") == nil || cmd.PersistentFlags().Lookup("debug") == nil {
		t.Fatalf("expected the global flags")
	}
}

func TestLoadConfigInstallsOnFirstRun(t *testing.T) {
	dir := isolate(t)
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != filepath.Join(dir, ".jrnl.toml") {
		t.Fatalf("expected the installed config, got %q", cfg.File)
	}
	if got := cfg.Names(); !reflect.DeepEqual(got, []string{"default"}) {
		t.Fatalf("unexpected journals %v", got)
	}
}

func TestAddThenImport(t *testing.T) {
	dir := isolate(t)

	cmd := New()
	cmd.SetArgs([]string{"add", "2020-02-28 18:00:", "Dinner", "with", "@alice."})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("add: %v", err)
	}
	path := filepath.Join(dir, "journal.txt")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "[2020-02-28 18:00] Dinner with @alice.\n" {
		t.Fatalf("unexpected journal %q", b)
	}

	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(other, []byte("[2019-01-01 10:00] Old.\n\n[2020-02-28 18:00] Dinner with @alice.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cmd = New()
	cmd.SetArgs([]string{"import", other})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("import: %v", err)
	}
	b, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(b), "[2019-01-01 10:00] Old.\n\n[2020-02-28 18:00]") {
		t.Fatalf("unexpected journal %q", b)
	}
}

func TestUnknownJournal(t *testing.T) {
	isolate(t)
	cmd := New()
	cmd.SetArgs([]string{"-j", "nope", "get"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected unknown journal error")
	}
}

func TestJournalCompletions(t *testing.T) {
	dir := isolate(t)
	config := "[journals]\ndefault = \"~/journal.txt\"\nwork = \"~/work.txt\"\nwriting = \"~/writing.txt\"\n"
	if err := os.WriteFile(filepath.Join(dir, ".jrnl.toml"), []byte(config), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := journalCompletions("w"); !reflect.DeepEqual(got, []string{"work", "writing"}) {
		t.Fatalf("unexpected completions %v", got)
	}
}
