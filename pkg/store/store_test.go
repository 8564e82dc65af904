package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	homedir "github.com/mitchellh/go-homedir"

	"tableflip.dev/jrnl/pkg/entry"
)

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := NewFile(filepath.Join(t.TempDir(), "nested", "journal.txt"))
	if f.Exists() {
		t.Fatalf("expected journal to be missing")
	}
	if err := f.Create(); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !f.Exists() {
		t.Fatalf("expected journal after create")
	}
	if text, err := f.Load(ctx); err != nil || text != "" {
		t.Fatalf("expected empty journal, got %q (%v)", text, err)
	}
	want := "[2020-01-01 09:00] Hello.\n"
	if err := f.Store(ctx, want); err != nil {
		t.Fatalf("store: %v", err)
	}
	got, err := f.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDirectoryStoreEntries(t *testing.T) {
	ctx := context.Background()
	base := filepath.Join(t.TempDir(), "diary.dayone")
	if !IsDirectoryJournal(base) {
		t.Fatalf("expected suffix to mark a directory journal")
	}

	s := NewDirectory(base)
	if err := s.Create(); err != nil {
		t.Fatalf("create: %v", err)
	}
	d := time.Date(2020, 1, 1, 9, 0, 0, 0, time.Local)
	a := entry.New(d, "First. body", false)
	b := entry.New(d.Add(time.Hour), "Second *", false)
	if err := s.StoreEntries(ctx, []*entry.Entry{a, b}); err != nil {
		t.Fatalf("store: %v", err)
	}

	reopened := NewDirectory(base)
	got, err := reopened.LoadEntries(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	found := 0
	for _, e := range got {
		if e.Equal(a) || e.Equal(b) {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("expected both entries back, got %+v", got)
	}

	if err := reopened.StoreEntries(ctx, []*entry.Entry{a}); err != nil {
		t.Fatalf("store after delete: %v", err)
	}
	files, err := os.ReadDir(filepath.Join(base, EntriesDir))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected one record left, got %d", len(files))
	}
}

func TestIsDirectoryJournalMarker(t *testing.T) {
	base := t.TempDir()
	if IsDirectoryJournal(base) {
		t.Fatalf("plain directory must not be a directory journal")
	}
	if err := os.Mkdir(filepath.Join(base, EntriesDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if !IsDirectoryJournal(base) {
		t.Fatalf("expected entries folder to mark a directory journal")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	homedir.DisableCache = true
	t.Setenv("HOME", dir)
	t.Setenv("JRNL_CONFIG_PATH", dir)
	if body != "" {
		if err := os.WriteFile(filepath.Join(dir, ".jrnl.toml"), []byte(body), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	writeConfig(t, "")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
	j, err := cfg.Journal("")
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	want := DefaultJournalConfig()
	want.Path = "~/journal.txt"
	if j != want {
		t.Fatalf("expected %+v, got %+v", want, j)
	}
}

func TestLoadConfigJournals(t *testing.T) {
	writeConfig(t, `
linewrap = 60
tagsymbols = "@#"

[journals]
default = "~/journal.txt"

[journals.work]
journal = "~/work.txt"
linewrap = 100
encrypt = true
`)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def, err := cfg.Journal("default")
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if def.Path != "~/journal.txt" || def.Linewrap != 60 || def.Tagsymbols != "@#" {
		t.Fatalf("unexpected default journal %+v", def)
	}
	work, err := cfg.Journal("work")
	if err != nil {
		t.Fatalf("work: %v", err)
	}
	if work.Path != "~/work.txt" || work.Linewrap != 100 || !work.Encrypt || work.Tagsymbols != "@#" {
		t.Fatalf("unexpected work journal %+v", work)
	}
	if _, err := cfg.Journal("missing"); err == nil {
		t.Fatalf("expected unknown journal error")
	}
	if got := cfg.Names(); len(got) != 2 || got[0] != "default" || got[1] != "work" {
		t.Fatalf("unexpected names %v", got)
	}
}

func TestInstall(t *testing.T) {
	dir := writeConfig(t, "")
	t.Setenv("EDITOR", "vim")
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if path != filepath.Join(dir, ".jrnl.toml") {
		t.Fatalf("unexpected config path %q", path)
	}
	if err := Install(path, "~/diary.txt"); err != nil {
		t.Fatalf("install: %v", err)
	}
	if err := Install(path, "~/other.txt"); err != nil {
		t.Fatalf("second install: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Editor != "vim" {
		t.Fatalf("expected editor vim, got %q", cfg.Editor)
	}
	j, err := cfg.Journal(DefaultJournal)
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	if j.Path != "~/diary.txt" || j.Timeformat != entry.DefaultTimeformat || !j.Highlight {
		t.Fatalf("unexpected installed journal %+v", j)
	}
}

func TestExpandPath(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("HOME", "/home/someone")
	t.Setenv("JRNL_DIR", "journals")
	got, err := ExpandPath("~/$JRNL_DIR/journal.txt")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != "/home/someone/journals/journal.txt" {
		t.Fatalf("unexpected path %q", got)
	}
}
