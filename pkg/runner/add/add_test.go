package add

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/jrnl/pkg/editor"
	"tableflip.dev/jrnl/pkg/journal"
	"tableflip.dev/jrnl/pkg/store"
)

var fixedNow = time.Date(2020, time.June, 15, 12, 30, 0, 0, time.Local)

func openJournal(t *testing.T) (*journal.Journal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.txt")
	cfg := store.DefaultJournalConfig()
	cfg.Path = path
	j, err := journal.OpenJournal(context.Background(), "default", cfg, journal.OpenOptions{
		Prompt: &bytes.Buffer{},
		Now:    func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return j, path
}

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(b)
}

func TestAdd(t *testing.T) {
	j, path := openJournal(t)
	prompt := &bytes.Buffer{}
	a := Add{Journal: j, Text: "yesterday: Went out. Had fun.", Prompt: prompt}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if prompt.String() != "[Entry added to default journal]\n" {
		t.Fatalf("unexpected prompt %q", prompt.String())
	}
	if got := read(t, path); got != "[2020-06-14 09:00] Went out.\nHad fun.\n" {
		t.Fatalf("unexpected journal %q", got)
	}
}

func TestAddFromEditor(t *testing.T) {
	j, path := openJournal(t)
	a := Add{
		Journal: j,
		Editor: editor.Func(func(context.Context, string) (string, error) {
			return "Written in the editor.\n", nil
		}),
		Prompt: &bytes.Buffer{},
	}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := read(t, path); !strings.HasPrefix(got, "[2020-06-15 12:30] Written in the editor.") {
		t.Fatalf("unexpected journal %q", got)
	}
}

func TestAddNothing(t *testing.T) {
	j, path := openJournal(t)
	prompt := &bytes.Buffer{}
	a := Add{Journal: j, Text: "  \n", Prompt: prompt}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("an empty entry is not an error, got %v", err)
	}
	if prompt.String() != "[Nothing saved to file]\n" {
		t.Fatalf("unexpected prompt %q", prompt.String())
	}
	if got := read(t, path); got != "" {
		t.Fatalf("expected an empty journal, got %q", got)
	}
}
