package imports

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/jrnl/pkg/journal"
	"tableflip.dev/jrnl/pkg/store"
)

func TestImport(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.txt")
	if err := os.WriteFile(path, []byte("[2020-01-02 09:00] Existing.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := store.DefaultJournalConfig()
	cfg.Path = path
	j, err := journal.OpenJournal(ctx, "work", cfg, journal.OpenOptions{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	prompt := &bytes.Buffer{}
	other := "[2020-01-01 09:00] Imported.\n\n[2020-01-02 09:00] Existing.\n"
	n := Import{Journal: j, Source: strings.NewReader(other), Prompt: prompt}
	if err := n.Do(ctx); err != nil {
		t.Fatalf("import: %v", err)
	}
	if prompt.String() != "[1 imported to work journal]\n" {
		t.Fatalf("unexpected prompt %q", prompt.String())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "[2020-01-01 09:00] Imported.\n\n[2020-01-02 09:00] Existing.\n" {
		t.Fatalf("unexpected journal %q", b)
	}
}

func TestImportWithoutSource(t *testing.T) {
	j := journal.New("work", store.DefaultJournalConfig(), store.NewFile(filepath.Join(t.TempDir(), "j.txt")))
	n := Import{Journal: j}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected an error without a source")
	}
}
