package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/jrnl/pkg/entry"
)

const (
	// DirectorySuffix marks a directory journal by name.
	DirectorySuffix = ".dayone"
	// EntriesDir holds one record per entry inside a directory journal.
	EntriesDir = "entries"

	recordExt = ".json"
)

// IsDirectoryJournal reports whether path is a directory laid out as a
// directory journal: named with DirectorySuffix or holding an entries folder.
func IsDirectoryJournal(path string) bool {
	if strings.HasSuffix(strings.TrimRight(path, string(os.PathSeparator)), DirectorySuffix) {
		return true
	}
	info, err := os.Stat(filepath.Join(path, EntriesDir))
	return err == nil && info.IsDir()
}

type record struct {
	Date    entry.Timestamp `json:"date"`
	Text    string          `json:"text"`
	Starred bool            `json:"starred,omitempty"`
}

// Directory keeps each entry in its own file under <path>/entries, keyed by
// a UUID.
type Directory struct {
	path string
	d    *diskv.Diskv

	// keys maps an entry's identity to the record holding it.
	keys map[string]string
}

// NewDirectory returns directory storage rooted at path.
func NewDirectory(path string) *Directory {
	return &Directory{
		path: path,
		d: diskv.New(diskv.Options{
			BasePath:          filepath.Join(path, EntriesDir),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		keys: make(map[string]string),
	}
}

func (s *Directory) Locator() string {
	return s.path
}

func (s *Directory) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.IsDir()
}

func (s *Directory) Create() error {
	if err := os.MkdirAll(filepath.Join(s.path, EntriesDir), 0o755); err != nil {
		return fmt.Errorf("store: ensure entries directory: %w", err)
	}
	return nil
}

func (s *Directory) read(key string) (*entry.Entry, error) {
	val, err := s.d.Read(key)
	if err != nil {
		return nil, err
	}
	rec := record{}
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, err
	}
	return entry.New(rec.Date.Time, rec.Text, rec.Starred), nil
}

// LoadEntries reads every record. Unreadable records are reported on stderr
// and skipped.
func (s *Directory) LoadEntries(ctx context.Context) ([]*entry.Entry, error) {
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	all := make([]*entry.Entry, 0, len(keys))
	s.keys = make(map[string]string, len(keys))
	for _, key := range keys {
		e, err := s.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		s.keys[e.Key()] = key
		all = append(all, e)
	}
	return all, ctx.Err()
}

// StoreEntries writes entries that are new or changed since the last load and
// erases the records of entries no longer present.
func (s *Directory) StoreEntries(ctx context.Context, entries []*entry.Entry) error {
	if err := s.Create(); err != nil {
		return err
	}
	kept := make(map[string]string, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		id := e.Key()
		if _, dup := kept[id]; dup {
			continue
		}
		if key, ok := s.keys[id]; ok {
			kept[id] = key
			continue
		}
		key := newKey()
		data, err := json.Marshal(record{Date: entry.Timestamp{Time: e.Date}, Text: e.Text, Starred: e.Starred})
		if err != nil {
			return err
		}
		if err := s.d.Write(key, data); err != nil {
			return fmt.Errorf("store: write entry: %w", err)
		}
		kept[id] = key
	}

	live := make(map[string]struct{}, len(kept))
	for _, key := range kept {
		live[key] = struct{}{}
	}
	for _, key := range s.keys {
		if _, ok := live[key]; ok {
			continue
		}
		if err := s.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase entry: %w", err)
		}
	}
	s.keys = kept
	return nil
}

func newKey() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + recordExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, recordExt)
}
