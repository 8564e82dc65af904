// Package store persists journals and loads their configuration.
package store

import (
	"context"
	"errors"

	"tableflip.dev/jrnl/pkg/entry"
)

var (
	// ErrUnknownJournal is returned for a journal name missing from the config.
	ErrUnknownJournal = errors.New("store: journal is not configured")
	// ErrEncryptionUnavailable is returned when a journal asks for encryption
	// and no encrypted storage was provided.
	ErrEncryptionUnavailable = errors.New("store: encrypted journals are not supported by this build")
)

// Target is where a journal lives.
type Target interface {
	// Locator names the target for messages, usually a path.
	Locator() string
	Exists() bool
	Create() error
}

// Storage keeps a journal as one block of text.
type Storage interface {
	Target
	Load(ctx context.Context) (string, error)
	Store(ctx context.Context, text string) error
}

// EntryStorage keeps a journal as individual entries.
type EntryStorage interface {
	Target
	LoadEntries(ctx context.Context) ([]*entry.Entry, error)
	StoreEntries(ctx context.Context, entries []*entry.Entry) error
}
