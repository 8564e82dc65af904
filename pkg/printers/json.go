package printers

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/timefmt-go"

	"tableflip.dev/jrnl/pkg/entry"
	"tableflip.dev/jrnl/pkg/journal"
)

// JSONEntry is the exported form of an entry.
type JSONEntry struct {
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	Starred bool     `json:"starred"`
	Tags    []string `json:"tags"`
}

// JSONJournal is the exported form of a journal listing.
type JSONJournal struct {
	Tags    map[string]int `json:"tags"`
	Entries []JSONEntry    `json:"entries"`
}

// NewJSONJournal converts entries and the tag counts over them.
func NewJSONJournal(entries []*entry.Entry, tags []journal.Tag, symbols string) JSONJournal {
	out := JSONJournal{
		Tags:    make(map[string]int, len(tags)),
		Entries: make([]JSONEntry, 0, len(entries)),
	}
	for _, t := range tags {
		out.Tags[t.Name] = t.Count
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, JSONEntry{
			Title:   e.Title(),
			Body:    e.Body(),
			Date:    timefmt.Format(e.Date, "%Y-%m-%d"),
			Time:    timefmt.Format(e.Date, "%H:%M"),
			Starred: e.Starred,
			Tags:    e.Tags(symbols),
		})
	}
	return out
}

// JSON prints v indented.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
