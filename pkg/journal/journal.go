// Package journal turns journal text into an ordered collection of dated
// entries and back, and implements the operations a journal supports:
// sorting, filtering, tag counts, composing entries from free text,
// importing, and reconciling a hand-edited copy.
package journal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/jrnl/pkg/dates"
	"tableflip.dev/jrnl/pkg/entry"
	"tableflip.dev/jrnl/pkg/store"
)

// ErrLegacyReadOnly is returned when writing a journal opened in the legacy format.
var ErrLegacyReadOnly = errors.New("journal: legacy journals are read only, upgrade the journal first")

// Journal owns the entries of one named journal.
type Journal struct {
	Name    string
	Config  store.Journal
	Entries []*entry.Entry

	target store.Target
	dates  *dates.Parser
	log    *log.Logger
	prompt io.Writer
	now    func() time.Time
	legacy bool
}

// Option configures a Journal.
type Option func(*Journal)

// WithLogger sets the logger for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(j *Journal) {
		if l != nil {
			j.log = l
		}
	}
}

// WithPrompt sets where user facing notices are written. Defaults to stderr.
func WithPrompt(w io.Writer) Option {
	return func(j *Journal) {
		if w != nil {
			j.prompt = w
		}
	}
}

// WithClock replaces the wall clock, used for "now" and relative dates.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		if now != nil {
			j.now = now
		}
	}
}

// Legacy reads the journal in the fixed-width format of jrnl 1.x.
func Legacy() Option {
	return func(j *Journal) {
		j.legacy = true
	}
}

// New creates an unopened journal kept in target.
func New(name string, cfg store.Journal, target store.Target, opts ...Option) *Journal {
	j := &Journal{
		Name:    name,
		Config:  cfg,
		Entries: make([]*entry.Entry, 0),
		target:  target,
		log:     log.Default(),
		prompt:  os.Stderr,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	j.dates = dates.New(cfg.Timeformat)
	j.dates.Now = j.now
	return j
}

func (j *Journal) Len() int {
	return len(j.Entries)
}

// Dates is the parser the journal resolves date fragments with.
func (j *Journal) Dates() *dates.Parser {
	return j.dates
}

// Target is where the journal is kept.
func (j *Journal) Target() store.Target {
	return j.target
}

func (j *Journal) String() string {
	return fmt.Sprintf("<Journal %s with %d entries>", j.Name, len(j.Entries))
}

// Open loads and parses the journal, creating the target first when missing.
func (j *Journal) Open(ctx context.Context) error {
	if !j.target.Exists() {
		if err := j.target.Create(); err != nil {
			return err
		}
		fmt.Fprintf(j.prompt, "[Journal '%s' created at %s]\n", j.Name, j.target.Locator())
	}

	switch t := j.target.(type) {
	case store.EntryStorage:
		entries, err := t.LoadEntries(ctx)
		if err != nil {
			return fmt.Errorf("journal: load %s: %w", j.Name, err)
		}
		j.Entries = entries
	case store.Storage:
		text, err := t.Load(ctx)
		if err != nil {
			return fmt.Errorf("journal: load %s: %w", j.Name, err)
		}
		j.Entries = j.parse(text)
	default:
		return fmt.Errorf("journal: %s: unsupported storage %T", j.Name, j.target)
	}
	j.Sort()
	j.log.Debug("opened journal", "name", j.Name, "legacy", j.legacy, "entries", len(j.Entries))
	return nil
}

// Write persists the journal, replacing what the target held.
func (j *Journal) Write(ctx context.Context) error {
	if j.legacy {
		return ErrLegacyReadOnly
	}
	switch t := j.target.(type) {
	case store.EntryStorage:
		return t.StoreEntries(ctx, j.Entries)
	case store.Storage:
		return t.Store(ctx, j.Render())
	default:
		return fmt.Errorf("journal: %s: unsupported storage %T", j.Name, j.target)
	}
}

func (j *Journal) parse(text string) []*entry.Entry {
	if j.legacy {
		return ParseLegacy(text, j.Config.Timeformat, j.now())
	}
	return Parse(text, j.dates)
}

// Render returns the journal in its storage form.
func (j *Journal) Render() string {
	parts := make([]string, len(j.Entries))
	for i, e := range j.Entries {
		parts[i] = e.Render(j.Config.Timeformat)
	}
	return strings.Join(parts, "\n")
}

// Sort orders entries by date. Entries sharing a date keep their order.
func (j *Journal) Sort() {
	sort.SliceStable(j.Entries, func(a, b int) bool {
		return j.Entries[a].Date.Before(j.Entries[b].Date)
	})
}

// Limit keeps the last n entries. n <= 0 keeps everything.
func (j *Journal) Limit(n int) {
	if n > 0 && n < len(j.Entries) {
		j.Entries = j.Entries[len(j.Entries)-n:]
	}
}

// Filter describes which entries to keep.
type Filter struct {
	// Tags to look for; empty places no constraint on tags.
	Tags []string
	// Start and End are date fragments bounding the entry dates, both
	// inclusive. End resolves to the end of the period it names.
	Start string
	End   string
	// Starred keeps starred entries only.
	Starred bool
	// Strict requires every tag to be present rather than any.
	Strict bool
}

// Filter removes the entries that do not match f and returns the tags
// searched for, lower-cased and sorted, for highlighting.
func (j *Journal) Filter(f Filter) []string {
	search := make(map[string]struct{}, len(f.Tags))
	for _, tag := range f.Tags {
		search[strings.ToLower(tag)] = struct{}{}
	}
	searchTags := make([]string, 0, len(search))
	for tag := range search {
		searchTags = append(searchTags, tag)
	}
	sort.Strings(searchTags)

	var start, end time.Time
	hasStart, hasEnd := false, false
	if f.Start != "" {
		start, hasStart = j.dates.Parse(f.Start)
	}
	if f.End != "" {
		end, hasEnd = j.dates.Parse(f.End, dates.Inclusive())
	}

	result := make([]*entry.Entry, 0, len(j.Entries))
	for _, e := range j.Entries {
		if len(search) > 0 && !j.tagged(e, search, f.Strict) {
			continue
		}
		if f.Starred && !e.Starred {
			continue
		}
		if hasStart && e.Date.Before(start) {
			continue
		}
		if hasEnd && e.Date.After(end) {
			continue
		}
		result = append(result, e)
	}
	j.Entries = result
	return searchTags
}

func (j *Journal) tagged(e *entry.Entry, search map[string]struct{}, strict bool) bool {
	matched := 0
	for tag := range search {
		if e.HasTag(j.Config.Tagsymbols, tag) {
			matched++
		}
	}
	if strict {
		return matched == len(search)
	}
	return matched > 0
}

// Tag is a tag and the number of entries carrying it.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Tags counts, for every tag, the entries that carry it, ordered by count
// then name.
func (j *Journal) Tags() []Tag {
	counts := make(map[string]int)
	for _, e := range j.Entries {
		for _, tag := range e.Tags(j.Config.Tagsymbols) {
			counts[tag]++
		}
	}
	tags := make([]Tag, 0, len(counts))
	for name, count := range counts {
		tags = append(tags, Tag{Name: name, Count: count})
	}
	sort.Slice(tags, func(a, b int) bool {
		if tags[a].Count != tags[b].Count {
			return tags[a].Count < tags[b].Count
		}
		return tags[a].Name < tags[b].Name
	})
	return tags
}

// firstLine ends where the title of a composed entry ends.
var firstLine = regexp.MustCompile(`\n|[?!.]+ +\n?`)

// NewEntry composes an entry from raw user input and adds it to the journal.
// Without an explicit date, a "<date>: " prefix on the first line is used
// when it resolves; otherwise the entry is dated now. A star right before
// the colon, or at either end of the first line, stars the entry.
func (j *Journal) NewEntry(raw string, date *time.Time, sorted bool) *entry.Entry {
	raw = strings.ReplaceAll(raw, `\n `, "\n")
	raw = strings.ReplaceAll(raw, `\n`, "\n")

	firstEnd := len(raw)
	if loc := firstLine.FindStringIndex(raw); loc != nil {
		firstEnd = loc[1]
	}
	first := strings.TrimSpace(raw[:firstEnd])

	starred := false
	var when time.Time
	found := false
	if date != nil {
		when, found = *date, true
	} else if colon := strings.Index(raw[:firstEnd], ": "); colon > 0 {
		prefix := strings.TrimSpace(raw[:colon])
		star := strings.HasSuffix(prefix, "*")
		prefix = strings.TrimRight(prefix, "* ")
		if d, ok := j.dates.Parse(prefix, dates.DefaultTime(j.Config.DefaultHour, j.Config.DefaultMinute)); ok {
			when, found = d, true
			starred = star
			raw = strings.TrimSpace(raw[colon+1:])
		}
	}
	starred = starred || strings.HasPrefix(first, "*") || strings.HasSuffix(first, "*")
	if !found {
		when, _ = j.dates.Parse("now")
	}

	e := entry.New(when, raw, starred)
	e.Modified = true
	j.Entries = append(j.Entries, e)
	if sorted {
		j.Sort()
	}
	return e
}

// EditableString renders the journal for editing by hand; ParseEditable
// reads the result back.
func (j *Journal) EditableString() string {
	return j.Render()
}

// Changes summarises a reconciliation.
type Changes struct {
	Modified int
	Deleted  int
}

// ParseEditable replaces the entries with those parsed from edited. An entry
// is marked modified when no equal entry existed before; entries missing
// from edited are gone.
func (j *Journal) ParseEditable(edited string) Changes {
	before := make(map[string]struct{}, len(j.Entries))
	for _, e := range j.Entries {
		before[e.Key()] = struct{}{}
	}
	previous := len(j.Entries)

	parsed := Parse(edited, j.dates)
	changes := Changes{}
	for _, e := range parsed {
		_, existed := before[e.Key()]
		e.Modified = !existed
		if e.Modified {
			changes.Modified++
		}
	}
	if n := previous - len(parsed); n > 0 {
		changes.Deleted = n
	}
	j.Entries = parsed
	j.log.Debug("reconciled edited journal", "name", j.Name, "modified", changes.Modified, "deleted", changes.Deleted)
	return changes
}

// Import merges the entries found in text, skipping those already present,
// and returns how many were added. Existing entries come first among
// entries sharing a date.
func (j *Journal) Import(text string) int {
	seen := make(map[string]struct{}, len(j.Entries))
	for _, e := range j.Entries {
		seen[e.Key()] = struct{}{}
	}
	added := 0
	for _, e := range Parse(text, j.dates) {
		if _, ok := seen[e.Key()]; ok {
			continue
		}
		seen[e.Key()] = struct{}{}
		j.Entries = append(j.Entries, e)
		added++
	}
	j.Sort()
	j.log.Debug("imported entries", "name", j.Name, "added", added)
	return added
}

// Snapshot copies the current entry list, for restoring entries a filter
// removed.
func (j *Journal) Snapshot() []*entry.Entry {
	return append([]*entry.Entry(nil), j.Entries...)
}

// Restore adds back the entries of snapshot that were not among shown, then
// sorts. After editing a filtered journal, shown is what the editor saw.
func (j *Journal) Restore(snapshot, shown []*entry.Entry) {
	touched := make(map[*entry.Entry]struct{}, len(shown))
	for _, e := range shown {
		touched[e] = struct{}{}
	}
	for _, e := range snapshot {
		if _, ok := touched[e]; ok {
			continue
		}
		j.Entries = append(j.Entries, e)
	}
	j.Sort()
}
