// Package entry holds the dated record a journal is made of, together with
// the derivations read off its text: title, body, starring and tags.
package entry

import (
	"regexp"
	"strings"
	"time"
)

// Entry is one dated journal record. Text is the single source of truth:
// title, body and tags are derived from it on demand.
type Entry struct {
	Date    time.Time
	Text    string
	Starred bool

	// Modified is set while reconciling an edited journal and when an entry
	// is composed by the user. It is not part of the entry's identity.
	Modified bool
}

// New creates an entry and applies the star markers found on its first line.
func New(date time.Time, text string, starred bool) *Entry {
	e := &Entry{
		Date:    date,
		Text:    text,
		Starred: starred,
	}
	e.DetectStar()
	return e
}

// sentenceEnd finds the end of the title: a newline, or a run of sentence
// terminals with an optional closing quote or bracket followed by whitespace.
var sentenceEnd = regexp.MustCompile(`[.!?\x{203C}\x{203D}\x{2047}-\x{2049}\x{3002}\x{FE52}\x{FE57}\x{FF01}\x{FF0E}\x{FF1F}\x{FF61}]+['"\x{2019}\x{201D}]?[\])]*\s+|\n`)

// Split separates text into its title and body. Both are trimmed. Text
// without a sentence boundary is all title.
func Split(text string) (string, string) {
	loc := sentenceEnd.FindStringIndex(text)
	if loc == nil {
		return strings.TrimSpace(text), ""
	}
	return strings.TrimSpace(text[:loc[1]]), strings.TrimSpace(text[loc[1]:])
}

// DetectStar marks the entry starred when its first line starts or ends
// with a star. Text is left untouched.
func (e *Entry) DetectStar() {
	first := e.Text
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	first = strings.TrimSpace(first)
	if strings.HasPrefix(first, "*") || strings.HasSuffix(first, "*") {
		e.Starred = true
	}
}

// Title is the first sentence or line of the entry without star markers.
func (e *Entry) Title() string {
	title, _ := Split(e.Text)
	return strings.TrimSpace(strings.Trim(title, "*"))
}

// Body is everything after the title. A star left alone on the rest of the
// first line is a marker, not body text.
func (e *Entry) Body() string {
	_, body := Split(e.Text)
	if body == "*" || strings.HasPrefix(body, "*\n") {
		body = strings.TrimSpace(body[1:])
	}
	return body
}

// Key identifies an entry by its date and the title and body its text
// denotes, so text re-read from storage matches the entry it was written from.
func (e *Entry) Key() string {
	var b strings.Builder
	b.WriteString(e.Date.Format("2006-01-02T15:04:05.999999999"))
	if e.Starred {
		b.WriteString(" *")
	}
	b.WriteByte('\x00')
	b.WriteString(e.Title())
	b.WriteByte('\x00')
	b.WriteString(strings.TrimRight(e.Body(), " \n"))
	return b.String()
}

// Equal reports structural equality. Modified is ignored.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Date.Equal(other.Date) && e.Key() == other.Key()
}
