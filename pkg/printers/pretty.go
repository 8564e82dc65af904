// Package printers renders journals for the terminal.
package printers

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jrnl/pkg/entry"
	"tableflip.dev/jrnl/pkg/journal"
)

// PrettyPrint writes entries and tag counts to Out.
type PrettyPrint struct {
	Out       io.Writer
	Highlight bool
	Symbols   string
	Format    entry.Format

	// Color paints highlighted tags. Defaults to bold cyan.
	Color *color.Color
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) color() *color.Color {
	if pp.Color == nil {
		pp.Color = color.New(color.FgCyan, color.Bold)
	}
	return pp.Color
}

// Journal prints entries. The tags searched for are highlighted wherever
// they occur; without search tags every tag is highlighted.
func (pp *PrettyPrint) Journal(entries []*entry.Entry, searchTags []string) {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Pretty(pp.Format)
	}
	text := ""
	if pp.Format.Short {
		if len(parts) > 0 {
			text = strings.Join(parts, "\n") + "\n"
		}
	} else {
		text = strings.Join(parts, "\n")
	}

	if pp.Highlight {
		text = pp.highlight(text, searchTags)
	}
	_, _ = fmt.Fprint(pp.out(), text)
}

func (pp *PrettyPrint) highlight(text string, searchTags []string) string {
	c := pp.color()
	if len(searchTags) == 0 {
		return highlightGroup(text, entry.TagPattern(pp.Symbols), c)
	}
	for _, tag := range searchTags {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(tag))
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			return c.Sprint(m)
		})
	}
	return text
}

// highlightGroup paints the first capture group of every match of re.
func highlightGroup(text string, re *regexp.Regexp, c *color.Color) string {
	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[2]])
		b.WriteString(c.Sprint(text[m[2]:m[3]]))
		last = m[3]
	}
	b.WriteString(text[last:])
	return b.String()
}

// Tags prints a table of tags and their entry counts.
func (pp *PrettyPrint) Tags(tags []journal.Tag) {
	if len(tags) == 0 {
		_, _ = fmt.Fprintln(pp.out(), "[No tags found in journal.]")
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Tag"), bold.Sprint("Entries"))
	for _, t := range tags {
		tbl.AddRow(t.Name, t.Count)
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}
