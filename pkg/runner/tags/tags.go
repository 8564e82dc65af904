// Package tags prints how often each tag is used.
package tags

import (
	"context"
	"errors"
	"sort"

	"tableflip.dev/jrnl/pkg/journal"
	"tableflip.dev/jrnl/pkg/printers"
)

type Tags struct {
	Journal *journal.Journal
	Filter  journal.Filter
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Tags) Do(_ context.Context) error {
	if n.Journal == nil {
		return errors.New("can not count tags, no journal")
	}
	n.Journal.Filter(n.Filter)
	tags := n.Journal.Tags()

	if n.JSON {
		counts := make(map[string]int, len(tags))
		for _, t := range tags {
			counts[t.Name] = t.Count
		}
		return n.Printer.JSON(counts)
	}

	// Most used first.
	sort.SliceStable(tags, func(a, b int) bool { return tags[a].Count > tags[b].Count })
	n.Printer.Tags(tags)
	return nil
}
