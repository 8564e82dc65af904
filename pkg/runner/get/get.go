// Package get prints the entries of a journal that match a filter.
package get

import (
	"context"
	"errors"

	"tableflip.dev/jrnl/pkg/entry"
	"tableflip.dev/jrnl/pkg/journal"
	"tableflip.dev/jrnl/pkg/printers"
)

type Get struct {
	Journal *journal.Journal
	Filter  journal.Filter
	// Limit keeps the last Limit matches; zero keeps all.
	Limit   int
	Short   bool
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Get) Do(_ context.Context) error {
	if n.Journal == nil {
		return errors.New("can not get, no journal")
	}
	j := n.Journal
	search := j.Filter(n.Filter)
	j.Limit(n.Limit)

	pp := n.Printer
	cfg := j.Config
	pp.Highlight = cfg.Highlight
	pp.Symbols = cfg.Tagsymbols
	pp.Format = entry.Format{
		Timeformat: cfg.Timeformat,
		Short:      n.Short,
		Linewrap:   cfg.Linewrap,
		Indent:     cfg.IndentCharacter,
	}

	if n.JSON {
		return pp.JSON(printers.NewJSONJournal(j.Entries, j.Tags(), cfg.Tagsymbols))
	}
	pp.Journal(j.Entries, search)
	return nil
}
