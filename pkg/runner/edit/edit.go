// Package edit opens the matching entries in an editor and merges the
// result back into the journal.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/jrnl/pkg/editor"
	"tableflip.dev/jrnl/pkg/journal"
)

type Edit struct {
	Journal *journal.Journal
	Filter  journal.Filter
	Limit   int
	Editor  editor.Editor
	Prompt  io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not edit, no journal")
	}
	if n.Editor == nil {
		return editor.ErrNoEditor
	}
	prompt := n.Prompt
	if prompt == nil {
		prompt = os.Stderr
	}
	j := n.Journal

	all := j.Snapshot()
	j.Filter(n.Filter)
	j.Limit(n.Limit)
	shown := j.Snapshot()

	edited, err := n.Editor.Edit(ctx, j.EditableString())
	if err != nil {
		return err
	}
	changes := j.ParseEditable(edited)
	j.Restore(all, shown)

	if changes.Modified == 0 && changes.Deleted == 0 {
		return nil
	}
	if err := j.Write(ctx); err != nil {
		return err
	}
	if changes.Deleted > 0 {
		fmt.Fprintf(prompt, "[%s deleted]\n", count(changes.Deleted))
	}
	if changes.Modified > 0 {
		fmt.Fprintf(prompt, "[%s modified]\n", count(changes.Modified))
	}
	return nil
}

func count(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
