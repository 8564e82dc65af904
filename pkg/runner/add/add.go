// Package add composes a new entry and saves it.
package add

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/jrnl/pkg/editor"
	"tableflip.dev/jrnl/pkg/journal"
)

type Add struct {
	Journal *journal.Journal
	// Text is the raw entry. When empty, Editor composes it.
	Text   string
	Editor editor.Editor
	Prompt io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not add, no journal")
	}
	prompt := n.Prompt
	if prompt == nil {
		prompt = os.Stderr
	}

	text := n.Text
	if strings.TrimSpace(text) == "" && n.Editor != nil {
		var err error
		if text, err = n.Editor.Edit(ctx, ""); err != nil {
			return err
		}
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(prompt, "[Nothing saved to file]")
		return nil
	}

	n.Journal.NewEntry(strings.TrimSpace(text), nil, true)
	if err := n.Journal.Write(ctx); err != nil {
		return err
	}
	fmt.Fprintf(prompt, "[Entry added to %s journal]\n", n.Journal.Name)
	return nil
}
