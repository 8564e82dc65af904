// Package imports merges entries from other journal text.
package imports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/jrnl/pkg/journal"
)

type Import struct {
	Journal *journal.Journal
	Source  io.Reader
	Prompt  io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not import, no journal")
	}
	if n.Source == nil {
		return errors.New("can not import, no source")
	}
	prompt := n.Prompt
	if prompt == nil {
		prompt = os.Stderr
	}

	b, err := io.ReadAll(n.Source)
	if err != nil {
		return fmt.Errorf("import: read: %w", err)
	}
	added := n.Journal.Import(string(b))
	if added > 0 {
		if err := n.Journal.Write(ctx); err != nil {
			return err
		}
	}
	fmt.Fprintf(prompt, "[%d imported to %s journal]\n", added, n.Journal.Name)
	return nil
}
