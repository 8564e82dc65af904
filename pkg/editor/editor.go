// Package editor hands text to the user's editor and reads back the result.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when no editor is configured.
var ErrNoEditor = errors.New("editor: no editor configured, set editor in the config file or $EDITOR")

// Editor lets the user change text.
type Editor interface {
	Edit(ctx context.Context, text string) (string, error)
}

// Func adapts a function to Editor.
type Func func(ctx context.Context, text string) (string, error)

func (f Func) Edit(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// External runs an editor command on a temporary file.
type External struct {
	// Command is split on whitespace; the file path is appended.
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// FromEnv picks the configured editor, then $VISUAL, then $EDITOR.
func FromEnv(configured string) (*External, error) {
	for _, c := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(c) != "" {
			return &External{Command: c, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}, nil
		}
	}
	return nil, ErrNoEditor
}

func (e *External) Edit(ctx context.Context, text string) (string, error) {
	args := strings.Fields(e.Command)
	if len(args) == 0 {
		return "", ErrNoEditor
	}

	f, err := os.CreateTemp("", "jrnl*.txt")
	if err != nil {
		return "", fmt.Errorf("editor: temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("editor: write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("editor: close temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor: run %s: %w", args[0], err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("editor: read temp file: %w", err)
	}
	return string(b), nil
}
