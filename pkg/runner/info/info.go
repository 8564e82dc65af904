// Package info describes the configuration and where journals are kept.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jrnl/pkg/store"
)

type Info struct {
	Config *store.Config
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("JRNL_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "JRNL_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(out, "JRNL_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	file := n.Config.File
	if file == "" {
		file = "none"
	}
	fmt.Fprintln(out, "Config file:", file)
	if n.Config.Editor != "" {
		fmt.Fprintln(out, "Editor:", n.Config.Editor)
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Journal"), bold.Sprint("Kind"), bold.Sprint("Path"))
	for _, name := range n.Config.Names() {
		cfg, _ := n.Config.Journal(name)
		tbl.AddRow(name, kind(cfg), cfg.Path)
	}
	fmt.Fprintln(out, tbl)
	return nil
}

func kind(cfg store.Journal) string {
	path, err := store.ExpandPath(cfg.Path)
	if err == nil {
		if st, err := os.Stat(path); err == nil && st.IsDir() {
			if store.IsDirectoryJournal(path) {
				return "directory"
			}
			return "unsupported"
		}
	}
	if cfg.Encrypt {
		return "encrypted"
	}
	return "file"
}
