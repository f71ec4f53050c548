package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/phonlab/textgrid-format/textgrid/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return viewFiles(cfg, cc, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, cc *cli.Context, w io.Writer, files []string) error {
	opts := cfg.encOpts(w)
	for i, file := range files {
		g, err := getGridFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if i > 0 {
			if _, err := w.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(g, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
