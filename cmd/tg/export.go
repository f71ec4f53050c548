package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/phonlab/textgrid-format/textgrid/interchange"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		g, err := getGridFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		var d []byte
		if cfg.J {
			d, err = interchange.MarshalJSON(g)
		} else {
			d, err = interchange.MarshalYAML(g)
		}
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i > 0 {
			sep := "\n---\n"
			if cfg.J {
				sep = "\n"
			}
			if _, err := cc.Out.Write([]byte(sep)); err != nil {
				return err
			}
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
		if len(d) > 0 && d[len(d)-1] != '\n' {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
