package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/phonlab/textgrid-format/textgrid/tgdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getGridFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getGridFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	r := tgdiff.Diff(a, b)
	if r.Empty() {
		return nil
	}
	out := r.String()
	if cfg.colorized(cc.Out) {
		out = r.Pretty()
	}
	if _, err := cc.Out.Write([]byte(out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
