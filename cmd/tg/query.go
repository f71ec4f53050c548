package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/phonlab/textgrid-format/textgrid"
	"github.com/phonlab/textgrid-format/textgrid/encode"
	"github.com/phonlab/textgrid-format/textgrid/query"
)

func queryRun(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires a filter expression", cli.ErrUsage)
	}
	f, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: bad filter %q: %w", cli.ErrUsage, args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range files {
		g, err := getGridFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		out, err := filterGrid(cfg, f, g)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", file, err)
		}
		if err := encode.Encode(out, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// filterGrid applies f to every tier, or to the named tier only when
// -tier is given; unnamed tiers pass through untouched in that case.
func filterGrid(cfg *QueryConfig, f *query.Filter, g *textgrid.TextGrid) (*textgrid.TextGrid, error) {
	res, err := textgrid.New(g.Name, g.MinTime, g.MaxTime)
	if err != nil {
		return nil, err
	}
	matched := false
	for _, t := range g.Tiers {
		if cfg.Tier != "" && t.Name != cfg.Tier {
			if err := res.Append(t); err != nil {
				return nil, err
			}
			continue
		}
		matched = true
		ft, err := f.Tier(t)
		if err != nil {
			return nil, err
		}
		if err := res.Append(ft); err != nil {
			return nil, err
		}
	}
	if cfg.Tier != "" && !matched {
		return nil, fmt.Errorf("%w: no tier named %q", textgrid.ErrNotFound, cfg.Tier)
	}
	return res, nil
}
