package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/phonlab/textgrid-format/textgrid/encode"
	"github.com/phonlab/textgrid-format/textgrid/format"
	"github.com/phonlab/textgrid-format/textgrid/parse"
)

type MainConfig struct {
	S     bool   `cli:"name=s aliases=short desc='write short form output'"`
	Color bool   `cli:"name=color desc='encode with color'"`
	Null  string `cli:"name=null desc='mark used to pad unlabelled spans'"`

	InForm *format.Form

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) formFunc(fp **format.Form) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseForm(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.InForm == nil {
		return nil
	}
	return []parse.ParseOption{parse.ParseForm(*cfg.InForm)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeNull(cfg.Null)}
	if cfg.S {
		res = append(res, encode.EncodeForm(format.Short))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorized reports whether diff output should be pretty-printed,
// following the same flag-then-tty logic as encOpts.
func (cfg *MainConfig) colorized(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Dir  string `cli:"name=d aliases=dir desc='output directory for TextGrid files'"`
	Rate float64

	Convert *cli.Command
}

func (cfg *ConvertConfig) mkRate() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		var r float64
		if _, err := fmt.Sscanf(a, "%g", &r); err != nil {
			return nil, fmt.Errorf("%w: bad sample rate %q", cli.ErrUsage, a)
		}
		if r <= 0 {
			return nil, fmt.Errorf("%w: sample rate must be positive", cli.ErrUsage)
		}
		cfg.Rate = r
		return r, nil
	}
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Tier string `cli:"name=tier desc='restrict the filter to the named tier'"`

	Query *cli.Command
}

type ExportConfig struct {
	*MainConfig

	J bool `cli:"name=j aliases=json desc='emit JSON instead of YAML'"`

	Export *cli.Command
}
