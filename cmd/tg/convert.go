package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/phonlab/textgrid-format/textgrid"
	"github.com/phonlab/textgrid-format/textgrid/encode"
	"github.com/phonlab/textgrid-format/textgrid/mlf"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := convertFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(cfg *ConvertConfig, cc *cli.Context, file string) error {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	grids, err := mlf.Read(r, mlf.SampleRate(cfg.Rate))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	for _, g := range grids {
		path := outputPath(g.Name, cfg.Dir)
		if err := writeGrid(cfg, g, path); err != nil {
			return err
		}
		theLog.Info("wrote", "utterance", g.Name, "path", path)
	}
	return nil
}

func writeGrid(cfg *ConvertConfig, g *textgrid.TextGrid, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := encode.Encode(g, f, cfg.encOpts(f)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	return nil
}

// outputPath maps an utterance label path like "*/mfc/utt1.lab" to
// "<dir>/utt1.TextGrid", dropping whatever prefix and extension the
// label file carried.
func outputPath(name, dir string) string {
	stem := filepath.Base(name)
	if ext := filepath.Ext(stem); ext != "" {
		stem = strings.TrimSuffix(stem, ext)
	}
	return filepath.Join(dir, stem+".TextGrid")
}
