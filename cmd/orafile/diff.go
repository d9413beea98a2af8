package main

import (
	"fmt"
	"io"

	"github.com/signadot/orafile/libdiff"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, to := args[0], args[1]
	if cfg.Reverse {
		from, to = to, from
	}
	r := cfg.plainRenderer()
	texts := make([]string, 2)
	for i, file := range []string{from, to} {
		d, err := cfg.getDict(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		out, err := renderText(r, d)
		if err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
		texts[i] = string(out)
	}
	differs, err := writeDiff(cfg.MainConfig, cc.Out, texts[0], texts[1])
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// writeDiff writes the line diff of from and to to w if there is one.
func writeDiff(cfg *MainConfig, w io.Writer, from, to string) (bool, error) {
	lines := libdiff.Lines(from, to)
	if !libdiff.Changed(lines) {
		return false, nil
	}
	if !cfg.colors(w) {
		return true, writeOut(w, []byte(libdiff.Unified(lines)))
	}
	for _, ln := range lines {
		s := ln.Op.Prefix() + ln.Text
		switch ln.Op {
		case libdiff.Insert:
			s = color.GreenString("%s", s)
		case libdiff.Delete:
			s = color.RedString("%s", s)
		}
		if err := writeOut(w, []byte(s+"\n")); err != nil {
			return true, err
		}
	}
	return true, nil
}
