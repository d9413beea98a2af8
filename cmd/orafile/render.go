package main

import (
	"fmt"

	"github.com/signadot/orafile/selector"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	var sel *selector.Selector
	if cfg.Select != "" {
		sel, err = selector.Compile(cfg.Select)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	r := cfg.renderer(cc.Out)
	for _, file := range args {
		d, err := cfg.getDict(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if sel != nil {
			d, err = sel.Filter(d)
			if err != nil {
				return fmt.Errorf("error selecting from %s: %w", file, err)
			}
		}
		out, err := renderText(r, d)
		if err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
		if err := writeOut(cc.Out, out); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}
