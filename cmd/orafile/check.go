package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires <file.ora> <source>, got %v", cli.ErrUsage, args)
	}
	ora, source := args[0], args[1]
	have, err := readFile(cc, ora)
	if err != nil {
		return err
	}
	d, err := cfg.getDict(cc, source)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", source, err)
	}
	want, err := renderText(cfg.plainRenderer(), d)
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", source, err)
	}
	differs, err := writeDiff(cfg.MainConfig, cc.Out, string(have), string(want))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}
