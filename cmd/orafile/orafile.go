package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/orafile/debug"

	"github.com/scott-cotton/cli"
)

func orafileMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		if cerr := cfg.closeOut(); err == nil {
			err = cerr
		}
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		debug.EnableAll()
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		if cerr := cfg.closeOut(); cerr != nil {
			fmt.Fprintln(cc.Err, cerr)
		}
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// closeOut closes the -o output file, at most once.
func (cfg *MainConfig) closeOut() error {
	if cfg.CloseOut == nil {
		return nil
	}
	f := cfg.CloseOut
	cfg.CloseOut = nil
	if err := f(); err != nil {
		return fmt.Errorf("error closing %s: %w", cfg.Out, err)
	}
	return nil
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
