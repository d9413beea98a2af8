package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	return newMainCommand(&MainConfig{})
}

func newMainCommand(cfg *MainConfig) *cli.Command {
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: yaml/y, json/j, toml/t (default from file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "orafile").
		WithSynopsis("orafile [opts] command [opts]").
		WithDescription("orafile renders Oracle network configuration files (tnsnames.ora, listener.ora, sqlnet.ora).").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return orafileMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			DiffCommand(cfg),
			CheckCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithOpts(opts...).
		WithSynopsis("render [-select expr] [files]").
		WithDescription("render yaml, json or toml documents as .ora definitions").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff <file1> <file2>").
		WithDescription("diff the rendered forms of two documents, exit 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check <file.ora> <source>").
		WithDescription("check that an .ora file matches the rendering of source, exit 1 on drift").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
