package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
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
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jj").
		WithSynopsis("jj [opts] command [opts]").
		WithDescription("jj is a tool for dense viewing and path reading of nested data.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jjMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			FieldsCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("render documents densely, collapsing flat containers").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("read the value under a slash path like data/0/name").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func FieldsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FieldsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fields").
		WithAliases("f").
		WithSynopsis("fields <term>[,term...] [files]").
		WithDescription("filter a list of documents to fields whose keys contain a term").
		WithRun(func(cc *cli.Context, args []string) error {
			return fields(cfg, cc, args)
		})
	cfg.Fields = cmd
	return cmd
}
