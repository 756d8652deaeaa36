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
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "xmliter").
		WithSynopsis("xmliter [opts] command [opts]").
		WithDescription("xmliter is a tool for streaming over XML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmliterMain(cfg, cc, args)
		}).
		WithSubs(
			EventsCommand(cfg),
			DictCommand(cfg),
			EdgesCommand(cfg),
			CheckCommand(cfg))
}

func EventsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EventsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("events").
		WithAliases("e", "ev").
		WithSynopsis("events [-n limit] [-until expr] [files]").
		WithDescription("print the normalized event stream of XML documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return events(cfg, cc, args)
		})
	cfg.Events = cmd
	return cmd
}

func DictCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DictConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dict").
		WithAliases("d", "di").
		WithSynopsis("dict [-j|-y] [-n limit] [files]").
		WithDescription("convert XML documents to nested dictionaries").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dictCmd(cfg, cc, args)
		})
	cfg.Dict = cmd
	return cmd
}

func EdgesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EdgesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("edges").
		WithAliases("ed").
		WithSynopsis("edges [-n limit] [files]").
		WithDescription("count parent/child tag pairings of XML documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edgesCmd(cfg, cc, args)
		})
	cfg.Edges = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ch").
		WithSynopsis("check -golden <json-file> [files]").
		WithDescription("check XML documents against a golden dictionary").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
