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
			Name:        "s",
			Aliases:     []string{"style"},
			Description: "output style: compact/c, closed/x, pretty/p",
			Type:        cli.NamedFuncOpt(cfg.styleFunc(), "(style)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ofx1").
		WithSynopsis("ofx1 [opts] command [opts]").
		WithDescription("ofx1 writes OFX 1.x SGML documents from yaml or json descriptions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ofx1Main(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			ViewCommand(cfg),
			StylesCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithOpts(opts...).
		WithSynopsis("encode [opts] [files]").
		WithDescription("encode documents as ISO-8859-1 OFX 1.x SGML").
		WithRun(func(cc *cli.Context, args []string) error {
			return encode(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [files]").
		WithDescription("view documents as OFX 1.x SGML, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func StylesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StylesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Styles, "styles").
		WithSynopsis("styles").
		WithDescription("list output styles").
		WithRun(func(cc *cli.Context, args []string) error {
			return styles(cfg, cc, args)
		})
}
