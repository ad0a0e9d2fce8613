package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "citrus-validate").
		WithSynopsis("citrus-validate [opts] command [opts]").
		WithDescription("citrus-validate compares actual documents with expected ones.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return citrusMain(cfg, cc, args)
		}).
		WithSubs(
			ValidateCommand(cfg),
			MatchersCommand(cfg),
			PathsCommand(cfg))
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "i",
		Aliases:     []string{"ignore"},
		Description: "ignore the subtree at a path, may be repeated",
		Type:        cli.NamedFuncOpt(cfg.ignoreOpt, "(path)"),
	})
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("v").
		WithSynopsis("validate [-strict] [-i path]... [-p profile] [-patch file] <expected> <actual>...").
		WithDescription("validate actual files against an expected file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validateMain(cfg, cc, args)
		})
}

func MatchersCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchersConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Matchers, "matchers").
		WithAliases("m").
		WithSynopsis("matchers").
		WithDescription("list the available matchers").
		WithRun(func(cc *cli.Context, args []string) error {
			return matchers(cfg, cc, args)
		})
}

func PathsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Paths, "paths").
		WithAliases("p").
		WithSynopsis("paths <file> [path]").
		WithDescription("list the paths of a document, or of the nodes a path expression selects").
		WithRun(func(cc *cli.Context, args []string) error {
			return paths(cfg, cc, args)
		})
}
