package main

import (
	"fmt"

	"github.com/citrusframework/citrus-go/validate/matcher"

	"github.com/scott-cotton/cli"
)

func matchers(cfg *MatchersConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Matchers.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: matchers takes no arguments", cli.ErrUsage)
	}
	fmt.Fprintf(cc.Out, "available matchers:\n")
	for _, name := range matcher.Default().Names() {
		fmt.Fprintf(cc.Out, "\t- @%s@\n", name)
	}
	return nil
}
