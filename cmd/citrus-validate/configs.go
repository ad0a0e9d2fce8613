package main

import (
	"io"
	"os"

	"github.com/citrusframework/citrus-go/validate/encode"
	"github.com/citrusframework/citrus-go/validate/format"
	"github.com/citrusframework/citrus-go/validate/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='report with color'"`

	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Main *cli.Command
}

func (cfg *MainConfig) format() format.Format {
	if cfg.J && !cfg.Y {
		return format.JSONFormat
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.format().IsJSON() {
		return []parse.ParseOption{parse.ParseJSON()}
	}
	return []parse.ParseOption{parse.ParseYAML()}
}

// colorize reports whether output to w gets colors: always with -color,
// otherwise only when w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeFormat(cfg.format())}
	if cfg.colorize(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ValidateConfig struct {
	*MainConfig

	Strict  bool   `cli:"name=strict aliases=s desc='require exact key sets and array sizes'"`
	Profile string `cli:"name=p aliases=profile desc='load settings from a profile file'"`
	Patch   string `cli:"name=patch desc='apply a json patch file to the expected documents'"`
	Quiet   bool   `cli:"name=q desc='only report failures'"`

	Ignore []string

	Validate *cli.Command
}

func (cfg *ValidateConfig) ignoreOpt(_ *cli.Context, v string) (any, error) {
	cfg.Ignore = append(cfg.Ignore, v)
	return v, nil
}

type MatchersConfig struct {
	*MainConfig

	Matchers *cli.Command
}

type PathsConfig struct {
	*MainConfig

	Paths *cli.Command
}
