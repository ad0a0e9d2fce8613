package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"

	"github.com/citrusframework/citrus-go/validate"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

func validateMain(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: validate requires an expected file and at least one actual file", cli.ErrUsage)
	}
	if stdinTwice(args, cfg.Patch) {
		return fmt.Errorf("%w: stdin may be given only once", cli.ErrUsage)
	}
	v, err := cfg.validator(cc.In)
	if err != nil {
		return err
	}
	expected, err := readInput(cc.In, args[0])
	if err != nil {
		return err
	}
	failed, err := validateFiles(cfg, v, cc.In, cc.Out, expected, args[1:])
	if err != nil {
		return err
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// stdinTwice reports whether "-" is named more than once among args and
// the patch file.
func stdinTwice(args []string, patch string) bool {
	if patch == "-" {
		return slices.Contains(args, "-")
	}
	i := slices.Index(args, "-")
	return i >= 0 && slices.Contains(args[i+1:], "-")
}

// validator builds the validator for cfg. Profile settings come first so
// that flags add to them.
func (cfg *ValidateConfig) validator(in io.Reader) (*validate.Validator, error) {
	var opts []validate.Option
	if cfg.Profile != "" {
		p, err := validate.ReadProfile(cfg.Profile)
		if err != nil {
			return nil, err
		}
		pOpts, err := p.Options()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Profile, err)
		}
		opts = append(opts, pOpts...)
	}
	if cfg.Strict {
		opts = append(opts, validate.Strict(true))
	}
	opts = append(opts, validate.IgnorePaths(cfg.Ignore...), validate.Format(cfg.parseOpts()...))
	if cfg.Patch != "" {
		d, err := readInput(in, cfg.Patch)
		if err != nil {
			return nil, err
		}
		p, err := validate.DecodePatch(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Patch, err)
		}
		opts = append(opts, validate.Patches(p))
	}
	v, err := validate.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return v, nil
}

type result struct {
	file string
	err  error
}

// validateFiles validates every file against expected concurrently and
// reports the outcomes in argument order. It returns whether any file
// failed validation, and the first error that is not a validation
// failure.
func validateFiles(cfg *ValidateConfig, v *validate.Validator, in io.Reader, out io.Writer, expected []byte, files []string) (bool, error) {
	res := make([]result, len(files))
	g := &errgroup.Group{}
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		res[i].file = file
		g.Go(func() error {
			actual, err := readInput(in, file)
			if err != nil {
				return err
			}
			res[i].err = v.ValidateText(actual, expected)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	rep := newReporter(out, cfg.colorize(out))
	failed := false
	var hard error
	for _, r := range res {
		var vErr *validate.ValidationError
		switch {
		case r.err == nil:
			if !cfg.Quiet {
				rep.ok(r.file)
			}
		case errors.As(r.err, &vErr):
			failed = true
			rep.fail(r.file, vErr)
		default:
			rep.error(r.file, r.err)
			if hard == nil {
				hard = fmt.Errorf("error validating %s: %w", r.file, r.err)
			}
		}
	}
	return failed, hard
}

type reporter struct {
	w                   io.Writer
	okC, failC, detailC *color.Color
}

func newReporter(w io.Writer, colors bool) *reporter {
	rep := &reporter{
		w:       w,
		okC:     color.New(color.FgGreen),
		failC:   color.New(color.FgRed, color.Bold),
		detailC: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{rep.okC, rep.failC, rep.detailC} {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return rep
}

func (r *reporter) ok(file string) {
	fmt.Fprintf(r.w, "%s %s\n", r.okC.Sprint("ok  "), file)
}

func (r *reporter) fail(file string, err *validate.ValidationError) {
	fmt.Fprintf(r.w, "%s %s\n", r.failC.Sprint("FAIL"), file)
	fmt.Fprintf(r.w, "     %s\n", err.Error())
	if d := err.Diff(); d != "" {
		fmt.Fprintf(r.w, "     %s %s\n", r.detailC.Sprint("diff:"), d)
	}
}

func (r *reporter) error(file string, err error) {
	fmt.Fprintf(r.w, "%s %s\n", r.failC.Sprint("ERR "), file)
	fmt.Fprintf(r.w, "     %s\n", r.detailC.Sprint(err.Error()))
}
