package validate

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/citrusframework/citrus-go/validate/ir"
	"github.com/citrusframework/citrus-go/validate/matcher"
	"github.com/citrusframework/citrus-go/validate/parse"
)

type Config struct {
	Strict    bool
	Ignore    []string
	Matchers  []matcher.Symbol
	Registry  *matcher.Registry
	Context   *matcher.Context
	Variables map[string]*ir.Node
	Patches   []*Patch
	Parse     []parse.ParseOption
}

type Option func(*Config)

// Strict requires objects to have exactly the expected keys and arrays
// exactly the expected number of elements.
func Strict(v bool) Option {
	return func(c *Config) { c.Strict = v }
}

// IgnorePaths skips the subtrees at the given paths, such as
// $.header.timestamp or $.items[*].id.
func IgnorePaths(paths ...string) Option {
	return func(c *Config) { c.Ignore = append(c.Ignore, paths...) }
}

// Matchers adds matchers that take precedence over the registry's.
func Matchers(syms ...matcher.Symbol) Option {
	return func(c *Config) { c.Matchers = append(c.Matchers, syms...) }
}

// WithRegistry replaces matcher.Default as the registry matchers are
// resolved in.
func WithRegistry(r *matcher.Registry) Option {
	return func(c *Config) { c.Registry = r }
}

// WithContext makes every validation read and store variables in ctx.
// Without it each validation gets a context of its own. A shared context
// is not safe for concurrent validations.
func WithContext(ctx *matcher.Context) Option {
	return func(c *Config) { c.Context = ctx }
}

// Variable presets a variable seen by matchers.
func Variable(name string, v *ir.Node) Option {
	return func(c *Config) {
		if c.Variables == nil {
			c.Variables = map[string]*ir.Node{}
		}
		c.Variables[name] = v
	}
}

// Patches are applied in order to every expected document before it is
// compared.
func Patches(ps ...*Patch) Option {
	return func(c *Config) { c.Patches = append(c.Patches, ps...) }
}

// Format sets how ValidateText parses its input.
func Format(opts ...parse.ParseOption) Option {
	return func(c *Config) { c.Parse = append(c.Parse, opts...) }
}

// Validator compares actual documents with expected ones. It does not
// change after New and may be used concurrently, unless built
// WithContext.
type Validator struct {
	strict    bool
	ignore    []*ir.Path
	reg       *matcher.Registry
	ctx       *matcher.Context
	vars      map[string]*ir.Node
	patches   []*Patch
	parseOpts []parse.ParseOption

	compiled sync.Map // expression string -> matcher.Matcher
}

func New(opts ...Option) (*Validator, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	v := &Validator{
		strict:    cfg.Strict,
		reg:       cfg.Registry,
		ctx:       cfg.Context,
		vars:      cfg.Variables,
		patches:   cfg.Patches,
		parseOpts: cfg.Parse,
	}
	if v.reg == nil {
		v.reg = matcher.Default()
	}
	if len(cfg.Matchers) != 0 {
		v.reg = v.reg.Overlay(cfg.Matchers...)
	}
	for _, p := range cfg.Ignore {
		path, err := ir.ParsePath(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIgnoreExpression, err)
		}
		v.ignore = append(v.ignore, path)
	}
	return v, nil
}

// Validate compares one actual document with one expected document. A nil
// node stands for no document.
func Validate(actual, expected *ir.Node, opts ...Option) error {
	v, err := New(opts...)
	if err != nil {
		return err
	}
	return v.Validate(actual, expected)
}

func (v *Validator) Validate(actual, expected *ir.Node) error {
	return v.ValidateDocuments(docs(actual), docs(expected))
}

func docs(node *ir.Node) []*ir.Node {
	if node == nil {
		return nil
	}
	return []*ir.Node{node}
}

// ValidateText parses both inputs, YAML unless configured otherwise with
// Format, and validates the resulting documents pairwise.
func (v *Validator) ValidateText(actual, expected []byte) error {
	aDocs, err := parse.Parse(actual, v.parseOpts...)
	if err != nil {
		return fmt.Errorf("actual: %w", err)
	}
	eDocs, err := parse.Parse(expected, v.parseOpts...)
	if err != nil {
		return fmt.Errorf("expected: %w", err)
	}
	return v.ValidateDocuments(aDocs, eDocs)
}

// ValidateDocuments validates actual[i] against expected[i]. Two empty
// lists are equal; lists of different length fail with
// ErrDocumentCountMismatch.
func (v *Validator) ValidateDocuments(actual, expected []*ir.Node) error {
	if len(actual) == 0 && len(expected) == 0 {
		return nil
	}
	if len(actual) != len(expected) {
		return &ValidationError{
			Kind:     ErrDocumentCountMismatch,
			Expected: strconv.Itoa(len(expected)),
			Actual:   strconv.Itoa(len(actual)),
			Detail:   "number of documents differs",
		}
	}
	expected, err := v.applyPatches(expected)
	if err != nil {
		return err
	}
	w := &walk{v: v, ctx: v.context()}
	for i := range expected {
		err := w.validate(&Item{Actual: actual[i], Expected: expected[i]})
		if err == nil {
			continue
		}
		var vErr *ValidationError
		if len(expected) > 1 && errors.As(err, &vErr) {
			vErr.Document = i + 1
		}
		return err
	}
	return nil
}

func (v *Validator) context() *matcher.Context {
	ctx := v.ctx
	if ctx == nil {
		ctx = matcher.NewContext()
	}
	for k, x := range v.vars {
		if _, ok := ctx.Get(k); !ok {
			ctx.Set(k, x)
		}
	}
	return ctx
}

func (v *Validator) applyPatches(docs []*ir.Node) ([]*ir.Node, error) {
	if len(v.patches) == 0 {
		return docs, nil
	}
	res := make([]*ir.Node, len(docs))
	for i, doc := range docs {
		for _, p := range v.patches {
			patched, err := p.Apply(doc)
			if err != nil {
				return nil, err
			}
			doc = patched
		}
		res[i] = doc
	}
	return res, nil
}

// compile resolves a matcher expression, reusing earlier compilations.
func (v *Validator) compile(s string) (matcher.Matcher, error) {
	if m, ok := v.compiled.Load(s); ok {
		return m.(matcher.Matcher), nil
	}
	m, err := v.reg.CompileString(s)
	if err != nil {
		return nil, err
	}
	v.compiled.Store(s, m)
	return m, nil
}
