package matcher

import (
	"fmt"
	"maps"
	"slices"

	"github.com/citrusframework/citrus-go/validate/debug"

	"github.com/agnivade/levenshtein"
)

// Registry resolves matcher names. The zero value and Default resolve
// against the process-wide table; Overlay layers further symbols on top
// without changing the registry it is called on.
type Registry struct {
	base *Registry
	syms map[string]Symbol
}

var defaultRegistry = &Registry{}

// Default returns the registry of the built-in matchers plus anything added
// with Register.
func Default() *Registry {
	return defaultRegistry
}

// Overlay returns a registry in which syms take precedence over the
// symbols of r.
func (r *Registry) Overlay(syms ...Symbol) *Registry {
	res := &Registry{base: r, syms: make(map[string]Symbol, len(syms))}
	for _, s := range syms {
		res.syms[s.String()] = s
	}
	return res
}

func (r *Registry) Lookup(name string) Symbol {
	for reg := r; reg != nil; reg = reg.base {
		if s := reg.syms[name]; s != nil {
			return s
		}
	}
	return Lookup(name)
}

// Names returns every resolvable name, sorted.
func (r *Registry) Names() []string {
	names := map[string]bool{}
	for _, s := range Symbols() {
		names[s.String()] = true
	}
	for reg := r; reg != nil; reg = reg.base {
		for k := range reg.syms {
			names[k] = true
		}
	}
	return slices.Sorted(maps.Keys(names))
}

// Resolve looks up name, failing with *UnknownMatcherError when there is no
// such symbol.
func (r *Registry) Resolve(name string) (Symbol, error) {
	if s := r.Lookup(name); s != nil {
		return s, nil
	}
	return nil, &UnknownMatcherError{Name: name, Suggestion: r.suggest(name)}
}

// suggest returns the registered name closest to name, provided it is
// within a third of the name's length.
func (r *Registry) suggest(name string) string {
	best, bestDist := "", len(name)/3+1
	for _, cand := range r.Names() {
		dist := levenshtein.ComputeDistance(name, cand)
		if dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

// Compile resolves and instantiates a parsed expression.
func (r *Registry) Compile(e *Expression) (Matcher, error) {
	sym, err := r.Resolve(e.Name)
	if err != nil {
		return nil, err
	}
	m, err := sym.Instance(e.Args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e, err)
	}
	if debug.Matcher() {
		debug.Logf("compiled matcher %s\n", m)
	}
	return m, nil
}

// CompileString parses and compiles a matcher expression.
func (r *Registry) CompileString(s string) (Matcher, error) {
	e, err := ParseExpression(s)
	if err != nil {
		return nil, err
	}
	return r.Compile(e)
}
