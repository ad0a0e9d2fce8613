package matcher

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Symbol{}
)

// Register adds s to the process-wide table behind Default. It is meant to
// be called during program initialization.
func Register(s Symbol) error {
	key := s.String()
	if key == "" || strings.ContainsAny(key, "@(),'\" \t") {
		return fmt.Errorf("symbol %q is not a valid matcher name", key)
	}
	mu.Lock()
	defer mu.Unlock()
	_, present := d[key]
	if present {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	d[key] = s
	return nil
}

func init() {
	for _, s := range builtins() {
		if err := Register(s); err != nil {
			panic(err)
		}
	}
}

func builtins() []Symbol {
	return []Symbol{
		Ignore(),
		IsNull(),
		Null(),
		NotNull(),
		Empty(),
		NotEmpty(),
		EqualsIgnoreCase(),
		ContainsIgnoreCase(),
		Contains(),
		StartsWith(),
		EndsWith(),
		Matches(),
		Glob(),
		Trim(),
		TrimAllWhitespaces(),
		IgnoreNewLine(),
		HasLength(),
		StringLength(),
		IsNumber(),
		GreaterThan(),
		LowerThan(),
		IsUUIDv4(),
		MatchesDatePattern(),
		IsWeekday(),
		DateRange(),
		Variable(),
		Expr(),
	}
}

func Lookup(s string) Symbol {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Symbols returns the process-wide symbols sorted by name.
func Symbols() []Symbol {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Symbol, 0, len(d))
	for _, s := range d {
		res = append(res, s)
	}
	slices.SortFunc(res, func(a, b Symbol) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}
