package validate

import (
	"fmt"
	"os"

	"github.com/citrusframework/citrus-go/validate/parse"

	"github.com/goccy/go-yaml"
)

// Profile is a named set of validation settings kept in a YAML or JSON
// file:
//
//	strict: true
//	ignore:
//	  - $.header.timestamp
//	  - $.items[*].id
//	variables:
//	  region: eu-west-1
//	patches:
//	  - - op: replace
//	      path: /status
//	      value: SHIPPED
type Profile struct {
	Strict    bool           `json:"strict"`
	Ignore    []string       `json:"ignore"`
	Variables map[string]any `json:"variables"`
	Patches   [][]any        `json:"patches"`
}

// LoadProfile decodes a profile. Unknown keys are an error.
func LoadProfile(d []byte) (*Profile, error) {
	p := &Profile{}
	if err := yaml.UnmarshalWithOptions(d, p, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return p, nil
}

func ReadProfile(path string) (*Profile, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := LoadProfile(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Options converts p into validator options.
func (p *Profile) Options() ([]Option, error) {
	opts := []Option{Strict(p.Strict), IgnorePaths(p.Ignore...)}
	for k, v := range p.Variables {
		node, err := parse.FromValue(v)
		if err != nil {
			return nil, fmt.Errorf("profile variable %q: %w", k, err)
		}
		opts = append(opts, Variable(k, node))
	}
	for i, ops := range p.Patches {
		node, err := parse.FromValue(ops)
		if err != nil {
			return nil, fmt.Errorf("profile patch %d: %w", i, err)
		}
		patch, err := PatchFromNode(node)
		if err != nil {
			return nil, fmt.Errorf("profile patch %d: %w", i, err)
		}
		opts = append(opts, Patches(patch))
	}
	return opts, nil
}
