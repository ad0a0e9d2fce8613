package main

import (
	"fmt"
	"io"

	"github.com/citrusframework/citrus-go/validate/encode"
	"github.com/citrusframework/citrus-go/validate/ir"
	"github.com/citrusframework/citrus-go/validate/parse"

	"github.com/scott-cotton/cli"
)

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: paths requires a file and an optional path expression", cli.ErrUsage)
	}
	var p *ir.Path
	if len(args) == 2 {
		p, err = ir.ParsePath(args[1])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	d, err := readInput(cc.In, args[0])
	if err != nil {
		return err
	}
	docs, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	return writePaths(cc.Out, docs, p, cfg.encOpts(cc.Out)...)
}

// writePaths lists each node of docs selected by p, or every node when p
// is nil, with its path. Leaves are listed with their value.
func writePaths(w io.Writer, docs []*ir.Node, p *ir.Path, opts ...encode.EncodeOption) error {
	for i, doc := range docs {
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		for _, node := range selectNodes(doc, p) {
			if !node.Type.IsLeaf() {
				if _, err := fmt.Fprintf(w, "%s\n", node.Path()); err != nil {
					return err
				}
				continue
			}
			v, err := encode.String(node, opts...)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s: %s\n", node.Path(), v); err != nil {
				return err
			}
		}
	}
	return nil
}

func selectNodes(doc *ir.Node, p *ir.Path) []*ir.Node {
	if p != nil {
		return doc.Select(p)
	}
	var res []*ir.Node
	_ = doc.Visit(func(node *ir.Node, isPost bool) (bool, error) {
		if !isPost {
			res = append(res, node)
		}
		return true, nil
	})
	return res
}
