package matcher

import (
	"maps"

	"github.com/citrusframework/citrus-go/validate/ir"
)

// Context carries test variables between matcher invocations of one
// validation. It is not safe for concurrent use.
type Context struct {
	vars map[string]*ir.Node
}

func NewContext() *Context {
	return &Context{vars: map[string]*ir.Node{}}
}

// Get returns the variable name.
func (c *Context) Get(name string) (*ir.Node, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.vars[name]
	return v, ok
}

func (c *Context) Set(name string, v *ir.Node) {
	if c.vars == nil {
		c.vars = map[string]*ir.Node{}
	}
	c.vars[name] = v
}

// Vars returns a copy of the variables.
func (c *Context) Vars() map[string]*ir.Node {
	if c == nil {
		return map[string]*ir.Node{}
	}
	return maps.Clone(c.vars)
}

// Clone returns an independent context with the same variables, used for
// attempts whose effects are kept only if they succeed.
func (c *Context) Clone() *Context {
	if c == nil {
		return NewContext()
	}
	res := &Context{vars: maps.Clone(c.vars)}
	if res.vars == nil {
		res.vars = map[string]*ir.Node{}
	}
	return res
}

// Merge copies the variables of o into c, overwriting.
func (c *Context) Merge(o *Context) {
	if o == nil {
		return
	}
	for k, v := range o.vars {
		c.Set(k, v)
	}
}
