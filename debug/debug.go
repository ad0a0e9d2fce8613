// Package debug holds tracing switches read from the environment once at
// start up. Each switch is a boolean variable such as
// CITRUS_DEBUG_VALIDATE=1; output goes to stderr.
package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/citrusframework/citrus-go/validate/encode"
	"github.com/citrusframework/citrus-go/validate/ir"
)

type debug struct {
	Validate bool
	Matcher  bool
	Parse    bool
	Patch    bool
}

var (
	d   *debug
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Validate = boolEnv("CITRUS_DEBUG_VALIDATE")
	d.Matcher = boolEnv("CITRUS_DEBUG_MATCHER")
	d.Parse = boolEnv("CITRUS_DEBUG_PARSE")
	d.Patch = boolEnv("CITRUS_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Validate() bool {
	return d.Validate
}
func Matcher() bool {
	return d.Matcher
}
func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}

// Logf formats like fmt.Printf, rendering *ir.Node arguments in flow style.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = encode.MustString(x)
		}
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, msg, args...)
}
