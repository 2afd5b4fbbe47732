package conslisp

import (
	"bytes"
	"log/slog"
	"os"
)

// Context carries the per-run state of the evaluator: the output buffer
// written by println, the eval call counter, and the host hooks.
type Context struct {
	// EvalCalls counts Eval invocations. Diagnostic only.
	EvalCalls int

	// MaxDepth bounds evaluator nesting when positive.
	MaxDepth int

	// ReadFile backs :load. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)

	// Logger receives evaluator trace records at debug level. May be nil.
	Logger *slog.Logger

	out   bytes.Buffer
	depth int
}

func NewContext() *Context {
	return &Context{
		ReadFile: os.ReadFile,
	}
}

// Output returns everything printed since the last Reset.
func (c *Context) Output() string {
	return c.out.String()
}

// Reset clears the output buffer and the call counter.
func (c *Context) Reset() {
	c.out.Reset()
	c.EvalCalls = 0
}

func (c *Context) readFile(name string) ([]byte, error) {
	if c.ReadFile == nil {
		return os.ReadFile(name)
	}
	return c.ReadFile(name)
}
