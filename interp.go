package conslisp

import (
	"io"
)

// Interpreter keeps a global environment and an execution context across
// evaluations, the way a REPL session does. A form that fails leaves the
// definitions made by earlier forms in place.
type Interpreter struct {
	Env *Env
	Ctx *Context
}

func NewInterpreter() *Interpreter {
	return &Interpreter{
		Env: NewEnv(nil),
		Ctx: NewContext(),
	}
}

// NewInterpreterWithConfig applies cfg to a fresh interpreter and loads
// the embedded prelude when cfg asks for it.
func NewInterpreterWithConfig(cfg *Config) (*Interpreter, error) {
	it := NewInterpreter()
	it.Ctx.MaxDepth = cfg.MaxDepth
	it.Ctx.Logger = cfg.Logger
	if cfg.Prelude {
		if err := LoadLib(it.Env, it.Ctx); err != nil {
			return nil, err
		}
		it.Ctx.Reset()
	}
	return it, nil
}

func (it *Interpreter) EvalString(src string) (*Node, error) {
	node, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Eval(node, it.Env, it.Ctx)
}

func (it *Interpreter) EvalReader(r io.Reader) (*Node, error) {
	node, err := NewParser(r).Parse()
	if err != nil {
		return nil, err
	}
	return Eval(node, it.Env, it.Ctx)
}

// Load evaluates the file at path in the global environment.
func (it *Interpreter) Load(path string) (*Node, error) {
	return loadFile(path, it.Env, it.Ctx)
}
