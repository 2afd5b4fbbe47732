package conslisp

import (
	"context"
	"fmt"
	"log/slog"
)

// Eval evaluates node in env. Output of println goes to ctx.
func Eval(node *Node, env *Env, ctx *Context) (*Node, error) {
	ctx.EvalCalls++
	ctx.depth++
	defer func() { ctx.depth-- }()
	if ctx.MaxDepth > 0 && ctx.depth > ctx.MaxDepth {
		return nil, fmt.Errorf("%w: depth %d while evaluating '%v'", ErrRecursion, ctx.depth, node)
	}
	if ctx.Logger != nil && ctx.Logger.Enabled(context.Background(), slog.LevelDebug) {
		ctx.Logger.Debug("eval", "form", node.String(), "depth", ctx.depth)
	}

	switch node.t {
	case NodeIdent:
		// The bound value is evaluated again, so a name bound to a form
		// behaves like that form.
		v, err := env.Get(node.v.(string))
		if err != nil {
			return nil, err
		}
		return Eval(v, env, ctx)
	case NodeCell:
		return evalList(node.car, node.cdr, env, ctx)
	}
	return node, nil
}

func evalList(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	switch head.t {
	case NodeIdent:
		name := head.v.(string)
		if fn, ok := ops[name]; ok {
			return fn(head, tail, env, ctx)
		}
		return call(head, tail, env, ctx)
	case NodeLambda:
		return callLambda(head, tail, env, ctx)
	case NodeMacro:
		return callMacro(head, tail, env, ctx)
	case NodeCell:
		fn, err := Eval(head, env, ctx)
		if err != nil {
			return nil, err
		}
		switch fn.t {
		case NodeLambda:
			return callLambda(fn, tail, env, ctx)
		case NodeMacro:
			return callMacro(fn, tail, env, ctx)
		}
		if tail.IsNil() {
			return fn, nil
		}
		return Eval(tail, env, ctx)
	}

	// Anything else in head position starts a sequence: evaluate it, then
	// the rest, and yield the last value.
	ret, err := Eval(head, env, ctx)
	if err != nil {
		return nil, err
	}
	if tail.IsNil() {
		return ret, nil
	}
	return Eval(tail, env, ctx)
}

// call applies the value bound to a non-kernel name. Values that are
// neither lambdas nor macros are returned as they are.
func call(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	fn, err := env.Get(head.v.(string))
	if err != nil {
		return nil, err
	}
	switch fn.t {
	case NodeLambda:
		return callLambda(fn, tail, env, ctx)
	case NodeMacro:
		return callMacro(fn, tail, env, ctx)
	}
	return fn, nil
}

// bindParams walks params and args in lockstep, binding each argument
// (after prepare) under its parameter name in scope.
func bindParams(fn, args *Node, scope *Env, prepare func(*Node) (*Node, error)) error {
	var err error
	fn.car.ForEach(func(param *Node) bool {
		var arg *Node
		arg, args, err = args.Decompose()
		if err != nil {
			err = fmt.Errorf("missing argument for '%v' in call to %v: %w", param, fn, err)
			return false
		}
		arg, err = prepare(arg)
		if err != nil {
			return false
		}
		err = scope.Define(param.v.(string), arg)
		return err == nil
	})
	if err != nil {
		return err
	}
	if !args.IsNil() {
		return arityError("too many arguments '%v' in call to %v", args, fn)
	}
	return nil
}

func callLambda(fn, args *Node, env *Env, ctx *Context) (*Node, error) {
	scope := NewEnv(fn.e)
	err := bindParams(fn, args, scope, func(arg *Node) (*Node, error) {
		return Eval(arg, env, ctx)
	})
	if err != nil {
		return nil, err
	}
	return Eval(fn.cdr, scope, ctx)
}
