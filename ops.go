package conslisp

import (
	"errors"
	"fmt"
	"math"
)

// Fn implements a kernel form. It receives the form's head and its
// unevaluated argument list.
type Fn func(head, tail *Node, env *Env, ctx *Context) (*Node, error)

var ops map[string]Fn

func init() {
	ops = make(map[string]Fn)
	ops["+"] = doPlus
	ops["-"] = makeArith(
		func(a, b int64) (int64, error) { return a - b, nil },
		func(a, b float64) (float64, error) { return a - b, nil },
	)
	ops["*"] = makeArith(
		func(a, b int64) (int64, error) { return a * b, nil },
		func(a, b float64) (float64, error) { return a * b, nil },
	)
	ops["="] = makeCompare(
		func(a, b int64) bool { return a == b },
		func(a, b float64) bool { return a == b },
		func(a, b string) bool { return a == b },
		func(a, b bool) bool { return a == b },
	)
	ops["<"] = makeCompare(
		func(a, b int64) bool { return a < b },
		func(a, b float64) bool { return a < b },
		func(a, b string) bool { return a < b },
		nil,
	)
	ops["if"] = doIf
	ops["quote"] = doQuote
	ops["eval"] = doEval
	ops["cons"] = doCons
	ops["head"] = doHead
	ops["tail"] = doTail
	ops["typeof"] = doTypeof
	ops["def"] = doDef
	ops["lambda"] = doLambda
	ops["macro"] = doMacro
	ops["println"] = doPrintln
	ops[":load"] = doLoad

	// Forms carried over from earlier revisions of the dialect.
	ops["/"] = makeArith(
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivisionByZero
			}
			return a / b, nil
		},
		func(a, b float64) (float64, error) { return a / b, nil },
	)
	ops["mod"] = makeArith(
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivisionByZero
			}
			return a % b, nil
		},
		func(a, b float64) (float64, error) { return math.Mod(a, b), nil },
	)
	ops["%"] = ops["mod"]
	ops[">"] = makeCompare(
		func(a, b int64) bool { return a > b },
		func(a, b float64) bool { return a > b },
		func(a, b string) bool { return a > b },
		nil,
	)
	ops["<="] = makeCompare(
		func(a, b int64) bool { return a <= b },
		func(a, b float64) bool { return a <= b },
		func(a, b string) bool { return a <= b },
		nil,
	)
	ops[">="] = makeCompare(
		func(a, b int64) bool { return a >= b },
		func(a, b float64) bool { return a >= b },
		func(a, b string) bool { return a >= b },
		nil,
	)
	ops["car"] = doHead
	ops["cdr"] = doTail
	ops["cond"] = doCond
	ops["evalseq"] = doEvalseq
	ops["list"] = doList
	ops["macroexpand"] = doMacroexpand
}

var errDivisionByZero = errors.New("division by zero")

// IsKernel reports whether name is handled by the evaluator itself.
func IsKernel(name string) bool {
	_, ok := ops[name]
	return ok
}

func form(head, tail *Node) *Node {
	return newCell(head, tail)
}

// arguments checks that tail holds exactly n forms and returns them.
func arguments(head, tail *Node, n int) ([]*Node, error) {
	args := make([]*Node, 0, n)
	curr := tail
	for i := 0; i < n; i++ {
		arg, rest, err := curr.Decompose()
		if err != nil {
			return nil, arityError("%v: expected argument #%d in '%v'", head, i+1, form(head, tail))
		}
		args = append(args, arg)
		curr = rest
	}
	if !curr.IsNil() {
		return nil, arityError("%v: unexpected '%v', too many arguments in '%v'", head, curr, form(head, tail))
	}
	return args, nil
}

func evalArguments(head, tail *Node, n int, env *Env, ctx *Context) ([]*Node, error) {
	args, err := arguments(head, tail, n)
	if err != nil {
		return nil, err
	}
	for i, arg := range args {
		args[i], err = Eval(arg, env, ctx)
		if err != nil {
			return nil, err
		}
	}
	return args, nil
}

func toDouble(n *Node) (float64, bool) {
	switch n.t {
	case NodeInt:
		return float64(n.v.(int64)), true
	case NodeDouble:
		return n.v.(float64), true
	}
	return 0, false
}

func arith(head, tail, x, y *Node, fi func(a, b int64) (int64, error), ff func(a, b float64) (float64, error)) (*Node, error) {
	if a, ok := x.Int(); ok {
		if b, ok := y.Int(); ok {
			r, err := fi(a, b)
			if err != nil {
				return nil, typeError("%v: %v in '%v'", head, err, form(head, tail))
			}
			return NewInt(r), nil
		}
	}
	a, okx := toDouble(x)
	b, oky := toDouble(y)
	if !okx || !oky {
		return nil, typeError("%v: unexpected types in '%v'", head, form(head, tail))
	}
	r, err := ff(a, b)
	if err != nil {
		return nil, typeError("%v: %v in '%v'", head, err, form(head, tail))
	}
	return NewDouble(r), nil
}

func makeArith(fi func(a, b int64) (int64, error), ff func(a, b float64) (float64, error)) Fn {
	return func(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
		args, err := evalArguments(head, tail, 2, env, ctx)
		if err != nil {
			return nil, err
		}
		return arith(head, tail, args[0], args[1], fi, ff)
	}
}

func doPlus(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := evalArguments(head, tail, 2, env, ctx)
	if err != nil {
		return nil, err
	}
	if a, ok := args[0].Str(); ok {
		if b, ok := args[1].Str(); ok {
			return NewString(a + b), nil
		}
	}
	return arith(head, tail, args[0], args[1],
		func(a, b int64) (int64, error) { return a + b, nil },
		func(a, b float64) (float64, error) { return a + b, nil },
	)
}

func makeCompare(fi func(a, b int64) bool, ff func(a, b float64) bool, fs func(a, b string) bool, fb func(a, b bool) bool) Fn {
	return func(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
		args, err := evalArguments(head, tail, 2, env, ctx)
		if err != nil {
			return nil, err
		}
		x, y := args[0], args[1]
		if a, ok := x.Int(); ok {
			if b, ok := y.Int(); ok {
				return NewBool(fi(a, b)), nil
			}
		}
		if a, ok := toDouble(x); ok {
			if b, ok := toDouble(y); ok {
				return NewBool(ff(a, b)), nil
			}
		}
		if a, ok := x.Str(); ok {
			if b, ok := y.Str(); ok {
				return NewBool(fs(a, b)), nil
			}
		}
		if a, ok := x.Bool(); ok && fb != nil {
			if b, ok := y.Bool(); ok {
				return NewBool(fb(a, b)), nil
			}
		}
		return nil, typeError("%v: unexpected types in '%v'", head, form(head, tail))
	}
}

func doIf(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := arguments(head, tail, 3)
	if err != nil {
		return nil, err
	}
	cond, err := Eval(args[0], env, ctx)
	if err != nil {
		return nil, err
	}
	b, ok := cond.Bool()
	if !ok {
		return nil, typeError("if: argument #1 is not bool: '%v' in '%v'", cond, form(head, tail))
	}
	if b {
		return Eval(args[1], env, ctx)
	}
	return Eval(args[2], env, ctx)
}

func doQuote(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := arguments(head, tail, 1)
	if err != nil {
		return nil, err
	}
	return args[0], nil
}

func doEval(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := evalArguments(head, tail, 1, env, ctx)
	if err != nil {
		return nil, err
	}
	return Eval(args[0], env, ctx)
}

func doCons(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := evalArguments(head, tail, 2, env, ctx)
	if err != nil {
		return nil, err
	}
	return Cons(args[0], args[1])
}

func doHead(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := evalArguments(head, tail, 1, env, ctx)
	if err != nil {
		return nil, err
	}
	return args[0].Head()
}

func doTail(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := evalArguments(head, tail, 1, env, ctx)
	if err != nil {
		return nil, err
	}
	return args[0].Tail()
}

func doTypeof(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := evalArguments(head, tail, 1, env, ctx)
	if err != nil {
		return nil, err
	}
	return NewString(args[0].Type().String()), nil
}

// doDef binds a name in the current frame and yields the name.
func doDef(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := arguments(head, tail, 2)
	if err != nil {
		return nil, err
	}
	name, ok := args[0].Name()
	if !ok {
		return nil, typeError("def: argument #1 is not ident: '%v' in '%v'", args[0], form(head, tail))
	}
	v, err := Eval(args[1], env, ctx)
	if err != nil {
		return nil, err
	}
	if err := env.Define(name, v); err != nil {
		return nil, err
	}
	return args[0], nil
}

func checkParams(head, tail, params *Node) error {
	if !params.IsList() && !params.IsNil() {
		return typeError("%v: argument #1 is not list: '%v' in '%v'", head, params, form(head, tail))
	}
	var err error
	params.ForEach(func(param *Node) bool {
		if _, ok := param.Name(); !ok {
			err = typeError("%v: parameter '%v' is not ident in '%v'", head, param, form(head, tail))
			return false
		}
		return true
	})
	return err
}

func doLambda(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := arguments(head, tail, 2)
	if err != nil {
		return nil, err
	}
	if err := checkParams(head, tail, args[0]); err != nil {
		return nil, err
	}
	return newLambda(args[0], args[1], env), nil
}

func doMacro(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := arguments(head, tail, 2)
	if err != nil {
		return nil, err
	}
	if err := checkParams(head, tail, args[0]); err != nil {
		return nil, err
	}
	return newMacro(args[0], args[1]), nil
}

func doPrintln(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	var err error
	tail.ForEach(func(arg *Node) bool {
		var v *Node
		v, err = Eval(arg, env, ctx)
		if err != nil {
			return false
		}
		ctx.out.WriteString(v.String())
		return true
	})
	if err != nil {
		return nil, err
	}
	ctx.out.WriteString("\n")
	return NewBool(true), nil
}

func doLoad(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := evalArguments(head, tail, 1, env, ctx)
	if err != nil {
		return nil, err
	}
	name, ok := args[0].Str()
	if !ok {
		return nil, typeError(":load: argument #1 is not string: '%v' in '%v'", args[0], form(head, tail))
	}
	return loadFile(name, env, ctx)
}

func loadFile(name string, env *Env, ctx *Context) (*Node, error) {
	b, err := ctx.readFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	program, err := Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return Eval(program, env, ctx)
}

// doCond evaluates clauses of the form (test expr) in order and yields
// the expr of the first test that is true.
func doCond(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	ret := Nil
	var err error
	tail.ForEach(func(clause *Node) bool {
		var args []*Node
		args, err = arguments(head, clause, 2)
		if err != nil {
			return false
		}
		var test *Node
		test, err = Eval(args[0], env, ctx)
		if err != nil {
			return false
		}
		b, ok := test.Bool()
		if !ok {
			err = typeError("cond: unexpected '%v', expected bool in '%v'", test, clause)
			return false
		}
		if b {
			ret, err = Eval(args[1], env, ctx)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func doEvalseq(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	ret := Nil
	var err error
	tail.ForEach(func(arg *Node) bool {
		ret, err = Eval(arg, env, ctx)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func doList(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	var items []*Node
	var err error
	tail.ForEach(func(arg *Node) bool {
		var v *Node
		v, err = Eval(arg, env, ctx)
		items = append(items, v)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return List(items...), nil
}

// doMacroexpand returns the expansion of a macro call without evaluating
// it.
func doMacroexpand(head, tail *Node, env *Env, ctx *Context) (*Node, error) {
	args, err := evalArguments(head, tail, 1, env, ctx)
	if err != nil {
		return nil, err
	}
	fn, margs, err := args[0].Decompose()
	if err != nil {
		return nil, err
	}
	if name, ok := fn.Name(); ok && !IsKernel(name) {
		fn, err = env.Get(name)
		if err != nil {
			return nil, err
		}
	}
	if fn.t != NodeMacro {
		return nil, typeError("macroexpand: '%v' is not a macro in '%v'", fn, args[0])
	}
	return expandMacro(fn, margs)
}
