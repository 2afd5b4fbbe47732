package conslisp

// Macros are plain syntax substitution. The call's argument forms are
// bound, unevaluated, in a frame with no parent; every identifier in the
// macro body that names a parameter is replaced by its argument form, and
// the result is evaluated where the macro was called. Names are not
// renamed, so an expansion can capture the caller's bindings.

func expandMacro(fn, args *Node) (*Node, error) {
	scope := NewEnv(nil)
	err := bindParams(fn, args, scope, func(arg *Node) (*Node, error) {
		return arg, nil
	})
	if err != nil {
		return nil, err
	}
	return substitute(fn.cdr, scope), nil
}

func substitute(node *Node, scope *Env) *Node {
	switch node.t {
	case NodeIdent:
		if v, ok := scope.Lookup(node.v.(string)); ok {
			return v
		}
	case NodeCell:
		ret := Nil
		node.ForEach(func(item *Node) bool {
			ret = newCell(substitute(item, scope), ret)
			return true
		})
		return ret.Reverse(false)
	}
	return node
}

func callMacro(fn, args *Node, env *Env, ctx *Context) (*Node, error) {
	expanded, err := expandMacro(fn, args)
	if err != nil {
		return nil, err
	}
	return Eval(expanded, env, ctx)
}
