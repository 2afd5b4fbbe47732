package conslisp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

type NodeType int

const (
	NodeNil NodeType = iota
	NodeBool
	NodeInt
	NodeDouble
	NodeString
	NodeIdent
	NodeCell
	NodeLambda
	NodeMacro
)

var nodeTypeNames = [...]string{
	NodeNil:    "nil",
	NodeBool:   "bool",
	NodeInt:    "int",
	NodeDouble: "double",
	NodeString: "string",
	NodeIdent:  "ident",
	NodeCell:   "list",
	NodeLambda: "lambda",
	NodeMacro:  "macro",
}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "unknown"
}

// Node is a Lisp value. Nodes are never mutated once built, so they are
// freely shared between lists, environments and closures.
//
// For NodeCell, car and cdr hold head and tail. For NodeLambda and
// NodeMacro, car holds the parameter list and cdr the body; a lambda also
// keeps its defining environment in e. Scalars keep their payload in v.
type Node struct {
	t   NodeType
	v   interface{}
	e   *Env
	car *Node
	cdr *Node
}

// Nil is the empty list and the "no value" result.
var Nil = &Node{t: NodeNil}

func NewBool(b bool) *Node {
	return &Node{t: NodeBool, v: b}
}

func NewInt(i int64) *Node {
	return &Node{t: NodeInt, v: i}
}

func NewDouble(f float64) *Node {
	return &Node{t: NodeDouble, v: f}
}

func NewString(s string) *Node {
	return &Node{t: NodeString, v: s}
}

func NewIdent(name string) *Node {
	return &Node{t: NodeIdent, v: name}
}

func newLambda(params, body *Node, env *Env) *Node {
	return &Node{t: NodeLambda, car: params, cdr: body, e: env}
}

func newMacro(params, body *Node) *Node {
	return &Node{t: NodeMacro, car: params, cdr: body}
}

// newCell builds a cons cell without checking tail. Callers must pass a
// list or Nil.
func newCell(head, tail *Node) *Node {
	return &Node{t: NodeCell, car: head, cdr: tail}
}

// Cons prepends head to tail. tail must be a list or Nil.
func Cons(head, tail *Node) (*Node, error) {
	if !tail.IsList() && !tail.IsNil() {
		return nil, typeError("cons: unexpected '%v', expected list or nil", tail)
	}
	return newCell(head, tail), nil
}

// List builds a proper list of the given elements.
func List(nodes ...*Node) *Node {
	ret := Nil
	for i := len(nodes) - 1; i >= 0; i-- {
		ret = newCell(nodes[i], ret)
	}
	return ret
}

func (n *Node) Type() NodeType {
	return n.t
}

func (n *Node) IsNil() bool {
	return n.t == NodeNil
}

func (n *Node) IsList() bool {
	return n.t == NodeCell
}

func (n *Node) Bool() (bool, bool) {
	b, ok := n.v.(bool)
	return b, ok && n.t == NodeBool
}

func (n *Node) Int() (int64, bool) {
	i, ok := n.v.(int64)
	return i, ok && n.t == NodeInt
}

func (n *Node) Double() (float64, bool) {
	f, ok := n.v.(float64)
	return f, ok && n.t == NodeDouble
}

// Str returns the payload of a string node.
func (n *Node) Str() (string, bool) {
	s, ok := n.v.(string)
	return s, ok && n.t == NodeString
}

// Name returns the name of an ident node.
func (n *Node) Name() (string, bool) {
	s, ok := n.v.(string)
	return s, ok && n.t == NodeIdent
}

// Decompose splits a cons cell into head and tail.
func (n *Node) Decompose() (*Node, *Node, error) {
	if n.t != NodeCell {
		return nil, nil, typeError("decompose: unexpected '%v', expected list", n)
	}
	return n.car, n.cdr, nil
}

func (n *Node) Head() (*Node, error) {
	head, _, err := n.Decompose()
	return head, err
}

func (n *Node) Tail() (*Node, error) {
	_, tail, err := n.Decompose()
	return tail, err
}

// ForEach calls fn for every element of the list, front to back. It stops
// when fn returns false or when the chain reaches a non-list.
func (n *Node) ForEach(fn func(*Node) bool) {
	for curr := n; curr.t == NodeCell; curr = curr.cdr {
		if !fn(curr.car) {
			return
		}
	}
}

// Len counts the elements of a list.
func (n *Node) Len() int {
	count := 0
	n.ForEach(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Reverse rebuilds the list back to front. With recursive set, nested
// lists are reversed as well. Non-lists are returned unchanged.
func (n *Node) Reverse(recursive bool) *Node {
	if n.t != NodeCell {
		return n
	}
	ret := Nil
	n.ForEach(func(item *Node) bool {
		if recursive {
			item = item.Reverse(true)
		}
		ret = newCell(item, ret)
		return true
	})
	return ret
}

// Equal reports structural equality. Lambdas additionally require the
// same captured environment.
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil || n.t != o.t {
		return false
	}
	switch n.t {
	case NodeNil:
		return true
	case NodeCell:
		return n.car.Equal(o.car) && n.cdr.Equal(o.cdr)
	case NodeLambda:
		return n.e == o.e && n.car.Equal(o.car) && n.cdr.Equal(o.cdr)
	case NodeMacro:
		return n.car.Equal(o.car) && n.cdr.Equal(o.cdr)
	}
	return n.v == o.v
}

func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

// String renders the canonical textual form of the node.
func (n *Node) String() string {
	if n == nil {
		return "()"
	}
	var buf bytes.Buffer
	switch n.t {
	case NodeNil:
		buf.WriteString("()")
	case NodeBool:
		buf.WriteString(strconv.FormatBool(n.v.(bool)))
	case NodeInt:
		buf.WriteString(strconv.FormatInt(n.v.(int64), 10))
	case NodeDouble:
		buf.WriteString(formatDouble(n.v.(float64)))
	case NodeString:
		fmt.Fprintf(&buf, "\"%s\"", n.v)
	case NodeIdent:
		buf.WriteString(n.v.(string))
	case NodeCell:
		buf.WriteString("(")
		first := true
		n.ForEach(func(item *Node) bool {
			if !first {
				buf.WriteString(" ")
			}
			first = false
			buf.WriteString(item.String())
			return true
		})
		buf.WriteString(")")
	case NodeLambda:
		fmt.Fprintf(&buf, "(lambda %v %v)", n.car, n.cdr)
	case NodeMacro:
		fmt.Fprintf(&buf, "(macro %v %v)", n.car, n.cdr)
	}
	return buf.String()
}
