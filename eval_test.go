package conslisp

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func run(src string) (*Node, *Context, error) {
	ctx := NewContext()
	node, err := Parse(src)
	if err != nil {
		return nil, ctx, err
	}
	ret, err := Eval(node, NewEnv(nil), ctx)
	return ret, ctx, err
}

func TestEval(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		err   error
	}{
		{
			name:  "self evaluating",
			input: `"s"`,
			want:  `"s"`,
		},
		{
			name:  "lambda call",
			input: `(def f (lambda (x) (+ x 1))) (f 5)`,
			want:  `6`,
		},
		{
			name:  "closure outlives its call",
			input: `(def make (lambda (n) (lambda (x) (+ x n)))) (def add5 (make 5)) (add5 10)`,
			want:  `15`,
		},
		{
			name:  "closures do not share frames",
			input: `(def make (lambda (n) (lambda (x) (+ x n)))) (def a (make 1)) (def b (make 100)) (+ (a 0) (b 0))`,
			want:  `101`,
		},
		{
			name:  "lambda in head position",
			input: `((lambda (x) (* x 2)) 21)`,
			want:  `42`,
		},
		{
			name:  "lambda without parameters",
			input: `(def k (lambda () 7)) (k)`,
			want:  `7`,
		},
		{
			name:  "recursion",
			input: `(def fact (lambda (n) (if (< n 2) 1 (* n (fact (- n 1)))))) (fact 10)`,
			want:  `3628800`,
		},
		{
			name:  "arguments are evaluated in the caller",
			input: `(def y 2) (def f (lambda (x) x)) (def g (lambda (y) (f (+ y 1)))) (g 10)`,
			want:  `11`,
		},
		{
			name:  "lexical not dynamic scope",
			input: `(def n 1) (def f (lambda () n)) (def g (lambda (n) (f))) (g 99)`,
			want:  `1`,
		},
		{
			name:  "name bound to a non callable",
			input: `(def x 5) (x 1 2)`,
			want:  `5`,
		},
		{
			name:  "ident value is evaluated again",
			input: `(def a (quote b)) (def b 42) (+ a 0)`,
			want:  `42`,
		},
		{
			name:  "ident in call position is not evaluated again",
			input: `(def a (quote b)) (def b 42) (a)`,
			want:  `b`,
		},
		{
			name:  "sequence yields the last value",
			input: `1 2 3`,
			want:  `3`,
		},
		{
			name:  "def in a child frame shadows",
			input: `(def g (lambda (y) (evalseq (def x 2) x))) (def x 1) (g 0)`,
			want:  `2`,
		},
		{
			name:  "parameter shadows a global",
			input: `(def x 1) (def f (lambda (x) (+ x 1))) (f 5)`,
			want:  `6`,
		},
		{
			name:  "redefinition",
			input: `(def x 1) (def x 2)`,
			err:   ErrDefinition,
		},
		{
			name:  "unbound",
			input: `y`,
			err:   ErrUnbound,
		},
		{
			name:  "unbound call",
			input: `(nope 1)`,
			err:   ErrUnbound,
		},
		{
			name:  "too many arguments",
			input: `(def f (lambda (x) x)) (f 1 2)`,
			err:   ErrArity,
		},
		{
			name:  "too few arguments",
			input: `(def f (lambda (x y) x)) (f 1)`,
			err:   ErrType,
		},
		{
			name:  "duplicate parameter",
			input: `(def f (lambda (x x) x)) (f 1 2)`,
			err:   ErrDefinition,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, _, err := run(test.input)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("want error %v but got %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != test.want {
				t.Errorf("want %q for %q but got %q", test.want, test.input, got.String())
			}
		})
	}
}

func TestEvalSequenceOrder(t *testing.T) {
	got, ctx, err := run(`(println 1) (println 2) 3`)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "3" {
		t.Errorf("want 3 but got %v", got)
	}
	if ctx.Output() != "1\n2\n" {
		t.Errorf("want forms evaluated in order, got %q", ctx.Output())
	}
}

func TestEvalCalls(t *testing.T) {
	_, ctx, err := run(`(+ 1 2)`)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.EvalCalls != 3 {
		t.Errorf("want 3 eval calls but got %d", ctx.EvalCalls)
	}
	ctx.Reset()
	if ctx.EvalCalls != 0 || ctx.Output() != "" {
		t.Error("reset should clear counter and output")
	}
}

func TestRecursionLimit(t *testing.T) {
	node, err := Parse(`(def loop (lambda (n) (loop n))) (loop 1)`)
	if err != nil {
		t.Fatal(err)
	}
	ctx := NewContext()
	ctx.MaxDepth = 200
	_, err = Eval(node, NewEnv(nil), ctx)
	if !errors.Is(err, ErrRecursion) {
		t.Fatalf("want recursion error but got %v", err)
	}

	node, _ = Parse(`(def a (quote a)) (+ a 0)`)
	_, err = Eval(node, NewEnv(nil), ctx)
	if !errors.Is(err, ErrRecursion) {
		t.Fatalf("self-referencing name: want recursion error but got %v", err)
	}
}

func TestEvalTrace(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext()
	ctx.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	node, _ := Parse(`(+ 1 2)`)
	if _, err := Eval(node, NewEnv(nil), ctx); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "msg=eval"); got != 3 {
		t.Errorf("want 3 trace records but got %d:\n%s", got, buf.String())
	}
	if !strings.Contains(buf.String(), `form="(+ 1 2)"`) {
		t.Errorf("trace should carry the form:\n%s", buf.String())
	}
}
