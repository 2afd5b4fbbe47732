package conslisp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

func NewParser(r io.Reader) *Parser {
	return &Parser{
		buf: bufio.NewReader(r),
	}
}

// Parser turns source text into cons lists in a single scan. Every open
// list is an accumulator on a stack; elements are consed onto the top
// accumulator, so each list is built back to front and the whole program
// is flipped once at the end.
type Parser struct {
	buf   *bufio.Reader
	pos   int
	last  int
	stack []*Node
}

// Parse parses src. See (*Parser).Parse.
func Parse(src string) (*Node, error) {
	return NewParser(strings.NewReader(src)).Parse()
}

func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) readRune() (rune, error) {
	r, n, err := p.buf.ReadRune()
	p.pos += n
	p.last = n
	return r, err
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	if err == nil {
		p.pos -= p.last
	}
	return err
}

func (p *Parser) push(node *Node) {
	top := len(p.stack) - 1
	p.stack[top] = newCell(node, p.stack[top])
}

func (p *Parser) skipComment() error {
	for {
		r, err := p.readRune()
		if err != nil {
			return err
		}
		if r == '\n' {
			return nil
		}
	}
}

// ParseQuoted reads a string literal whose opening quote was already
// consumed. The text is taken verbatim; an unterminated literal runs to
// the end of input.
func (p *Parser) ParseQuoted() (*Node, error) {
	var buf bytes.Buffer
	for {
		r, err := p.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if r == '"' {
			break
		}
		buf.WriteRune(r)
	}
	return NewString(buf.String()), nil
}

func isTokenRune(r rune) bool {
	return unicode.IsGraphic(r) && !unicode.IsSpace(r) && r != '(' && r != ')' && r != '"'
}

func isDigit(r byte) bool {
	return '0' <= r && r <= '9'
}

func (p *Parser) readToken() (string, error) {
	var buf bytes.Buffer
	for {
		r, err := p.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if !isTokenRune(r) {
			p.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return buf.String(), nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	if isDigit(s[0]) {
		return true
	}
	return (s[0] == '-' || s[0] == '+') && len(s) > 1 && isDigit(s[1])
}

// ParsePrimitive reads one number, boolean or identifier.
func (p *Parser) ParsePrimitive() (*Node, error) {
	start := p.pos
	s, err := p.readToken()
	if err != nil {
		return nil, err
	}

	if isNumber(s) {
		if strings.ContainsRune(s, '.') {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed number '%s' at position %d", ErrParse, s, start)
			}
			return NewDouble(f), nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed number '%s' at position %d", ErrParse, s, start)
		}
		return NewInt(i), nil
	}

	s = strings.ToLower(s)
	switch s {
	case "true":
		return NewBool(true), nil
	case "false":
		return NewBool(false), nil
	}
	return NewIdent(s), nil
}

// Parse reads the whole input. A program made of a single top-level form
// yields that form; otherwise the list of all forms is returned.
func (p *Parser) Parse() (*Node, error) {
	p.stack = []*Node{Nil}
	for {
		r, err := p.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch {
		case r == '(':
			p.stack = append(p.stack, Nil)
		case r == ')':
			if len(p.stack) < 2 {
				return nil, fmt.Errorf("%w: unexpected ')' at position %d", ErrParse, p.pos-1)
			}
			l := p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.push(l)
		case r == ';':
			if err := p.skipComment(); err != nil && err != io.EOF {
				return nil, err
			}
		case r == '"':
			node, err := p.ParseQuoted()
			if err != nil {
				return nil, err
			}
			p.push(node)
		case isTokenRune(r):
			p.unreadRune()
			node, err := p.ParsePrimitive()
			if err != nil {
				return nil, err
			}
			p.push(node)
		}
	}

	if len(p.stack) != 1 {
		return nil, fmt.Errorf("%w: %d unclosed list(s)", ErrIncomplete, len(p.stack)-1)
	}
	ret := p.stack[0]
	if ret.IsList() && ret.cdr.IsNil() {
		ret = ret.car
	}
	return ret.Reverse(true), nil
}
