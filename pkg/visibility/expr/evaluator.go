package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/visibility"
)

// Evaluator compiles visibility rules over string-valued controls and caches
// the compiled programs by rule text.
//
// Supported forms:
//   - presence: `title` (non-empty and not "false")
//   - comparison: `title == "other"`, `payment != 'paypal'`
//   - composition: `a == "x" && !b`, `(a || b) && c == "y"`
//
// Identifiers are element ids and may contain letters, digits, '-', '_' and
// '.'. Bare words on the right of a comparison are read as strings.
type Evaluator struct {
	mu       sync.Mutex
	programs map[string]*Program
}

// New constructs an evaluator with an empty program cache.
func New() *Evaluator {
	return &Evaluator{programs: make(map[string]*Program)}
}

var _ visibility.Evaluator = (*Evaluator)(nil)

// Eval compiles (or reuses) rule and evaluates it. An empty rule is visible.
func (e *Evaluator) Eval(_ string, rule string, ctx visibility.Context) (bool, error) {
	program, err := e.program(rule)
	if err != nil {
		return false, err
	}
	return program.Eval(ctx), nil
}

func (e *Evaluator) program(rule string) (*Program, error) {
	key := strings.TrimSpace(rule)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.programs == nil {
		e.programs = make(map[string]*Program)
	}
	if p, ok := e.programs[key]; ok {
		return p, nil
	}
	p, err := Compile(key)
	if err != nil {
		return nil, err
	}
	e.programs[key] = p
	return p, nil
}

// Program is a compiled rule.
type Program struct {
	source string
	root   node
}

// Compile parses rule into a Program. The empty rule compiles to a program
// that always holds.
func Compile(rule string) (*Program, error) {
	source := strings.TrimSpace(rule)
	if source == "" {
		return &Program{root: constant(true)}, nil
	}
	toks, err := scan(source)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("visibility/expr: unexpected %q in %q", p.peek().text, source)
	}
	return &Program{source: source, root: root}, nil
}

// Eval runs the program against ctx.
func (p *Program) Eval(ctx visibility.Context) bool {
	if p == nil || p.root == nil {
		return true
	}
	return p.root.eval(ctx)
}

// Identifiers lists the element ids the rule reads, in first-seen order.
func (p *Program) Identifiers() []string {
	if p == nil || p.root == nil {
		return nil
	}
	seen := map[string]struct{}{}
	var out []string
	p.root.walk(func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	})
	return out
}

// String returns the rule text the program was compiled from.
func (p *Program) String() string {
	if p == nil {
		return ""
	}
	return p.source
}

type kind int

const (
	kindIdent kind = iota
	kindString
	kindEq
	kindNeq
	kindAnd
	kindOr
	kindNot
	kindOpen
	kindClose
)

type tok struct {
	kind kind
	text string
}

func scan(src string) ([]tok, error) {
	var out []tok
	for i := 0; i < len(src); {
		ch := src[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '(':
			out = append(out, tok{kindOpen, "("})
			i++
		case ch == ')':
			out = append(out, tok{kindClose, ")"})
			i++
		case strings.HasPrefix(src[i:], "=="):
			out = append(out, tok{kindEq, "=="})
			i += 2
		case strings.HasPrefix(src[i:], "!="):
			out = append(out, tok{kindNeq, "!="})
			i += 2
		case strings.HasPrefix(src[i:], "&&"):
			out = append(out, tok{kindAnd, "&&"})
			i += 2
		case strings.HasPrefix(src[i:], "||"):
			out = append(out, tok{kindOr, "||"})
			i += 2
		case ch == '!':
			out = append(out, tok{kindNot, "!"})
			i++
		case ch == '"' || ch == '\'':
			end := i + 1
			for end < len(src) && src[end] != ch {
				if src[end] == '\\' {
					end++
				}
				end++
			}
			if end >= len(src) {
				return nil, errors.New("visibility/expr: unterminated string literal")
			}
			text := src[i+1 : end]
			if ch == '"' {
				unquoted, err := strconv.Unquote(src[i : end+1])
				if err != nil {
					return nil, fmt.Errorf("visibility/expr: invalid string literal: %w", err)
				}
				text = unquoted
			}
			out = append(out, tok{kindString, text})
			i = end + 1
		case isIdentByte(ch):
			start := i
			for i < len(src) && isIdentByte(src[i]) {
				i++
			}
			out = append(out, tok{kindIdent, src[start:i]})
		default:
			return nil, fmt.Errorf("visibility/expr: unexpected character %q", ch)
		}
	}
	return out, nil
}

func isIdentByte(ch byte) bool {
	return ch == '-' || ch == '_' || ch == '.' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

type parser struct {
	toks []tok
	pos  int
}

func (p *parser) done() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() tok {
	if p.done() {
		return tok{}
	}
	return p.toks[p.pos]
}

func (p *parser) accept(k kind) bool {
	if p.done() || p.toks[p.pos].kind != k {
		return false
	}
	p.pos++
	return true
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.accept(kindOr) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = or{left, right}
	}
	return left, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.accept(kindAnd) {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = and{left, right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.accept(kindNot) {
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return not{inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	if p.done() {
		return nil, errors.New("visibility/expr: unexpected end of rule")
	}
	if p.accept(kindOpen) {
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if !p.accept(kindClose) {
			return nil, errors.New("visibility/expr: missing closing ')'")
		}
		return inner, nil
	}

	ident := p.peek()
	if ident.kind != kindIdent {
		return nil, fmt.Errorf("visibility/expr: expected identifier, got %q", ident.text)
	}
	p.pos++

	switch {
	case p.accept(kindEq):
		lit, err := p.literal()
		if err != nil {
			return nil, err
		}
		return compare{ident: ident.text, want: lit}, nil
	case p.accept(kindNeq):
		lit, err := p.literal()
		if err != nil {
			return nil, err
		}
		return not{compare{ident: ident.text, want: lit}}, nil
	}
	if ident.text == "true" || ident.text == "false" {
		return constant(ident.text == "true"), nil
	}
	return present{ident: ident.text}, nil
}

func (p *parser) literal() (string, error) {
	if p.done() {
		return "", errors.New("visibility/expr: missing value after comparison")
	}
	t := p.toks[p.pos]
	if t.kind != kindString && t.kind != kindIdent {
		return "", fmt.Errorf("visibility/expr: expected value, got %q", t.text)
	}
	p.pos++
	return t.text, nil
}

type node interface {
	eval(ctx visibility.Context) bool
	walk(fn func(ident string))
}

type constant bool

func (c constant) eval(visibility.Context) bool { return bool(c) }
func (constant) walk(func(string))             {}

type or struct{ left, right node }

func (n or) eval(ctx visibility.Context) bool { return n.left.eval(ctx) || n.right.eval(ctx) }
func (n or) walk(fn func(string))             { n.left.walk(fn); n.right.walk(fn) }

type and struct{ left, right node }

func (n and) eval(ctx visibility.Context) bool { return n.left.eval(ctx) && n.right.eval(ctx) }
func (n and) walk(fn func(string))             { n.left.walk(fn); n.right.walk(fn) }

type not struct{ inner node }

func (n not) eval(ctx visibility.Context) bool { return !n.inner.eval(ctx) }
func (n not) walk(fn func(string))             { n.inner.walk(fn) }

type compare struct {
	ident string
	want  string
}

func (n compare) eval(ctx visibility.Context) bool {
	got, _ := ctx.Value(n.ident)
	return got == n.want
}

func (n compare) walk(fn func(string)) { fn(n.ident) }

type present struct{ ident string }

func (n present) eval(ctx visibility.Context) bool {
	got, ok := ctx.Value(n.ident)
	if !ok {
		return false
	}
	got = strings.TrimSpace(got)
	return got != "" && got != "false"
}

func (n present) walk(fn func(string)) { fn(n.ident) }
