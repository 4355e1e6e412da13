package calc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Compile parses a per-cell expression into a reusable Program.
// All structural problems — unknown identifiers, wrong function arity,
// unbalanced parentheses, dangling operators — surface here as
// ErrCompile-wrapped errors; a compiled Program can only fail on strict
// arithmetic at evaluation time.
// Complexity: O(len(expr)).
func Compile(expr string) (*Program, error) {
	toks, err := lex(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, compileErr(p.peek().pos, "unexpected %q after expression", p.peek().text)
	}

	return &Program{root: root, src: expr}, nil
}

// compileErr builds an ErrCompile-wrapped error with the byte position.
func compileErr(pos int, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s at position %d", ErrCompile, fmt.Sprintf(format, args...), pos)
}

// token kinds.
const (
	tokNumber = iota
	tokIdent
	tokOp // operators and punctuation, text carries the symbol
)

type token struct {
	kind int
	text string
	pos  int
	num  float64
}

// operators, longest first so "<=" lexes before "<".
var opSymbols = []string{"<=", ">=", "==", "!=", "+", "-", "*", "/", "%", "^", "(", ")", ",", "?", ":", "<", ">"}

// lex splits the expression into tokens, rejecting any character outside
// the whitelisted language.
func lex(expr string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(expr) {
		c := rune(expr[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				j++
			}
			num, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return nil, compileErr(i, "malformed number %q", expr[i:j])
			}
			toks = append(toks, token{kind: tokNumber, text: expr[i:j], pos: i, num: num})
			i = j
		case unicode.IsLetter(c):
			j := i
			for j < len(expr) && (unicode.IsLetter(rune(expr[j])) || unicode.IsDigit(rune(expr[j]))) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: expr[i:j], pos: i})
			i = j
		default:
			matched := false
			for _, sym := range opSymbols {
				if strings.HasPrefix(expr[i:], sym) {
					toks = append(toks, token{kind: tokOp, text: sym, pos: i})
					i += len(sym)
					matched = true
					break
				}
			}
			if !matched {
				return nil, compileErr(i, "illegal character %q", string(c))
			}
		}
	}

	return toks, nil
}

// parser is a recursive-descent parser with conventional precedence:
// ternary < comparison < additive < multiplicative < unary < power.
type parser struct {
	toks []token
	i    int
}

func (p *parser) eof() bool { return p.i >= len(p.toks) }

func (p *parser) peek() token {
	if p.eof() {
		return token{kind: tokOp, text: "<end>", pos: -1}
	}

	return p.toks[p.i]
}

// acceptOp consumes the next token when it is the given operator symbol.
func (p *parser) acceptOp(sym string) bool {
	if !p.eof() && p.toks[p.i].kind == tokOp && p.toks[p.i].text == sym {
		p.i++
		return true
	}

	return false
}

func (p *parser) expectOp(sym string) error {
	if p.acceptOp(sym) {
		return nil
	}

	return compileErr(p.peek().pos, "expected %q, found %q", sym, p.peek().text)
}

// parseTernary handles cond ? a : b, right-associative.
func (p *parser) parseTernary() (node, error) {
	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if !p.acceptOp("?") {
		return cond, nil
	}
	then, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if err = p.expectOp(":"); err != nil {
		return nil, err
	}
	els, err := p.parseTernary()
	if err != nil {
		return nil, err
	}

	return condNode{cond: cond, then: then, els: els}, nil
}

// parseComparison handles < <= > >= == !=, left-associative, yielding 0/1.
func (p *parser) parseComparison() (node, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peekComparison()
		if op == "" {
			return lhs, nil
		}
		p.i++
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		lhs = binaryNode{op: op, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) peekComparison() string {
	if p.eof() || p.toks[p.i].kind != tokOp {
		return ""
	}
	switch p.toks[p.i].text {
	case "<", "<=", ">", ">=", "==", "!=":
		return p.toks[p.i].text
	}

	return ""
}

// parseAdditive handles + and -, left-associative.
func (p *parser) parseAdditive() (node, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOp("+"):
			rhs, err := p.parseMultiplicative()
			if err != nil {
				return nil, err
			}
			lhs = binaryNode{op: "+", lhs: lhs, rhs: rhs}
		case p.acceptOp("-"):
			rhs, err := p.parseMultiplicative()
			if err != nil {
				return nil, err
			}
			lhs = binaryNode{op: "-", lhs: lhs, rhs: rhs}
		default:
			return lhs, nil
		}
	}
}

// parseMultiplicative handles * / %, left-associative.
func (p *parser) parseMultiplicative() (node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch {
		case p.acceptOp("*"):
			op = "*"
		case p.acceptOp("/"):
			op = "/"
		case p.acceptOp("%"):
			op = "%"
		default:
			return lhs, nil
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = binaryNode{op: op, lhs: lhs, rhs: rhs}
	}
}

// parseUnary handles leading minus: -2^2 parses as -(2^2).
func (p *parser) parseUnary() (node, error) {
	if p.acceptOp("-") {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return negNode{operand: operand}, nil
	}

	return p.parsePower()
}

// parsePower handles ^, right-associative and tighter than unary minus.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.acceptOp("^") {
		return base, nil
	}
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return binaryNode{op: "^", lhs: base, rhs: exp}, nil
}

// parsePrimary handles literals, the cell identifiers, function calls,
// and parenthesized subexpressions.
func (p *parser) parsePrimary() (node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokNumber:
		p.i++

		return litNode(tok.num), nil

	case tokIdent:
		p.i++
		if p.acceptOp("(") {
			return p.parseCall(tok)
		}
		switch tok.text {
		case "value":
			return varNode(varValue), nil
		case "x":
			return varNode(varX), nil
		case "y":
			return varNode(varY), nil
		}

		return nil, compileErr(tok.pos, "unknown identifier %q", tok.text)

	default:
		if p.acceptOp("(") {
			inner, err := p.parseTernary()
			if err != nil {
				return nil, err
			}
			if err = p.expectOp(")"); err != nil {
				return nil, err
			}

			return inner, nil
		}

		return nil, compileErr(tok.pos, "unexpected %q", tok.text)
	}
}

// parseCall parses the argument list of a whitelisted function; the
// opening parenthesis is already consumed.
func (p *parser) parseCall(name token) (node, error) {
	arity, ok := funcArity[name.text]
	if !ok {
		return nil, compileErr(name.pos, "unknown function %q", name.text)
	}

	var args []node
	if !p.acceptOp(")") {
		for {
			arg, err := p.parseTernary()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.acceptOp(",") {
				continue
			}
			if err = p.expectOp(")"); err != nil {
				return nil, err
			}
			break
		}
	}
	if len(args) != arity {
		return nil, compileErr(name.pos, "%s expects %d argument(s), got %d", name.text, arity, len(args))
	}

	return callNode{fn: name.text, args: args}, nil
}
