package syntax

import (
	"strconv"

	"github.com/solvelab/eqsolve/internal/expr"
)

// Parser consumes tokens produced by the lexer and builds an expression
// tree. The grammar is
//
//	equation := addsub ('=' addsub)?
//	addsub   := muldiv (('+' | '-') muldiv)*
//	muldiv   := primary (('*' | '/') primary)*
//	primary  := number | ident | '(' addsub ')' | '+' primary | '-' primary
//
// Operators are left-associative; a unary minus is rewritten as 0 - operand.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser over a token stream.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses equation text into an Equation. Input without an '=' is a
// parse error for a solve request.
func Parse(input string) (*expr.Equation, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseEquation()
}

// ParseExpr parses a bare expression with no equals sign.
func ParseExpr(input string) (expr.Expr, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens)
	e, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseEquation parses the full token stream as an equation.
func (p *Parser) ParseEquation() (*expr.Equation, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenEquals {
		return nil, &ParseError{Msg: "expected '='", Position: p.peek().Position}
	}
	p.current++
	right, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return expr.NewEquation(left, right), nil
}

func (p *Parser) parseAddSub() (expr.Expr, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case TokenPlus:
			p.current++
			right, err := p.parseMulDiv()
			if err != nil {
				return nil, err
			}
			left = expr.Add(left, right)
		case TokenMinus:
			p.current++
			right, err := p.parseMulDiv()
			if err != nil {
				return nil, err
			}
			left = expr.Sub(left, right)
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseMulDiv() (expr.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case TokenStar:
			p.current++
			right, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			left = expr.Mul(left, right)
		case TokenSlash:
			p.current++
			right, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			left = expr.Div(left, right)
		default:
			return left, nil
		}
	}
}

func (p *Parser) parsePrimary() (expr.Expr, error) {
	token := p.peek()
	switch token.Type {
	case TokenNumber:
		p.current++
		val, err := strconv.ParseFloat(token.Value, 64)
		if err != nil {
			return nil, &ParseError{Msg: "malformed number " + strconv.Quote(token.Value), Position: token.Position}
		}
		return expr.Num(val), nil

	case TokenIdent:
		p.current++
		return expr.Var(token.Value), nil

	case TokenLParen:
		p.current++
		inner, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != TokenRParen {
			return nil, &ParseError{Msg: "unmatched '('", Position: token.Position}
		}
		p.current++
		return inner, nil

	case TokenPlus:
		// A unary plus is a no-op.
		p.current++
		return p.parsePrimary()

	case TokenMinus:
		p.current++
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return expr.Sub(expr.Num(0), operand), nil

	default:
		return nil, &ParseError{Msg: "expected operand, found " + token.Type.String(), Position: token.Position}
	}
}

func (p *Parser) expectEOF() error {
	if tok := p.peek(); tok.Type != TokenEOF {
		return &ParseError{Msg: "unexpected trailing " + tok.Type.String(), Position: tok.Position}
	}
	return nil
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF, Position: -1}
	}
	return p.tokens[p.current]
}
