// Package syntax turns equation text into the expression tree consumed by
// the solver.
package syntax

import "fmt"

// TokenType identifies the kind of a lexed token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenIdent
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
	TokenEquals
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "number"
	case TokenIdent:
		return "identifier"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenStar:
		return "'*'"
	case TokenSlash:
		return "'/'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenEquals:
		return "'='"
	default:
		return "?"
	}
}

// Token is a single lexed unit of equation text.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// LexError reports a character the lexer does not recognize.
type LexError struct {
	Char     byte
	Position int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unrecognized character %q at position %d", e.Char, e.Position)
}

// ParseError reports a malformed token stream: an unexpected or missing
// token, an unmatched parenthesis, or trailing input.
type ParseError struct {
	Msg      string
	Position int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Msg)
}
