package syntax

// Lexer scans equation text and produces tokens.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens,
// terminated by an EOF token. An unrecognized character yields a LexError.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case isWhitespace(c):
			l.position++

		case isDigit(c):
			l.lexNumber(currentPos)

		case isLetter(c):
			// Alphabetic runs are split into individual single-letter
			// variable tokens: "xy" lexes as "x", "y".
			l.addToken(TokenIdent, string(c), currentPos)
			l.position++

		case c == '+':
			l.addToken(TokenPlus, "+", currentPos)
			l.position++

		case c == '-':
			l.addToken(TokenMinus, "-", currentPos)
			l.position++

		case c == '*':
			l.addToken(TokenStar, "*", currentPos)
			l.position++

		case c == '/':
			l.addToken(TokenSlash, "/", currentPos)
			l.position++

		case c == '(':
			l.addToken(TokenLParen, "(", currentPos)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", currentPos)
			l.position++

		case c == '=':
			l.addToken(TokenEquals, "=", currentPos)
			l.position++

		default:
			return nil, &LexError{Char: c, Position: currentPos}
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexNumber scans an integer or decimal literal.
func (l *Lexer) lexNumber(startPos int) {
	start := l.position
	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		l.position++
	}
	if l.position < len(l.input) && l.input[l.position] == '.' &&
		l.position+1 < len(l.input) && isDigit(l.input[l.position+1]) {
		l.position++
		for l.position < len(l.input) && isDigit(l.input[l.position]) {
			l.position++
		}
	}
	l.addToken(TokenNumber, l.input[start:l.position], startPos)
}

// addToken appends a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
