// Package equation parses MetaNetX reaction equations and resolves
// their participants against identifier lookup tables.
package equation

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TokenEOF         TokenType = iota
	TokenPlus                  // +
	TokenEquals                // =
	TokenAt                    // @
	TokenNumber                // 2, 0.5
	TokenExpr                  // (n), [2n+1] captured verbatim
	TokenCompound              // MNXM123, BIOMASS
	TokenCompartment           // MNXC3, MNXD1, MNXDX, BOUNDARY
	TokenIllegal
)

// Token represents a single token from the lexer.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// Lexer tokenizes a reaction equation string.
type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.pos
	var tok Token

	switch l.ch {
	case 0:
		tok = Token{Type: TokenEOF, Literal: "", Pos: pos}
	case '+':
		tok = Token{Type: TokenPlus, Literal: "+", Pos: pos}
		l.readChar()
	case '=':
		tok = Token{Type: TokenEquals, Literal: "=", Pos: pos}
		l.readChar()
	case '@':
		tok = Token{Type: TokenAt, Literal: "@", Pos: pos}
		l.readChar()
	case '(':
		return l.readExpr('(', ')', pos)
	case '[':
		return l.readExpr('[', ']', pos)
	default:
		if isDigit(l.ch) {
			return Token{Type: TokenNumber, Literal: l.readNumber(), Pos: pos}
		}
		if isLetter(l.ch) {
			word := l.readWord()
			return Token{Type: classifyWord(word), Literal: word, Pos: pos}
		}
		tok = Token{Type: TokenIllegal, Literal: string(l.ch), Pos: pos}
		l.readChar()
	}

	return tok
}

// readNumber reads an integer or decimal literal. The dot is only
// consumed when a digit follows, so "1." leaves the dot behind.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readWord() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readExpr captures a balanced delimiter expression verbatim,
// including the outer delimiters. The contents are opaque: symbolic
// stoichiometry such as "(n)" or "[2n+1]" passes through unparsed.
// An unterminated expression yields an illegal token.
func (l *Lexer) readExpr(opener, closer byte, pos int) Token {
	start := l.pos
	depth := 0
	for l.ch != 0 {
		if l.ch == opener {
			depth++
		} else if l.ch == closer {
			depth--
			if depth == 0 {
				l.readChar()
				return Token{Type: TokenExpr, Literal: l.input[start:l.pos], Pos: pos}
			}
		}
		l.readChar()
	}
	return Token{Type: TokenIllegal, Literal: l.input[start:], Pos: pos}
}

// classifyWord maps an alphanumeric word onto its lexical category.
// Anything outside the known identifier shapes is illegal.
func classifyWord(word string) TokenType {
	switch {
	case word == biomassKeyword:
		return TokenCompound
	case word == boundaryKeyword:
		return TokenCompartment
	case isPrefixedNumber(word, "MNXM"):
		return TokenCompound
	case isPrefixedNumber(word, "MNXC"), isPrefixedNumber(word, "MNXD"), word == "MNXDX":
		return TokenCompartment
	}
	return TokenIllegal
}

// isPrefixedNumber reports whether word is prefix followed by one or
// more digits.
func isPrefixedNumber(word, prefix string) bool {
	if len(word) <= len(prefix) || word[:len(prefix)] != prefix {
		return false
	}
	for i := len(prefix); i < len(word); i++ {
		if !isDigit(word[i]) {
			return false
		}
	}
	return true
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Reserved literal tokens for pseudo-compounds and the system
// boundary compartment.
const (
	biomassKeyword  = "BIOMASS"
	boundaryKeyword = "BOUNDARY"
)

// Tokenize returns all tokens from the input, ending with EOF.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return tokens
}
