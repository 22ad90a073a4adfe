package sql

import (
	"fmt"
	"strings"
)

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token)
	for i := keyword_beg + 1; i < keyword_end; i++ {
		keywords[strings.ToLower(tokens[i])] = i
	}
}

// Token is the set of lexical tokens of the statement language.
type Token int

// The list of tokens.
const (
	// Special tokens
	ILLEGAL Token = iota
	EOF
	WS

	literal_beg
	IDENT // name
	literal_end

	operator_beg
	STAR  // *
	COMMA // ,
	LP    // (
	RP    // )
	operator_end

	keyword_beg
	SELECT
	FROM
	INSERT
	INTO
	VALUES
	keyword_end
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	WS:      "WS",

	IDENT: "IDENT",

	STAR:  "*",
	COMMA: ",",
	LP:    "(",
	RP:    ")",

	SELECT: "SELECT",
	FROM:   "FROM",
	INSERT: "INSERT",
	INTO:   "INTO",
	VALUES: "VALUES",
}

// String returns the string representation of the token.
func (tok Token) String() string {
	if tok >= 0 && tok < Token(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

// IsLiteral returns true for literal tokens.
func (tok Token) IsLiteral() bool { return tok > literal_beg && tok < literal_end }

// IsOperator returns true for punctuation tokens.
func (tok Token) IsOperator() bool { return tok > operator_beg && tok < operator_end }

// IsKeyword returns true for keyword tokens.
func (tok Token) IsKeyword() bool { return tok > keyword_beg && tok < keyword_end }

// Lookup returns the keyword token associated with a given identifier.
// Matching is case-insensitive. Returns IDENT if ident is not a keyword.
func Lookup(ident string) Token {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// Pos specifies the line and character position of a token.
// The Column and Line are both zero-based.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// String returns a string representation of the position.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// IsValid returns true if p is a valid position.
func (p Pos) IsValid() bool {
	return p.Offset >= 0
}

// Lexeme is a single scanned token along with its position and literal text.
type Lexeme struct {
	Pos Pos
	Tok Token
	Lit string
}

// String returns a readable representation of the lexeme.
func (l Lexeme) String() string {
	if l.Tok == IDENT || l.Tok == ILLEGAL {
		return fmt.Sprintf("%s(%q)", l.Tok, l.Lit)
	}
	return l.Tok.String()
}
