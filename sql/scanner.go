package sql

import (
	"sort"
	"strings"
)

// Scanner represents a lexical scanner over a single statement.
//
// The scanner owns an immutable rune buffer and a cursor into it. Each call
// to Scan produces exactly one token. The cursor can be saved with Mark and
// restored with Reset, which is how the parser pushes tokens back.
type Scanner struct {
	buf   []rune
	pos   int
	lines []int // offsets of the first rune of each line
}

// NewScanner returns a new instance of Scanner over s.
func NewScanner(s string) *Scanner {
	buf := []rune(s)
	lines := []int{0}
	for i, ch := range buf {
		if ch == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &Scanner{
		buf:   buf,
		lines: lines,
	}
}

// ScanString returns every token in s, up to and including EOF.
func ScanString(s string) []Lexeme {
	return NewScanner(s).ScanText()
}

// ScanText scans until the end of input and returns all tokens read,
// including the final EOF.
func (s *Scanner) ScanText() []Lexeme {
	var a []Lexeme
	for {
		pos, tok, lit := s.Scan()
		a = append(a, Lexeme{Pos: pos, Tok: tok, Lit: lit})
		if tok == EOF {
			return a
		}
	}
}

// Scan returns the next token and its literal value. Identifiers are
// always returned as IDENT, use Lookup to promote keywords.
func (s *Scanner) Scan() (pos Pos, tok Token, lit string) {
	pos = s.position(s.pos)

	ch, ok := s.read()
	if !ok {
		return pos, EOF, ""
	}

	if isWhitespace(ch) {
		s.unread()
		return pos, s.scanWhitespace(), ""
	} else if isLetter(ch) {
		s.unread()
		return pos, IDENT, s.scanIdent()
	}

	switch ch {
	case '*':
		return pos, STAR, "*"
	case ',':
		return pos, COMMA, ","
	case '(':
		return pos, LP, "("
	case ')':
		return pos, RP, ")"
	}
	return pos, ILLEGAL, string(ch)
}

// scanWhitespace consumes the current rune and all contiguous whitespace.
func (s *Scanner) scanWhitespace() Token {
	for {
		ch, ok := s.read()
		if !ok {
			break
		} else if !isWhitespace(ch) {
			s.unread()
			break
		}
	}
	return WS
}

// scanIdent consumes the current rune and all contiguous identifier runes.
func (s *Scanner) scanIdent() string {
	var buf strings.Builder
	for {
		ch, ok := s.read()
		if !ok {
			break
		} else if !isIdentChar(ch) {
			s.unread()
			break
		}
		buf.WriteRune(ch)
	}
	return buf.String()
}

// read reads the rune at the cursor and advances. Returns false at the end
// of the buffer.
func (s *Scanner) read() (rune, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	ch := s.buf[s.pos]
	s.pos++
	return ch, true
}

// unread moves the cursor back by one rune.
func (s *Scanner) unread() {
	if s.pos > 0 {
		s.pos--
	}
}

// Mark returns the current cursor so it can be restored with Reset.
func (s *Scanner) Mark() int { return s.pos }

// Reset moves the cursor to a value previously returned by Mark.
func (s *Scanner) Reset(mark int) {
	assert(mark >= 0 && mark <= len(s.buf))
	s.pos = mark
}

// position converts a rune offset into a Pos.
func (s *Scanner) position(off int) Pos {
	line := sort.SearchInts(s.lines, off+1) - 1
	return Pos{Offset: off, Line: line, Column: off - s.lines[line]}
}

// isWhitespace returns true if the rune is a space, tab, or newline.
func isWhitespace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\n' }

// isLetter returns true if the rune is an ASCII letter.
func isLetter(ch rune) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentChar(ch rune) bool { return isLetter(ch) || isDigit(ch) || ch == '_' }
