package sql

import (
	"testing"
)

func Test_ScannerReadEmpty(t *testing.T) {
	s := NewScanner("")
	if _, ok := s.read(); ok {
		t.Fatal("read of empty buffer returned a rune")
	}
}

func Test_ScannerReadLetter(t *testing.T) {
	s := NewScanner("a")
	ch, ok := s.read()
	if !ok || ch != 'a' {
		t.Fatalf("read returned %q, %v, want 'a', true", ch, ok)
	}
	if _, ok := s.read(); ok {
		t.Fatal("second read returned a rune")
	}
}

func Test_ScannerUnread(t *testing.T) {
	s := NewScanner("a")
	if s.pos != 0 {
		t.Fatalf("initial cursor is %d", s.pos)
	}
	s.read()
	if s.pos != 1 {
		t.Fatalf("cursor after read is %d", s.pos)
	}
	s.unread()
	if s.pos != 0 {
		t.Fatalf("cursor after unread is %d", s.pos)
	}

	// Unread at the start of the buffer is a no-op.
	s.unread()
	if s.pos != 0 {
		t.Fatalf("cursor after second unread is %d", s.pos)
	}
}

func Test_ScannerScanWhitespace(t *testing.T) {
	s := NewScanner(" ")
	if tok := s.scanWhitespace(); tok != WS {
		t.Fatalf("scanWhitespace returned %s", tok)
	}
	if s.pos != 1 {
		t.Fatalf("cursor after scanWhitespace is %d", s.pos)
	}

	s = NewScanner(" \t\n x")
	s.scanWhitespace()
	if s.pos != 4 {
		t.Fatalf("cursor after scanWhitespace is %d, want 4", s.pos)
	}
}

func Test_ScannerScanIdent(t *testing.T) {
	s := NewScanner("user")
	if lit := s.scanIdent(); lit != "user" {
		t.Fatalf("scanIdent returned %q", lit)
	}
	if s.pos != 4 {
		t.Fatalf("cursor after scanIdent is %d", s.pos)
	}

	s = NewScanner("user_2,x")
	if lit := s.scanIdent(); lit != "user_2" {
		t.Fatalf("scanIdent returned %q", lit)
	}
	if s.pos != 6 {
		t.Fatalf("cursor after scanIdent is %d, want 6", s.pos)
	}
}

func Test_ScannerMarkReset(t *testing.T) {
	s := NewScanner("foo bar")
	s.Scan()
	m := s.Mark()
	if _, tok, _ := s.Scan(); tok != WS {
		t.Fatalf("expected WS, got %s", tok)
	}
	if _, _, lit := s.Scan(); lit != "bar" {
		t.Fatalf("expected bar, got %q", lit)
	}

	s.Reset(m)
	if _, tok, _ := s.Scan(); tok != WS {
		t.Fatalf("expected WS after reset, got %s", tok)
	}
}

func Test_ScannerPosition(t *testing.T) {
	s := NewScanner("ab\ncd\n\nef")
	for _, tt := range []struct {
		off  int
		line int
		col  int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
		{7, 3, 0},
		{9, 3, 2},
	} {
		p := s.position(tt.off)
		if p.Line != tt.line || p.Column != tt.col {
			t.Fatalf("position(%d)=%d:%d, want %d:%d", tt.off, p.Line, p.Column, tt.line, tt.col)
		}
	}
}
