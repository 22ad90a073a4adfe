package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rqlite/rlexer/encoding"
	"github.com/rqlite/rlexer/sql"
)

func Test_TokenTable(t *testing.T) {
	tt := tokenTable(sql.ScanString("INSERT (x"))
	if exp, got := 6, tt.RowCount(); exp != got {
		t.Fatalf("wrong row count, exp %d, got %d", exp, got)
	}
	if exp, got := 3, tt.ColCount(); exp != got {
		t.Fatalf("wrong column count, exp %d, got %d", exp, got)
	}
	for _, c := range []struct {
		i, j int
		exp  string
	}{
		{0, 1, "token"},
		{1, 0, "1:1"},
		{1, 1, "IDENT"},
		{1, 2, `"INSERT"`},
		{2, 1, "WS"},
		{2, 2, ""},
		{3, 1, "("},
		{5, 1, "EOF"},
	} {
		if got := tt.Get(c.i, c.j); got != c.exp {
			t.Fatalf("Get(%d, %d)=%q, exp %q", c.i, c.j, got, c.exp)
		}
	}
}

func Test_WriteTokens(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTokens(&buf, "select * from user"); err != nil {
		t.Fatalf("failed to write tokens: %s", err)
	}
	for _, s := range []string{"IDENT", `"select"`, `"user"`, "EOF"} {
		if !strings.Contains(buf.String(), s) {
			t.Fatalf("token table missing %s:\n%s", s, buf.String())
		}
	}
}

func Test_Formatters(t *testing.T) {
	stmt := sql.MustParseString(`INSERT INTO tbl (name, email) VALUES (demo, demo)`)

	t.Run("Text", func(t *testing.T) {
		f, err := newFormatter("text", false)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := f.write(&buf, stmt); err != nil {
			t.Fatal(err)
		}
		if exp, got := "INSERT INTO tbl (name, email) VALUES (demo, demo)\n", buf.String(); exp != got {
			t.Fatalf("wrong output, exp %q, got %q", exp, got)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		f, err := newFormatter("json", false)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := f.write(&buf, stmt); err != nil {
			t.Fatal(err)
		}
		other, err := encoding.UnmarshalJSON(bytes.TrimSpace(buf.Bytes()))
		if err != nil {
			t.Fatalf("output is not a valid statement: %s", err)
		}
		if other.String() != stmt.String() {
			t.Fatalf("wrong statement decoded: %s", other)
		}
	})

	t.Run("Proto", func(t *testing.T) {
		f, err := newFormatter("proto", true)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := f.write(&buf, stmt); err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(buf.String(), " compressed=true\n") {
			t.Fatalf("wrong output: %q", buf.String())
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		if _, err := newFormatter("xml", false); err == nil {
			t.Fatal("expected error for unsupported format")
		}
	})
}
