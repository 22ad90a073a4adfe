package main

import (
	"fmt"
	"io"

	"github.com/mkideal/pkg/textutil"
	"github.com/rqlite/rlexer/sql"
)

// tokenTable implements textutil.Table over a scanned token stream.
type tokenTable []sql.Lexeme

var tokenHeader = []string{"pos", "token", "literal"}

// RowCount implements textutil.Table interface
func (t tokenTable) RowCount() int {
	return len(t) + 1
}

// ColCount implements textutil.Table interface
func (t tokenTable) ColCount() int {
	return len(tokenHeader)
}

// Get implements textutil.Table interface
func (t tokenTable) Get(i, j int) string {
	if i == 0 {
		return tokenHeader[j]
	}

	l := t[i-1]
	switch j {
	case 0:
		return l.Pos.String()
	case 1:
		return l.Tok.String()
	default:
		if l.Tok == sql.IDENT || l.Tok == sql.ILLEGAL {
			return fmt.Sprintf("%q", l.Lit)
		}
		return ""
	}
}

// headerRenderStyle renders the header of the table in color.
type headerRenderStyle struct {
	textutil.DefaultStyle
}

func (render headerRenderStyle) CellRender(row, col int, cell string, cw *textutil.ColorWriter) {
	if row != 0 {
		fmt.Fprint(cw, cell)
	} else {
		fmt.Fprint(cw, cw.Color.Cyan(cell))
	}
}

var headerRender = &headerRenderStyle{}

// writeTokens scans line and writes its tokens as a table.
func writeTokens(w io.Writer, line string) error {
	textutil.WriteTable(w, tokenTable(sql.ScanString(line)), headerRender)
	return nil
}
