// Package sql implements a scanner and parser for a small SQL-like
// statement language.
//
// Text is reduced to tokens by a Scanner, and tokens are assembled into a
// Statement by a Parser. The parser is a state machine that fails on the
// first unexpected token. The only exception is the optional INSERT column
// list, which is parsed speculatively and abandoned on failure.
//
//	stmt, err := sql.ParseString("INSERT INTO tbl (name, email) VALUES (demo, demo)")
package sql

// assert panics if condition is false.
func assert(condition bool) {
	if !condition {
		panic("assert failed")
	}
}
