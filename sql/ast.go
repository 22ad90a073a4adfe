package sql

import (
	"bytes"
	"strings"
)

// Statement is a parsed statement.
type Statement interface {
	stmt()
	String() string
}

func (*SelectStatement) stmt() {}
func (*InsertStatement) stmt() {}

// SelectStatement represents a SELECT statement.
type SelectStatement struct {
	Fields []string // selected fields, currently never populated
	Table  string   // table name
}

// Clone returns a deep copy of s.
func (s *SelectStatement) Clone() *SelectStatement {
	if s == nil {
		return nil
	}
	other := *s
	other.Fields = cloneStrings(s.Fields)
	return &other
}

// String returns the string representation of the statement.
func (s *SelectStatement) String() string {
	var buf bytes.Buffer
	buf.WriteString("SELECT")
	if len(s.Fields) > 0 {
		buf.WriteString(" ")
		buf.WriteString(strings.Join(s.Fields, ", "))
	}
	buf.WriteString(" INTO ")
	buf.WriteString(s.Table)
	return buf.String()
}

// InsertStatement represents an INSERT statement.
type InsertStatement struct {
	Columns []string // optional column list
	Values  []string // value list
	Table   string   // table name
}

// Clone returns a deep copy of s.
func (s *InsertStatement) Clone() *InsertStatement {
	if s == nil {
		return nil
	}
	other := *s
	other.Columns = cloneStrings(s.Columns)
	other.Values = cloneStrings(s.Values)
	return &other
}

// String returns the string representation of the statement.
func (s *InsertStatement) String() string {
	var buf bytes.Buffer
	buf.WriteString("INSERT INTO ")
	buf.WriteString(s.Table)
	if len(s.Columns) > 0 {
		buf.WriteString(" (")
		buf.WriteString(strings.Join(s.Columns, ", "))
		buf.WriteString(")")
	}
	buf.WriteString(" VALUES (")
	buf.WriteString(strings.Join(s.Values, ", "))
	buf.WriteString(")")
	return buf.String()
}

func cloneStrings(a []string) []string {
	if a == nil {
		return nil
	}
	other := make([]string, len(a))
	copy(other, a)
	return other
}
