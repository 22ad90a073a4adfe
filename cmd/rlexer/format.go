package main

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/rqlite/rlexer/encoding"
	"github.com/rqlite/rlexer/sql"
)

// formatter writes a parsed statement in one output format.
type formatter interface {
	write(w io.Writer, stmt sql.Statement) error
}

func newFormatter(format string, compress bool) (formatter, error) {
	switch format {
	case "", "text":
		return textFormatter{}, nil
	case "json":
		return jsonFormatter{}, nil
	case "proto":
		m := encoding.NewStatementMarshaler()
		m.ForceCompression = compress
		return protoFormatter{m: m}, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

type textFormatter struct{}

func (textFormatter) write(w io.Writer, stmt sql.Statement) error {
	_, err := fmt.Fprintln(w, stmt.String())
	return err
}

type jsonFormatter struct{}

func (jsonFormatter) write(w io.Writer, stmt sql.Statement) error {
	b, err := encoding.MarshalJSON(stmt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

type protoFormatter struct {
	m *encoding.StatementMarshaler
}

func (f protoFormatter) write(w io.Writer, stmt sql.Statement) error {
	b, compressed, err := f.m.Marshal(stmt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s compressed=%t\n", base64.StdEncoding.EncodeToString(b), compressed)
	return err
}
