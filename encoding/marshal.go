// Package encoding converts parsed statements to and from wire formats.
//
// Statements travel as a google.protobuf.Struct, so no generated code is
// required by readers. The binary form may be gzip compressed.
package encoding

import (
	"bytes"
	"compress/gzip"
	"errors"
	"expvar"
	"fmt"
	"io"

	"github.com/rqlite/rlexer/sql"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	defaultSizeThreshold = 150

	typeSelect = "SELECT"
	typeInsert = "INSERT"
)

var (
	// ErrUnknownType is returned when an encoded statement has an unknown type.
	ErrUnknownType = errors.New("unknown statement type")

	// ErrMissingTable is returned when an encoded statement has no table name.
	ErrMissingTable = errors.New("missing table name")

	// ErrMissingValues is returned when an encoded INSERT has no values.
	ErrMissingValues = errors.New("missing values")

	// ErrBadList is returned when a list field is not a list of strings.
	ErrBadList = errors.New("field is not a list of strings")
)

const (
	numMarshaled          = "num_marshaled"
	numCompressed         = "num_compressed"
	numUncompressed       = "num_uncompressed"
	numCompressedBytes    = "num_compressed_bytes"
	numPrecompressedBytes = "num_precompressed_bytes"
	numUncompressedBytes  = "num_uncompressed_bytes"
	numCompressionMisses  = "num_compression_misses"
)

// stats captures stats for the statement marshaler.
var stats *expvar.Map

func init() {
	stats = expvar.NewMap("encoding")
	ResetStats()
}

// ResetStats resets the expvar stats for this module. Mostly for test purposes.
func ResetStats() {
	stats.Init()
	stats.Add(numMarshaled, 0)
	stats.Add(numCompressed, 0)
	stats.Add(numUncompressed, 0)
	stats.Add(numCompressedBytes, 0)
	stats.Add(numPrecompressedBytes, 0)
	stats.Add(numUncompressedBytes, 0)
	stats.Add(numCompressionMisses, 0)
}

// ToStruct converts a statement into its Struct representation.
func ToStruct(stmt sql.Statement) (*structpb.Struct, error) {
	m := make(map[string]interface{})
	switch s := stmt.(type) {
	case *sql.SelectStatement:
		m["type"] = typeSelect
		m["table"] = s.Table
		if s.Fields != nil {
			m["fields"] = toList(s.Fields)
		}
	case *sql.InsertStatement:
		m["type"] = typeInsert
		m["table"] = s.Table
		if s.Columns != nil {
			m["columns"] = toList(s.Columns)
		}
		m["values"] = toList(s.Values)
	default:
		return nil, ErrUnknownType
	}
	return structpb.NewStruct(m)
}

// FromStruct converts a Struct back into a statement.
func FromStruct(st *structpb.Struct) (sql.Statement, error) {
	m := st.GetFields()
	table := m["table"].GetStringValue()
	if table == "" {
		return nil, ErrMissingTable
	}

	switch m["type"].GetStringValue() {
	case typeSelect:
		fields, err := fromList(m["fields"])
		if err != nil {
			return nil, fmt.Errorf("fields: %w", err)
		}
		return &sql.SelectStatement{Fields: fields, Table: table}, nil
	case typeInsert:
		cols, err := fromList(m["columns"])
		if err != nil {
			return nil, fmt.Errorf("columns: %w", err)
		}
		values, err := fromList(m["values"])
		if err != nil {
			return nil, fmt.Errorf("values: %w", err)
		} else if len(values) == 0 {
			return nil, ErrMissingValues
		}
		return &sql.InsertStatement{Columns: cols, Values: values, Table: table}, nil
	}
	return nil, ErrUnknownType
}

// Marshal marshals a statement to protobuf bytes.
func Marshal(stmt sql.Statement) ([]byte, error) {
	st, err := ToStruct(stmt)
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(st)
}

// Unmarshal unmarshals protobuf bytes into a statement.
func Unmarshal(b []byte) (sql.Statement, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("proto unmarshal: %s", err)
	}
	return FromStruct(&st)
}

// MarshalJSON marshals a statement to JSON.
func MarshalJSON(stmt sql.Statement) ([]byte, error) {
	st, err := ToStruct(stmt)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(st)
}

// UnmarshalJSON unmarshals JSON into a statement.
func UnmarshalJSON(b []byte) (sql.Statement, error) {
	var st structpb.Struct
	if err := protojson.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("json unmarshal: %s", err)
	}
	return FromStruct(&st)
}

// StatementMarshaler marshals statements, potentially performing gzip
// compression.
type StatementMarshaler struct {
	SizeThreshold    int
	ForceCompression bool
}

// NewStatementMarshaler returns an initialized StatementMarshaler.
func NewStatementMarshaler() *StatementMarshaler {
	return &StatementMarshaler{
		SizeThreshold: defaultSizeThreshold,
	}
}

// Marshal marshals a statement, returning a byte slice, a bool indicating
// whether the contents are compressed, or an error.
func (m *StatementMarshaler) Marshal(stmt sql.Statement) ([]byte, bool, error) {
	stats.Add(numMarshaled, 1)

	b, err := Marshal(stmt)
	if err != nil {
		return nil, false, err
	}
	ubz := len(b)
	stats.Add(numPrecompressedBytes, int64(ubz))

	if ubz < m.SizeThreshold && !m.ForceCompression {
		stats.Add(numUncompressed, 1)
		stats.Add(numUncompressedBytes, int64(ubz))
		return b, false, nil
	}

	var buf bytes.Buffer
	gzw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, false, fmt.Errorf("gzip new writer: %s", err)
	}
	if _, err := gzw.Write(b); err != nil {
		return nil, false, fmt.Errorf("gzip Write: %s", err)
	}
	if err := gzw.Close(); err != nil {
		return nil, false, fmt.Errorf("gzip Close: %s", err)
	}

	// Only keep the compressed form if it is actually smaller.
	if ubz > buf.Len() || m.ForceCompression {
		stats.Add(numCompressed, 1)
		stats.Add(numCompressedBytes, int64(buf.Len()))
		return buf.Bytes(), true, nil
	}
	stats.Add(numCompressionMisses, 1)
	stats.Add(numUncompressedBytes, int64(ubz))
	return b, false, nil
}

// Unmarshal unmarshals bytes produced by Marshal.
func (m *StatementMarshaler) Unmarshal(b []byte, compressed bool) (sql.Statement, error) {
	if compressed {
		gz, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("unmarshal gzip NewReader: %s", err)
		}

		ub, err := io.ReadAll(gz)
		if err != nil {
			return nil, fmt.Errorf("unmarshal gzip ReadAll: %s", err)
		}

		if err := gz.Close(); err != nil {
			return nil, fmt.Errorf("unmarshal gzip Close: %s", err)
		}
		b = ub
	}
	return Unmarshal(b)
}

// Stats returns status and diagnostic information about
// the StatementMarshaler.
func (m *StatementMarshaler) Stats() map[string]interface{} {
	return map[string]interface{}{
		"compression_size":  m.SizeThreshold,
		"force_compression": m.ForceCompression,
	}
}

func toList(a []string) []interface{} {
	other := make([]interface{}, len(a))
	for i := range a {
		other[i] = a[i]
	}
	return other
}

func fromList(v *structpb.Value) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	lv, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, ErrBadList
	}
	var a []string
	for _, e := range lv.ListValue.GetValues() {
		sv, ok := e.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, ErrBadList
		}
		a = append(a, sv.StringValue)
	}
	return a, nil
}
