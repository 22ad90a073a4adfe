package sql

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

var (
	// ErrBadStatement is returned when the input does not begin with a
	// statement keyword.
	ErrBadStatement = errors.New("bad statement beginning")

	// ErrIntoExpected is returned when the statement keyword is not followed by INTO.
	ErrIntoExpected = errors.New("INTO keyword expected")

	// ErrTableNameExpected is returned when INTO is not followed by an identifier.
	ErrTableNameExpected = errors.New("table name expected")

	// ErrValuesExpected is returned when an INSERT is missing its VALUES keyword.
	ErrValuesExpected = errors.New("VALUES keyword expected")

	// ErrLParenExpected is returned when a list does not open with a parenthesis.
	ErrLParenExpected = errors.New("( expected")

	// ErrIdentExpected is returned when a list item is not an identifier.
	ErrIdentExpected = errors.New("ident expected")

	// ErrRParenExpected is returned when a list is not closed with a parenthesis.
	ErrRParenExpected = errors.New(") expected")

	// ErrWrongStatement is returned when a parser state runs against a
	// statement of the wrong type.
	ErrWrongStatement = errors.New("wrong statement type")

	// ErrNoStatement is returned when parsing finishes without a statement.
	ErrNoStatement = errors.New("could not parse the string")
)

// Error represents a parse error at a given position.
type Error struct {
	Pos Pos
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel error.
func (e *Error) Unwrap() error { return e.Err }

// state is a single step of the parser state machine.
type state int

const (
	stateInit state = iota
	stateSelect
	stateInsert
	stateIntoKeyword
	stateTableName
	stateColumns
	stateValuesKeyword
	stateValues
	stateEnd
)

var states = [...]string{
	stateInit:          "init",
	stateSelect:        "select",
	stateInsert:        "insert",
	stateIntoKeyword:   "into-keyword",
	stateTableName:     "table-name",
	stateColumns:       "columns",
	stateValuesKeyword: "values-keyword",
	stateValues:        "values",
	stateEnd:           "end",
}

func (st state) String() string {
	if st >= 0 && int(st) < len(states) {
		return states[st]
	}
	return "unknown"
}

// Parser represents a statement parser. A Parser is good for a single
// parse of a single input and is not safe for concurrent use.
type Parser struct {
	s *Scanner

	last int       // scanner mark before the most recent scan
	stmt Statement // statement being built

	logger hclog.Logger
}

// NewParser returns a new instance of Parser that reads from s.
func NewParser(s string) *Parser {
	return &Parser{
		s:      NewScanner(s),
		logger: hclog.NewNullLogger(),
	}
}

// ParseString parses s into a statement.
func ParseString(s string) (Statement, error) {
	return NewParser(s).Parse()
}

// MustParseString parses s into a statement. Panic on error.
func MustParseString(s string) Statement {
	stmt, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return stmt
}

// SetLogger sets the logger used to trace state transitions.
func (p *Parser) SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	p.logger = logger
}

// Parse runs the state machine to completion and returns the statement.
// The first failure aborts the parse and no partial statement is returned.
func (p *Parser) Parse() (Statement, error) {
	st := stateInit
	for st != stateEnd {
		next, err := p.step(st)
		if err != nil {
			p.logger.Debug("parse failed", "state", st.String(), "error", err)
			return nil, err
		}
		p.logger.Trace("state transition", "from", st.String(), "to", next.String())
		st = next
	}

	if p.stmt == nil {
		return nil, &Error{Pos: p.s.position(p.s.Mark()), Err: ErrNoStatement}
	}
	return p.stmt, nil
}

// step executes a single state and returns the state to run next.
func (p *Parser) step(st state) (state, error) {
	switch st {
	case stateInit:
		return p.parseInit()
	case stateSelect:
		p.stmt = &SelectStatement{}
		return stateIntoKeyword, nil
	case stateInsert:
		p.stmt = &InsertStatement{}
		return stateIntoKeyword, nil
	case stateIntoKeyword:
		return p.parseIntoKeyword()
	case stateTableName:
		return p.parseTableName()
	case stateColumns:
		return p.parseColumns()
	case stateValuesKeyword:
		return p.parseValuesKeyword()
	case stateValues:
		return p.parseValues()
	}
	assert(st == stateEnd)
	return stateEnd, nil
}

func (p *Parser) parseInit() (state, error) {
	pos, tok, _ := p.scanIgnoreWhitespace()
	switch tok {
	case SELECT:
		return stateSelect, nil
	case INSERT:
		return stateInsert, nil
	}
	return stateEnd, &Error{Pos: pos, Err: ErrBadStatement}
}

func (p *Parser) parseIntoKeyword() (state, error) {
	if pos, tok, _ := p.scanIgnoreWhitespace(); tok != INTO {
		return stateEnd, &Error{Pos: pos, Err: ErrIntoExpected}
	}
	return stateTableName, nil
}

func (p *Parser) parseTableName() (state, error) {
	pos, tok, lit := p.scanIgnoreWhitespace()
	if tok != IDENT {
		return stateEnd, &Error{Pos: pos, Err: ErrTableNameExpected}
	}

	switch stmt := p.stmt.(type) {
	case *SelectStatement:
		stmt.Table = lit
		return stateEnd, nil
	case *InsertStatement:
		stmt.Table = lit
		return stateColumns, nil
	case nil:
		return stateEnd, &Error{Pos: pos, Err: ErrNoStatement}
	default:
		return stateEnd, &Error{Pos: pos, Err: ErrWrongStatement}
	}
}

// parseColumns speculatively parses an optional column list. If the list is
// absent or malformed the scanner is rewound and the columns stay empty.
func (p *Parser) parseColumns() (state, error) {
	stmt, ok := p.stmt.(*InsertStatement)
	if !ok {
		return stateEnd, &Error{Pos: p.s.position(p.s.Mark()), Err: ErrWrongStatement}
	}

	mark := p.s.Mark()
	cols, err := p.parseList()
	if err != nil {
		p.logger.Trace("no column list", "reason", err)
		p.s.Reset(mark)
		return stateValuesKeyword, nil
	}
	stmt.Columns = cols
	return stateValuesKeyword, nil
}

func (p *Parser) parseValuesKeyword() (state, error) {
	if pos, tok, _ := p.scanIgnoreWhitespace(); tok != VALUES {
		return stateEnd, &Error{Pos: pos, Err: ErrValuesExpected}
	}
	return stateValues, nil
}

func (p *Parser) parseValues() (state, error) {
	stmt, ok := p.stmt.(*InsertStatement)
	if !ok {
		return stateEnd, &Error{Pos: p.s.position(p.s.Mark()), Err: ErrWrongStatement}
	}

	values, err := p.parseList()
	if err != nil {
		return stateEnd, err
	}
	stmt.Values = values
	return stateEnd, nil
}

// parseList parses a parenthesized, comma-separated list of identifiers.
func (p *Parser) parseList() ([]string, error) {
	if pos, tok, _ := p.scanIgnoreWhitespace(); tok != LP {
		return nil, &Error{Pos: pos, Err: ErrLParenExpected}
	}

	var items []string
	for {
		pos, tok, lit := p.scanIgnoreWhitespace()
		if tok != IDENT {
			return nil, &Error{Pos: pos, Err: ErrIdentExpected}
		}
		items = append(items, lit)

		if _, tok, _ := p.scanIgnoreWhitespace(); tok != COMMA {
			p.unscan()
			break
		}
	}

	if pos, tok, _ := p.scanIgnoreWhitespace(); tok != RP {
		return nil, &Error{Pos: pos, Err: ErrRParenExpected}
	}
	return items, nil
}

// scan returns the next token, promoting identifiers to keywords.
func (p *Parser) scan() (Pos, Token, string) {
	p.last = p.s.Mark()
	pos, tok, lit := p.s.Scan()
	if tok == IDENT {
		tok = Lookup(lit)
	}
	return pos, tok, lit
}

// scanIgnoreWhitespace scans the next non-whitespace token.
func (p *Parser) scanIgnoreWhitespace() (Pos, Token, string) {
	pos, tok, lit := p.scan()
	if tok == WS {
		pos, tok, lit = p.scan()
	}
	return pos, tok, lit
}

// unscan pushes the previously read token back by rewinding the scanner.
func (p *Parser) unscan() {
	p.s.Reset(p.last)
}
