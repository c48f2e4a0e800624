package sql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/taobojlen/filterql/dialect"
)

// validIdentifierRe validates SQL identifiers (alphanumeric, underscores,
// dots for schema.name qualification).
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// isValidIdentifier checks if the string is a valid SQL identifier.
func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s)
}

// build accumulates SQL text, bound arguments and errors for a single
// statement. Predicates and selectors write into it.
type build struct {
	strings.Builder
	dialect string
	args    []any
	errs    []error
}

// ident writes a quoted identifier. Qualified names (t.column) are quoted
// per part. Invalid identifiers are recorded as errors and written
// unquoted, so the failure surfaces from Selector.Err rather than as
// injected SQL.
func (b *build) ident(name string) {
	if name == "*" {
		b.WriteString(name)
		return
	}
	if !isValidIdentifier(name) {
		b.errs = append(b.errs, fmt.Errorf("dialect/sql: invalid identifier %q", name))
		return
	}
	quote := "`"
	if b.dialect == dialect.Postgres {
		quote = `"`
	}
	parts := strings.Split(name, ".")
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(quote)
		b.WriteString(p)
		b.WriteString(quote)
	}
}

// arg binds a query argument and writes its placeholder.
func (b *build) arg(v any) {
	b.args = append(b.args, v)
	if b.dialect == dialect.Postgres {
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(len(b.args)))
		return
	}
	b.WriteByte('?')
}

// DialectBuilder prefixes builders with a specific dialect.
type DialectBuilder struct {
	dialect string
}

// Dialect creates a builder factory for the given dialect.
func Dialect(name string) *DialectBuilder {
	return &DialectBuilder{dialect: name}
}

// Select returns a Selector for the given columns, bound to the dialect.
func (d *DialectBuilder) Select(columns ...string) *Selector {
	s := Select(columns...)
	s.dialect = d.dialect
	return s
}

// Selector is a SELECT statement builder. It is the composable, unevaluated
// queryset handle: Where narrows it without executing anything.
type Selector struct {
	dialect string
	columns []string
	table   string
	preds   []*Predicate
	orderBy []string
	limit   *int
	offset  *int
	err     error
}

// Select returns a Selector for the given columns. With no columns, the
// statement selects everything ("*").
func Select(columns ...string) *Selector {
	return &Selector{columns: columns}
}

// Select replaces the selected columns.
func (s *Selector) Select(columns ...string) *Selector {
	s.columns = columns
	return s
}

// From sets the table of the statement.
func (s *Selector) From(table string) *Selector {
	s.table = table
	return s
}

// Table returns the table of the statement.
func (s *Selector) Table() string {
	return s.table
}

// Where appends a predicate. Multiple predicates are AND-combined.
func (s *Selector) Where(p *Predicate) *Selector {
	if p != nil {
		s.preds = append(s.preds, p)
	}
	return s
}

// OrderBy appends order terms. Use Asc and Desc to set direction.
func (s *Selector) OrderBy(columns ...string) *Selector {
	s.orderBy = append(s.orderBy, columns...)
	return s
}

// Limit sets the LIMIT clause.
func (s *Selector) Limit(n int) *Selector {
	s.limit = &n
	return s
}

// Offset sets the OFFSET clause.
func (s *Selector) Offset(n int) *Selector {
	s.offset = &n
	return s
}

// Dialect returns the dialect of the selector.
func (s *Selector) Dialect() string {
	return s.dialect
}

// Clone returns an independent copy of the selector. Narrowing the clone
// does not affect the original.
func (s *Selector) Clone() *Selector {
	if s == nil {
		return nil
	}
	c := *s
	c.columns = append([]string(nil), s.columns...)
	c.preds = append([]*Predicate(nil), s.preds...)
	c.orderBy = append([]string(nil), s.orderBy...)
	return &c
}

// Asc returns an ascending order term for the column.
func Asc(column string) string {
	return column + " ASC"
}

// Desc returns a descending order term for the column.
func Desc(column string) string {
	return column + " DESC"
}

// Query builds the SELECT statement and returns it with its bound
// arguments. Build errors (e.g. invalid identifiers) are reported by Err.
func (s *Selector) Query() (string, []any) {
	b := &build{dialect: s.dialect}
	b.WriteString("SELECT ")
	if len(s.columns) == 0 {
		b.WriteString("*")
	}
	for i, c := range s.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.ident(c)
	}
	b.WriteString(" FROM ")
	b.ident(s.table)
	if len(s.preds) > 0 {
		b.WriteString(" WHERE ")
		p := s.preds[0]
		if len(s.preds) > 1 {
			p = And(s.preds...)
		}
		p.fn(b)
	}
	for i, o := range s.orderBy {
		if i == 0 {
			b.WriteString(" ORDER BY ")
		} else {
			b.WriteString(", ")
		}
		col, dir, _ := strings.Cut(o, " ")
		b.ident(col)
		switch dir {
		case "", "ASC":
		case "DESC":
			b.WriteString(" DESC")
		default:
			b.errs = append(b.errs, fmt.Errorf("dialect/sql: invalid order direction %q", dir))
		}
	}
	if s.limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(*s.limit))
	}
	if s.offset != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(*s.offset))
	}
	if len(b.errs) > 0 && s.err == nil {
		s.err = b.errs[0]
	}
	return b.String(), b.args
}

// Err returns the first error recorded while building the statement.
// It is populated by Query.
func (s *Selector) Err() error {
	return s.err
}
