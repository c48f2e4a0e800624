package sql

import "strings"

// Predicate is a condition applied to a selector's WHERE clause.
type Predicate struct {
	fn func(*build)
}

func pred(fn func(*build)) *Predicate {
	return &Predicate{fn: fn}
}

func binary(col, op string, v any) *Predicate {
	return pred(func(b *build) {
		b.ident(col)
		b.WriteString(" " + op + " ")
		b.arg(v)
	})
}

// EQ returns a "=" predicate.
func EQ(col string, v any) *Predicate { return binary(col, "=", v) }

// NEQ returns a "<>" predicate.
func NEQ(col string, v any) *Predicate { return binary(col, "<>", v) }

// GT returns a ">" predicate.
func GT(col string, v any) *Predicate { return binary(col, ">", v) }

// GTE returns a ">=" predicate.
func GTE(col string, v any) *Predicate { return binary(col, ">=", v) }

// LT returns a "<" predicate.
func LT(col string, v any) *Predicate { return binary(col, "<", v) }

// LTE returns a "<=" predicate.
func LTE(col string, v any) *Predicate { return binary(col, "<=", v) }

// In returns an IN predicate. With no values it matches nothing.
func In(col string, vs ...any) *Predicate {
	return pred(func(b *build) {
		if len(vs) == 0 {
			b.WriteString("FALSE")
			return
		}
		b.ident(col)
		b.WriteString(" IN (")
		for i, v := range vs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.arg(v)
		}
		b.WriteString(")")
	})
}

// NotIn returns a NOT IN predicate. With no values it matches everything.
func NotIn(col string, vs ...any) *Predicate {
	return pred(func(b *build) {
		if len(vs) == 0 {
			b.WriteString("TRUE")
			return
		}
		b.ident(col)
		b.WriteString(" NOT IN (")
		for i, v := range vs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.arg(v)
		}
		b.WriteString(")")
	})
}

func like(col, pattern string) *Predicate {
	return pred(func(b *build) {
		b.ident(col)
		b.WriteString(" LIKE ")
		b.arg(pattern)
	})
}

func likeFold(col, pattern string) *Predicate {
	return pred(func(b *build) {
		b.WriteString("LOWER(")
		b.ident(col)
		b.WriteString(") LIKE ")
		b.arg(strings.ToLower(pattern))
	})
}

// Contains returns a predicate that checks substring containment.
func Contains(col, substr string) *Predicate {
	return like(col, "%"+substr+"%")
}

// ContainsFold is a case-insensitive Contains.
func ContainsFold(col, substr string) *Predicate {
	return likeFold(col, "%"+substr+"%")
}

// HasPrefix returns a prefix-match predicate.
func HasPrefix(col, prefix string) *Predicate {
	return like(col, prefix+"%")
}

// HasPrefixFold is a case-insensitive HasPrefix.
func HasPrefixFold(col, prefix string) *Predicate {
	return likeFold(col, prefix+"%")
}

// HasSuffix returns a suffix-match predicate.
func HasSuffix(col, suffix string) *Predicate {
	return like(col, "%"+suffix)
}

// HasSuffixFold is a case-insensitive HasSuffix.
func HasSuffixFold(col, suffix string) *Predicate {
	return likeFold(col, "%"+suffix)
}

// EqualFold returns a case-insensitive "=" predicate.
func EqualFold(col, v string) *Predicate {
	return pred(func(b *build) {
		b.WriteString("LOWER(")
		b.ident(col)
		b.WriteString(") = ")
		b.arg(strings.ToLower(v))
	})
}

// IsNull returns an IS NULL predicate.
func IsNull(col string) *Predicate {
	return pred(func(b *build) {
		b.ident(col)
		b.WriteString(" IS NULL")
	})
}

// NotNull returns an IS NOT NULL predicate.
func NotNull(col string) *Predicate {
	return pred(func(b *build) {
		b.ident(col)
		b.WriteString(" IS NOT NULL")
	})
}

// And combines predicates with AND. Each operand is parenthesized.
func And(ps ...*Predicate) *Predicate {
	return compose(ps, " AND ")
}

// Or combines predicates with OR. Each operand is parenthesized.
func Or(ps ...*Predicate) *Predicate {
	return compose(ps, " OR ")
}

// Not negates a predicate.
func Not(p *Predicate) *Predicate {
	return pred(func(b *build) {
		b.WriteString("NOT (")
		p.fn(b)
		b.WriteString(")")
	})
}

func compose(ps []*Predicate, sep string) *Predicate {
	if len(ps) == 1 {
		return ps[0]
	}
	return pred(func(b *build) {
		for i, p := range ps {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString("(")
			p.fn(b)
			b.WriteString(")")
		}
	})
}
