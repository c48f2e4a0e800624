package rulefilter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taobojlen/filterql"
	"github.com/taobojlen/filterql/dialect/sql"
)

// Lookup selects the comparison a rule performs against its column.
type Lookup string

// Supported lookups. Not every lookup applies to every rule kind; the
// mismatch is reported at validation time.
const (
	LookupExact       Lookup = "exact"
	LookupIExact      Lookup = "iexact"
	LookupContains    Lookup = "contains"
	LookupIContains   Lookup = "icontains"
	LookupStartsWith  Lookup = "startswith"
	LookupIStartsWith Lookup = "istartswith"
	LookupEndsWith    Lookup = "endswith"
	LookupIEndsWith   Lookup = "iendswith"
	LookupGT          Lookup = "gt"
	LookupGTE         Lookup = "gte"
	LookupLT          Lookup = "lt"
	LookupLTE         Lookup = "lte"
	LookupIn          Lookup = "in"
)

// Rule is a single filter rule: a kind, a target column and a lookup.
// Rules are built with the kind constructors (Bool, Char, Choice, ...) and
// configured by chaining.
type Rule struct {
	kind    filterql.Kind
	column  string
	lookup  Lookup
	choices []string
}

// Bool returns a boolean rule.
func Bool() *Rule { return &Rule{kind: filterql.KindBool} }

// Char returns a character/text rule.
func Char() *Rule { return &Rule{kind: filterql.KindChar} }

// Choice returns a single-choice rule. With no choices, any string is
// accepted.
func Choice(choices ...string) *Rule {
	return &Rule{kind: filterql.KindChoice, choices: choices}
}

// Date returns a date rule (YYYY-MM-DD).
func Date() *Rule { return &Rule{kind: filterql.KindDate} }

// DateTime returns a datetime rule. Values may use RFC 3339 or
// "YYYY-MM-DD HH:MM:SS".
func DateTime() *Rule { return &Rule{kind: filterql.KindDateTime} }

// IsoDateTime returns a datetime rule that accepts RFC 3339 only.
func IsoDateTime() *Rule { return &Rule{kind: filterql.KindIsoDateTime} }

// Duration returns a duration rule using Go duration syntax ("1h30m").
// Duration columns are compared as nanoseconds.
func Duration() *Rule { return &Rule{kind: filterql.KindDuration} }

// ID returns a single related-object ID rule.
func ID() *Rule { return &Rule{kind: filterql.KindModelChoice} }

// IDs returns a multi related-object ID rule. It always uses the in
// lookup.
func IDs() *Rule { return &Rule{kind: filterql.KindModelMultiChoice, lookup: LookupIn} }

// MultiChoice returns a multi-choice rule. It always uses the in lookup.
// With no choices, any strings are accepted.
func MultiChoice(choices ...string) *Rule {
	return &Rule{kind: filterql.KindMultiChoice, choices: choices, lookup: LookupIn}
}

// Number returns a numeric rule. Values arrive as strings to avoid
// committing to int, decimal or float semantics; they are validated as
// decimal numbers and bound verbatim.
func Number() *Rule { return &Rule{kind: filterql.KindNumber} }

// Time returns a time-of-day rule (HH:MM or HH:MM:SS).
func Time() *Rule { return &Rule{kind: filterql.KindTime} }

// UUID returns a UUID rule.
func UUID() *Rule { return &Rule{kind: filterql.KindUUID} }

// Column sets the database column the rule filters on. It defaults to the
// rule's field name in the rule set.
func (r *Rule) Column(name string) *Rule {
	r.column = name
	return r
}

// Lookup sets the rule's lookup. The default is exact.
func (r *Rule) Lookup(l Lookup) *Rule {
	r.lookup = l
	return r
}

// Kind returns the rule kind.
func (r *Rule) Kind() filterql.Kind { return r.kind }

// predicate coerces and validates a supplied value and returns the
// corresponding predicate. Errors are user-facing validation messages
// collected per field by the filterset.
func (r *Rule) predicate(field string, v any) (*sql.Predicate, error) {
	col := r.column
	if col == "" {
		col = field
	}
	// An explicit null always filters for IS NULL, regardless of lookup.
	if v == nil {
		return sql.IsNull(col), nil
	}
	switch r.kind {
	case filterql.KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected a boolean value, got %T", v)
		}
		return r.compare(col, b)
	case filterql.KindChar:
		s, err := stringValue(v)
		if err != nil {
			return nil, err
		}
		return r.match(col, s)
	case filterql.KindChoice:
		s, err := stringValue(v)
		if err != nil {
			return nil, err
		}
		if err := r.checkChoice(s); err != nil {
			return nil, err
		}
		return r.compare(col, s)
	case filterql.KindDate:
		s, err := stringValue(v)
		if err != nil {
			return nil, err
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
		}
		return r.compare(col, t.Format("2006-01-02"))
	case filterql.KindDateTime:
		s, err := stringValue(v)
		if err != nil {
			return nil, err
		}
		t, err := parseDateTime(s)
		if err != nil {
			return nil, err
		}
		return r.compare(col, t)
	case filterql.KindIsoDateTime:
		s, err := stringValue(v)
		if err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("invalid datetime %q: want RFC 3339", s)
		}
		return r.compare(col, t)
	case filterql.KindDuration:
		s, err := stringValue(v)
		if err != nil {
			return nil, err
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q", s)
		}
		return r.compare(col, int64(d))
	case filterql.KindTime:
		s, err := stringValue(v)
		if err != nil {
			return nil, err
		}
		t, err := parseClock(s)
		if err != nil {
			return nil, err
		}
		return r.compare(col, t)
	case filterql.KindNumber:
		s, err := numberValue(v)
		if err != nil {
			return nil, err
		}
		return r.compare(col, s)
	case filterql.KindUUID:
		s, err := stringValue(v)
		if err != nil {
			return nil, err
		}
		u, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid UUID %q", s)
		}
		return r.compare(col, u.String())
	case filterql.KindModelChoice:
		id, err := idValue(v)
		if err != nil {
			return nil, err
		}
		return r.compare(col, id)
	case filterql.KindModelMultiChoice:
		ids, err := listValue(v, idValue)
		if err != nil {
			return nil, err
		}
		return sql.In(col, ids...), nil
	case filterql.KindMultiChoice:
		vs, err := listValue(v, func(x any) (any, error) {
			s, err := stringValue(x)
			if err != nil {
				return nil, err
			}
			if err := r.checkChoice(s); err != nil {
				return nil, err
			}
			return s, nil
		})
		if err != nil {
			return nil, err
		}
		return sql.In(col, vs...), nil
	}
	return nil, fmt.Errorf("unsupported rule kind %q", r.kind)
}

// compare builds the predicate for scalar lookups.
func (r *Rule) compare(col string, v any) (*sql.Predicate, error) {
	switch r.lookup {
	case "", LookupExact:
		return sql.EQ(col, v), nil
	case LookupGT:
		return sql.GT(col, v), nil
	case LookupGTE:
		return sql.GTE(col, v), nil
	case LookupLT:
		return sql.LT(col, v), nil
	case LookupLTE:
		return sql.LTE(col, v), nil
	default:
		return nil, fmt.Errorf("lookup %q is not supported for %s rules", r.lookup, r.kind)
	}
}

// match builds the predicate for text lookups.
func (r *Rule) match(col, s string) (*sql.Predicate, error) {
	switch r.lookup {
	case LookupIExact:
		return sql.EqualFold(col, s), nil
	case LookupContains:
		return sql.Contains(col, s), nil
	case LookupIContains:
		return sql.ContainsFold(col, s), nil
	case LookupStartsWith:
		return sql.HasPrefix(col, s), nil
	case LookupIStartsWith:
		return sql.HasPrefixFold(col, s), nil
	case LookupEndsWith:
		return sql.HasSuffix(col, s), nil
	case LookupIEndsWith:
		return sql.HasSuffixFold(col, s), nil
	default:
		return r.compare(col, s)
	}
}

func (r *Rule) checkChoice(s string) error {
	if len(r.choices) > 0 && !slices.Contains(r.choices, s) {
		return fmt.Errorf("%q is not a valid choice (want one of %s)", s, strings.Join(r.choices, ", "))
	}
	return nil
}

func stringValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string value, got %T", v)
	}
	return s, nil
}

func numberValue(v any) (any, error) {
	switch n := v.(type) {
	case string:
		if _, err := strconv.ParseFloat(n, 64); err != nil {
			return nil, fmt.Errorf("invalid number %q", n)
		}
		return n, nil
	case int, int32, int64, float32, float64:
		return n, nil
	default:
		return nil, fmt.Errorf("expected a numeric value, got %T", v)
	}
}

func idValue(v any) (any, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case int, int32, int64:
		return id, nil
	default:
		return nil, fmt.Errorf("expected an ID value, got %T", v)
	}
}

// listValue coerces a supplied value into a list, applying elem to every
// element.
func listValue(v any, elem func(any) (any, error)) ([]any, error) {
	var items []any
	switch l := v.(type) {
	case []any:
		items = l
	case []string:
		items = make([]any, len(l))
		for i, s := range l {
			items[i] = s
		}
	default:
		return nil, fmt.Errorf("expected a list value, got %T", v)
	}
	out := make([]any, len(items))
	for i, it := range items {
		e, err := elem(it)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// parseClock validates a time-of-day string and returns it in canonical
// HH:MM:SS form.
func parseClock(s string) (string, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("invalid time %q: want HH:MM or HH:MM:SS", s)
}
