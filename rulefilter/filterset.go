package rulefilter

import (
	"context"
	"fmt"
	"sort"

	"github.com/taobojlen/filterql"
	"github.com/taobojlen/filterql/dialect/sql"
)

// nonFieldErrors is the key under which errors not attributable to a single
// field are collected.
const nonFieldErrors = "__all__"

// Filterset validates a data mapping against a rule set and, on success,
// narrows the queryset. It implements filterql.Filterset. Validating and
// filtering are the same pass; the narrowed queryset is only available
// after IsValid reports true.
type Filterset struct {
	rules *RuleSet
	data  filterql.Data
	qs    filterql.Queryset

	validated bool
	errs      filterql.FieldErrors
	out       filterql.Queryset
}

// IsValid validates every supplied field against its rule and computes the
// filtered queryset. The result is cached; subsequent calls are cheap.
//
// Validation is all-or-nothing: a single invalid field fails the whole
// filterset, and errors for every invalid field are collected.
func (fs *Filterset) IsValid(ctx context.Context) bool {
	if fs.validated {
		return len(fs.errs) == 0
	}
	fs.validated = true
	fs.errs = filterql.FieldErrors{}

	sel, ok := fs.qs.(*sql.Selector)
	if !ok {
		fs.errs.Add(nonFieldErrors, fmt.Sprintf("unsupported queryset type %T", fs.qs))
		return false
	}
	// Every supplied field must exist in the rule set.
	unknown := make([]string, 0)
	for field := range fs.data {
		if _, ok := fs.rules.rules[field]; !ok {
			unknown = append(unknown, field)
		}
	}
	sort.Strings(unknown)
	for _, field := range unknown {
		fs.errs.Add(field, "unknown filter field")
	}

	sel = sel.Clone()
	for _, field := range fs.rules.order {
		v, ok := fs.data[field]
		if !ok {
			continue
		}
		p, err := fs.rules.rules[field].predicate(field, v)
		if err != nil {
			fs.errs.Add(field, err.Error())
			continue
		}
		sel.Where(p)
	}
	if len(fs.errs) > 0 {
		return false
	}
	fs.out = sel
	return true
}

// Errors returns the field-level messages collected by IsValid.
func (fs *Filterset) Errors() filterql.FieldErrors {
	return fs.errs
}

// Queryset returns the narrowed queryset computed by IsValid, or nil if
// the filterset is invalid or not yet validated.
func (fs *Filterset) Queryset() filterql.Queryset {
	return fs.out
}
