package rulefilter

import (
	"github.com/taobojlen/filterql"
)

// RuleSet is a named, ordered collection of filter rules. It implements
// filterql.Specification.
type RuleSet struct {
	name  string
	order []string
	rules map[string]*Rule
}

var _ filterql.Specification = (*RuleSet)(nil)

// New returns an empty rule set with the given name. The name doubles as
// the default name of the synthesized GraphQL input type.
func New(name string) *RuleSet {
	return &RuleSet{
		name:  name,
		rules: make(map[string]*Rule),
	}
}

// Add declares a rule under the given field name and returns the rule set
// for chaining. Re-adding a field replaces its rule but keeps its original
// position.
func (rs *RuleSet) Add(field string, r *Rule) *RuleSet {
	if _, ok := rs.rules[field]; !ok {
		rs.order = append(rs.order, field)
	}
	rs.rules[field] = r
	return rs
}

// Name returns the rule set name.
func (rs *RuleSet) Name() string { return rs.name }

// Fields returns the rule field names in declaration order.
func (rs *RuleSet) Fields() []string {
	return append([]string(nil), rs.order...)
}

// Rule returns the kind of the named rule.
func (rs *RuleSet) Rule(field string) (filterql.Kind, bool) {
	r, ok := rs.rules[field]
	if !ok {
		return filterql.KindInvalid, false
	}
	return r.kind, true
}

// Filterset builds the rule set's filter-application object for the given
// data mapping and queryset.
func (rs *RuleSet) Filterset(data filterql.Data, qs filterql.Queryset) filterql.Filterset {
	return &Filterset{rules: rs, data: data, qs: qs}
}
