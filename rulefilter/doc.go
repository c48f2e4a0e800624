// Package rulefilter is the built-in filter backend: rule-based filter
// specifications over SQL querysets.
//
// Importing the package registers the backend with filterql's default
// registry, the same way database/sql drivers register themselves:
//
//	import (
//	    "github.com/taobojlen/filterql"
//	    "github.com/taobojlen/filterql/rulefilter"
//	)
//
// A RuleSet is a named, ordered collection of rules and implements
// filterql.Specification:
//
//	spec := rulefilter.New("ProductFilter").
//	    Add("name", rulefilter.Char().Lookup(rulefilter.LookupIContains)).
//	    Add("in_stock", rulefilter.Bool()).
//	    Add("price", rulefilter.Number().Lookup(rulefilter.LookupLTE)).
//	    Add("category", rulefilter.Choice("books", "music"))
//
// Querysets are *sql.Selector values from the dialect/sql package. At apply
// time each supplied value is coerced and validated against its rule's
// kind, and on success the selector is narrowed with the corresponding
// predicates. Validation is all-or-nothing and never mutates the original
// selector.
//
// An explicitly-null value filters for IS NULL on the rule's column,
// regardless of the rule's lookup.
package rulefilter
