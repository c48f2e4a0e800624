// Package filterql bridges rule-based filter definitions on relational
// models to a GraphQL schema layer.
//
// The package has three moving parts:
//
//   - A type-mapping registry that translates filter rule kinds (bool,
//     char, date, uuid, ...) to the nullable GraphQL scalar or list type
//     each one surfaces as.
//   - An input synthesizer that projects a filter specification into a
//     GraphQL input-object type, one optional field per rule.
//   - A filter applicator that takes a per-request instance of that input
//     type, extracts the explicitly-set fields, validates them against the
//     specification, and narrows a queryset accordingly.
//
// # Backends
//
// Filter specifications are provided by a backend package. Backends
// register themselves on import, similar to database/sql drivers:
//
//	import (
//	    "github.com/taobojlen/filterql"
//	    "github.com/taobojlen/filterql/rulefilter"
//	)
//
// Every entry point fails with ErrNoBackend until a backend has been
// registered.
//
// # Synthesis
//
// A specification is projected into an input type once, at schema-build
// time:
//
//	spec := rulefilter.New("UserFilter").
//	    Add("name", rulefilter.Char().Lookup(rulefilter.LookupIContains)).
//	    Add("is_active", rulefilter.Bool())
//
//	input, err := filterql.Synthesize(spec, filterql.WithCamelCase())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(input.SDL())
//
// The resulting type carries a back-reference to the specification and can
// be rendered as a gqlparser definition or SDL text for inclusion in a
// schema.
//
// # Application
//
// At request time, client-supplied arguments are decoded into an instance
// and applied to a queryset:
//
//	inst, err := input.InstanceFromArgs(args)
//	if err != nil { ... }
//	qs, err := filterql.Apply(ctx, inst, userQuery)
//
// A nil instance leaves the queryset untouched. Field values are
// three-state: unset fields are skipped entirely, while fields explicitly
// set to null are passed through to the backend (the bundled rulefilter
// backend turns them into IS NULL predicates). Validation is
// all-or-nothing; failures surface as a *ValidationError carrying the
// backend's field-level messages.
package filterql
