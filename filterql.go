package filterql

import "context"

// Queryset is an opaque handle to an unevaluated, composable query from the
// underlying data-access layer. The core never inspects it; it is threaded
// through to the backend's filterset, which narrows it without executing it.
type Queryset = any

// Data is the mapping of explicitly-set filter fields extracted from an
// instance. A nil value means the field was explicitly set to null, which
// is distinct from the key being absent (the field was never supplied).
type Data map[string]any

// Specification is a named, ordered collection of filter rules, declared by
// whatever owns the model-filter definition. The synthesizer only reads it
// and stores a reference on the input type it produces.
type Specification interface {
	// Name returns the specification name. It is used as the default name
	// of the synthesized input type.
	Name() string

	// Fields returns the rule names in declaration order.
	Fields() []string

	// Rule returns the kind of the named rule, and whether the rule exists.
	Rule(field string) (Kind, bool)

	// Filterset builds the specification's native filter-application object
	// for the given data mapping and queryset.
	Filterset(data Data, qs Queryset) Filterset
}

// Filterset is the native filter-application object of a specification.
// Validating and filtering are the same operation: a valid filterset has
// already computed its narrowed queryset.
type Filterset interface {
	// IsValid validates the data mapping against the rule set and, on
	// success, computes the filtered queryset.
	IsValid(ctx context.Context) bool

	// Errors returns the field-level messages collected by IsValid.
	Errors() FieldErrors

	// Queryset returns the filtered queryset. It is only meaningful after
	// IsValid has reported true.
	Queryset() Queryset
}

// Backend identifies an installed filter-specification engine. Importing a
// backend package registers it with the default registry; until then every
// entry point fails with ErrNoBackend.
type Backend interface {
	// Name returns the backend name, used in diagnostics.
	Name() string
}
