package filterql

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// Registry holds the process-wide filtering configuration: the registered
// backend and the table mapping filter rule kinds to the GraphQL type each
// one surfaces as.
//
// Mutation (RegisterBackend, Register) is expected to happen during
// application startup only, before any concurrent reads begin. The registry
// performs no locking of its own.
type Registry struct {
	backend Backend
	types   map[Kind]*ast.Type
}

// NewRegistry returns a registry for the given backend, populated with the
// default kind-to-type table. A nil backend is allowed; such a registry
// fails every operation with ErrNoBackend until SetBackend is called.
func NewRegistry(backend Backend) *Registry {
	return &Registry{
		backend: backend,
		types:   defaultTypes(),
	}
}

// defaultTypes returns the default kind-to-type table. Kinds map to
// nullable scalars and lists, never non-null types: filters are optional by
// construction, so every filter field must be omissible.
func defaultTypes() map[Kind]*ast.Type {
	return map[Kind]*ast.Type{
		KindBool:             ast.NamedType("Boolean", nil),
		KindChar:             ast.NamedType("String", nil),
		KindChoice:           ast.NamedType("String", nil),
		KindDate:             ast.NamedType("String", nil),
		KindDateTime:         ast.NamedType("String", nil),
		KindDuration:         ast.NamedType("String", nil),
		KindIsoDateTime:      ast.NamedType("String", nil),
		KindModelChoice:      ast.NamedType("ID", nil),
		KindModelMultiChoice: ast.ListType(ast.NamedType("ID", nil), nil),
		KindMultiChoice:      ast.ListType(ast.NamedType("String", nil), nil),
		// String for number kinds: the column might hold int, decimal or
		// float values, and committing to any one of those scalars would
		// produce incorrect results for the others.
		KindNumber: ast.NamedType("String", nil),
		KindTime:   ast.NamedType("String", nil),
		KindUUID:   ast.NamedType("String", nil),
	}
}

// Backend returns the registered backend, if any.
func (r *Registry) Backend() (Backend, bool) {
	return r.backend, r.backend != nil
}

// SetBackend registers the backend on this registry, replacing any backend
// registered before.
func (r *Registry) SetBackend(b Backend) {
	r.backend = b
}

// ready reports whether a backend is available. Every entry point checks
// this before doing any other work.
func (r *Registry) ready() error {
	if r.backend == nil {
		return ErrNoBackend
	}
	return nil
}

// Lookup returns the GraphQL type registered for the given filter rule
// kind. It fails with a *TypeMappingError if kind is not a recognized rule
// kind or has no registered type; there is no silent default.
func (r *Registry) Lookup(kind Kind) (*ast.Type, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, &TypeMappingError{Kind: kind}
	}
	typ, ok := r.types[kind]
	if !ok {
		return nil, &TypeMappingError{Kind: kind}
	}
	return typ, nil
}

// Register overwrites (or inserts) the GraphQL type for the given filter
// rule kind. Overrides are last-write-wins and visible to all subsequent
// lookups and syntheses; already-synthesized input types are unaffected.
func (r *Registry) Register(kind Kind, typ *ast.Type) error {
	if err := r.ready(); err != nil {
		return err
	}
	if !kind.Valid() {
		return &TypeMappingError{Kind: kind}
	}
	if typ == nil {
		return fmt.Errorf("filterql: nil GraphQL type for filter rule kind %q", kind)
	}
	r.types[kind] = typ
	return nil
}

// defaultRegistry is the ambient registry used by the package-level
// functions. Backends register themselves here on import.
var defaultRegistry = NewRegistry(nil)

// DefaultRegistry returns the ambient registry used by the package-level
// functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// RegisterBackend registers a backend with the default registry. It is
// intended to be called from the init function of a backend package. It
// panics on a nil backend. Registering a second backend replaces the first.
func RegisterBackend(b Backend) {
	if b == nil {
		panic("filterql: RegisterBackend called with nil backend")
	}
	defaultRegistry.SetBackend(b)
}

// Lookup calls Registry.Lookup on the default registry.
func Lookup(kind Kind) (*ast.Type, error) {
	return defaultRegistry.Lookup(kind)
}

// Register calls Registry.Register on the default registry.
func Register(kind Kind, typ *ast.Type) error {
	return defaultRegistry.Register(kind, typ)
}
