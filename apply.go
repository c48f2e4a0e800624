package filterql

import (
	"context"
	"fmt"
)

// Apply calls Registry.Apply on the default registry.
func Apply(ctx context.Context, filter *Instance, qs Queryset) (Queryset, error) {
	return defaultRegistry.Apply(ctx, filter, qs)
}

// Apply applies a filter instance to a queryset. A nil instance means no
// filter was requested; the queryset is returned unchanged without touching
// the specification.
//
// Otherwise the explicitly-set fields are extracted in specification order
// (explicit nulls included, unset fields omitted) and validated through the
// specification's filterset. Validation is all-or-nothing: on failure the
// error is a *ValidationError carrying the filterset's field messages, and
// on success the filterset's queryset is returned, which the validation
// step itself computed.
func (r *Registry) Apply(ctx context.Context, filter *Instance, qs Queryset) (Queryset, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if filter == nil {
		return qs, nil
	}
	if filter.typ == nil || filter.typ.spec == nil {
		return nil, fmt.Errorf("filterql: filter instance has no specification")
	}
	spec := filter.typ.spec
	data := Data{}
	for _, field := range spec.Fields() {
		if v, ok := filter.values[field]; ok && v.IsSet() {
			data[field] = v.Value()
		}
	}
	fs := spec.Filterset(data, qs)
	if !fs.IsValid(ctx) {
		return nil, &ValidationError{Errors: fs.Errors()}
	}
	return fs.Queryset(), nil
}
