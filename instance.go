package filterql

import (
	"fmt"

	"github.com/99designs/gqlgen/graphql"
)

// Unset returns the unset sentinel: a field value that was never supplied.
func Unset() graphql.Omittable[any] {
	return graphql.Omittable[any]{}
}

// Set returns a field value that was explicitly supplied. Set(nil) is an
// explicit null, which is distinct from Unset().
func Set(v any) graphql.Omittable[any] {
	return graphql.OmittableOf[any](v)
}

// Instance is a per-request value of a synthesized input type. Every field
// is three-state: unset, explicitly null, or set to a value. Instances are
// created through InputType.NewInstance or InputType.InstanceFromArgs.
type Instance struct {
	typ *InputType
	// values is keyed by rule name. Unset fields are absent.
	values map[string]graphql.Omittable[any]
}

// NewInstance returns an empty instance of the input type, with every field
// unset.
func (t *InputType) NewInstance() *Instance {
	return &Instance{
		typ:    t,
		values: make(map[string]graphql.Omittable[any]),
	}
}

// InstanceFromArgs builds an instance from a GraphQL argument map, as
// delivered by an executor: an absent key means the field is unset, a
// present key with a nil value means an explicit null. Keys may use either
// the GraphQL field names or the rule names.
func (t *InputType) InstanceFromArgs(args map[string]any) (*Instance, error) {
	inst := t.NewInstance()
	for k, v := range args {
		if err := inst.Set(k, v); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Type returns the input type this instance belongs to.
func (i *Instance) Type() *InputType { return i.typ }

// Set sets the named field to the given value. Set(field, nil) records an
// explicit null. It fails if the input type has no such field.
func (i *Instance) Set(field string, v any) error {
	f, ok := i.typ.Field(field)
	if !ok {
		return fmt.Errorf("filterql: input type %q has no field %q", i.typ.Name(), field)
	}
	i.values[f.Rule] = graphql.OmittableOf(v)
	return nil
}

// Unset reverts the named field to the unset state.
func (i *Instance) Unset(field string) error {
	f, ok := i.typ.Field(field)
	if !ok {
		return fmt.Errorf("filterql: input type %q has no field %q", i.typ.Name(), field)
	}
	delete(i.values, f.Rule)
	return nil
}

// Get returns the three-state value of the named field.
func (i *Instance) Get(field string) (graphql.Omittable[any], error) {
	f, ok := i.typ.Field(field)
	if !ok {
		return Unset(), fmt.Errorf("filterql: input type %q has no field %q", i.typ.Name(), field)
	}
	return i.values[f.Rule], nil
}

// Empty reports whether no field is set on the instance. An empty instance
// is still applied: only a nil *Instance short-circuits Apply.
func (i *Instance) Empty() bool {
	return len(i.values) == 0
}
