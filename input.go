package filterql

import (
	"fmt"
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/go-openapi/inflect"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// InputField is a single field of a synthesized input type.
type InputField struct {
	// Name is the GraphQL-facing field name.
	Name string

	// Rule is the name of the rule in the originating specification. It
	// equals Name unless a name converter (e.g. WithCamelCase) was used at
	// synthesis time.
	Rule string

	// Type is the GraphQL type of the field, resolved through the
	// type-mapping registry. Always nullable.
	Type *ast.Type

	// Default is the field default: the unset sentinel. Kept explicit so
	// downstream consumers can distinguish "never supplied" from an
	// explicit null.
	Default graphql.Omittable[any]
}

// InputType is a GraphQL input-object type synthesized from a filter
// specification. Its field set is an exact 1:1 projection of the
// specification's rule names at synthesis time; mutating the specification
// afterwards does not retroactively change the type.
type InputType struct {
	name   string
	fields []InputField
	byName map[string]int
	byRule map[string]int
	spec   Specification
}

// Name returns the input type name.
func (t *InputType) Name() string { return t.name }

// Spec returns the specification this type was synthesized from.
func (t *InputType) Spec() Specification { return t.spec }

// Fields returns the fields in specification order. The returned slice is
// shared; callers must not modify it.
func (t *InputType) Fields() []InputField { return t.fields }

// Field returns the field with the given GraphQL name, falling back to the
// rule name.
func (t *InputType) Field(name string) (InputField, bool) {
	if i, ok := t.byName[name]; ok {
		return t.fields[i], true
	}
	if i, ok := t.byRule[name]; ok {
		return t.fields[i], true
	}
	return InputField{}, false
}

// Definition returns the gqlparser definition of the input type, suitable
// for inclusion in a schema document.
func (t *InputType) Definition() *ast.Definition {
	def := &ast.Definition{
		Kind: ast.InputObject,
		Name: t.name,
	}
	for _, f := range t.fields {
		def.Fields = append(def.Fields, &ast.FieldDefinition{
			Name: f.Name,
			Type: f.Type,
		})
	}
	return def
}

// SDL renders the input type as GraphQL schema-definition-language text.
func (t *InputType) SDL() string {
	var sb strings.Builder
	f := formatter.NewFormatter(&sb)
	f.FormatSchemaDocument(&ast.SchemaDocument{
		Definitions: ast.DefinitionList{t.Definition()},
	})
	return sb.String()
}

type synthesizeOptions struct {
	name     string
	registry *Registry
	convert  func(string) string
}

// SynthesizeOption configures Synthesize.
type SynthesizeOption func(*synthesizeOptions)

// WithName overrides the input type name. The default is the
// specification's name.
func WithName(name string) SynthesizeOption {
	return func(o *synthesizeOptions) { o.name = name }
}

// WithRegistry resolves field types through the given registry instead of
// the default one.
func WithRegistry(r *Registry) SynthesizeOption {
	return func(o *synthesizeOptions) { o.registry = r }
}

// WithCamelCase converts rule names to lower-camel-case GraphQL field names
// (e.g. "created_at" becomes "createdAt"). Extraction at apply time still
// uses the original rule names.
func WithCamelCase() SynthesizeOption {
	return func(o *synthesizeOptions) { o.convert = inflect.CamelizeDownFirst }
}

// Synthesize projects a filter specification into a new GraphQL input
// type: one optional field per rule, in specification order, typed through
// the type-mapping registry. Type resolution failures propagate as
// *TypeMappingError; there is no silent default.
//
// Each call returns a distinct type, even for the same specification; no
// caching is performed. The specification itself is never mutated.
func Synthesize(spec Specification, opts ...SynthesizeOption) (*InputType, error) {
	o := synthesizeOptions{registry: defaultRegistry}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.registry.ready(); err != nil {
		return nil, err
	}
	name := o.name
	if name == "" {
		name = spec.Name()
	}
	t := &InputType{
		name:   name,
		byName: make(map[string]int),
		byRule: make(map[string]int),
		spec:   spec,
	}
	for _, rule := range spec.Fields() {
		kind, ok := spec.Rule(rule)
		if !ok {
			return nil, fmt.Errorf("filterql: specification %q declares field %q without a rule", spec.Name(), rule)
		}
		typ, err := o.registry.Lookup(kind)
		if err != nil {
			return nil, err
		}
		fieldName := rule
		if o.convert != nil {
			fieldName = o.convert(rule)
		}
		if _, exists := t.byName[fieldName]; exists {
			return nil, fmt.Errorf("filterql: input type %q has duplicate field %q", name, fieldName)
		}
		t.byName[fieldName] = len(t.fields)
		t.byRule[rule] = len(t.fields)
		t.fields = append(t.fields, InputField{
			Name: fieldName,
			Rule: rule,
			Type: typ,
		})
	}
	return t, nil
}
