package filterql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/taobojlen/filterql"
)

func TestSynthesize(t *testing.T) {
	t.Parallel()

	spec := userSpec()
	input, err := filterql.Synthesize(spec, filterql.WithRegistry(testRegistry()))
	require.NoError(t, err)

	// The field set is an exact, ordered 1:1 projection of the rule names.
	assert.Equal(t, "UserFilter", input.Name())
	fields := input.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "name", fields[0].Name)
	assert.Equal(t, "is_active", fields[1].Name)
	assert.Equal(t, "group_ids", fields[2].Name)

	assert.Equal(t, "String", fields[0].Type.NamedType)
	assert.Equal(t, "Boolean", fields[1].Type.NamedType)
	require.NotNil(t, fields[2].Type.Elem)
	assert.Equal(t, "ID", fields[2].Type.Elem.NamedType)

	// Every field defaults to the unset sentinel.
	for _, f := range fields {
		assert.False(t, f.Default.IsSet())
	}

	// The synthesized type carries the originating specification.
	assert.Same(t, spec, input.Spec())
}

func TestSynthesizeDistinctIdentity(t *testing.T) {
	t.Parallel()

	r := testRegistry()
	spec := userSpec()

	a, err := filterql.Synthesize(spec, filterql.WithRegistry(r))
	require.NoError(t, err)
	b, err := filterql.Synthesize(spec, filterql.WithRegistry(r))
	require.NoError(t, err)

	// No caching: each call yields an independent type.
	assert.NotSame(t, a, b)
}

// A synthesized type is a snapshot; later registry overrides only affect
// types synthesized afterwards.
func TestSynthesizeSnapshotsRegistry(t *testing.T) {
	t.Parallel()

	r := testRegistry()
	spec := &stubSpec{
		name:  "F",
		order: []string{"id"},
		kinds: map[string]filterql.Kind{"id": filterql.KindUUID},
	}

	before, err := filterql.Synthesize(spec, filterql.WithRegistry(r))
	require.NoError(t, err)

	require.NoError(t, r.Register(filterql.KindUUID, ast.NamedType("UUID", nil)))

	after, err := filterql.Synthesize(spec, filterql.WithRegistry(r))
	require.NoError(t, err)

	assert.Equal(t, "String", before.Fields()[0].Type.NamedType)
	assert.Equal(t, "UUID", after.Fields()[0].Type.NamedType)
}

func TestSynthesizeOptions(t *testing.T) {
	t.Parallel()

	r := testRegistry()

	t.Run("WithName", func(t *testing.T) {
		input, err := filterql.Synthesize(userSpec(), filterql.WithRegistry(r), filterql.WithName("UserWhereInput"))
		require.NoError(t, err)
		assert.Equal(t, "UserWhereInput", input.Name())
	})

	t.Run("WithCamelCase", func(t *testing.T) {
		input, err := filterql.Synthesize(userSpec(), filterql.WithRegistry(r), filterql.WithCamelCase())
		require.NoError(t, err)

		fields := input.Fields()
		assert.Equal(t, "isActive", fields[1].Name)
		assert.Equal(t, "is_active", fields[1].Rule)
		assert.Equal(t, "groupIds", fields[2].Name)

		// Lookup works under both names.
		f, ok := input.Field("isActive")
		require.True(t, ok)
		assert.Equal(t, "is_active", f.Rule)
		f, ok = input.Field("is_active")
		require.True(t, ok)
		assert.Equal(t, "isActive", f.Name)
	})
}

func TestSynthesizeUnknownKind(t *testing.T) {
	t.Parallel()

	spec := &stubSpec{
		name:  "Broken",
		order: []string{"x"},
		kinds: map[string]filterql.Kind{"x": filterql.Kind(77)},
	}
	_, err := filterql.Synthesize(spec, filterql.WithRegistry(testRegistry()))
	assert.True(t, filterql.IsTypeMappingError(err))
}

func TestSynthesizeMissingRule(t *testing.T) {
	t.Parallel()

	spec := &stubSpec{
		name:  "Broken",
		order: []string{"x"},
		kinds: map[string]filterql.Kind{},
	}
	_, err := filterql.Synthesize(spec, filterql.WithRegistry(testRegistry()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `declares field "x" without a rule`)
}

func TestInputTypeDefinition(t *testing.T) {
	t.Parallel()

	input, err := filterql.Synthesize(userSpec(), filterql.WithRegistry(testRegistry()))
	require.NoError(t, err)

	def := input.Definition()
	assert.Equal(t, ast.InputObject, def.Kind)
	assert.Equal(t, "UserFilter", def.Name)
	require.Len(t, def.Fields, 3)
	assert.Equal(t, "name", def.Fields[0].Name)
	assert.Equal(t, "String", def.Fields[0].Type.NamedType)
	assert.False(t, def.Fields[0].Type.NonNull)
}

func TestInputTypeSDL(t *testing.T) {
	t.Parallel()

	input, err := filterql.Synthesize(userSpec(), filterql.WithRegistry(testRegistry()), filterql.WithCamelCase())
	require.NoError(t, err)

	sdl := input.SDL()
	assert.Contains(t, sdl, "input UserFilter")
	assert.Contains(t, sdl, "name: String")
	assert.Contains(t, sdl, "isActive: Boolean")
	assert.Contains(t, sdl, "groupIds: [ID]")
}
