package gqlgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/taobojlen/filterql"
	"github.com/taobojlen/filterql/contrib/gqlgen"
	"github.com/taobojlen/filterql/rulefilter"
)

func TestStringListUnmarshal(t *testing.T) {
	t.Parallel()

	var single struct {
		Schema gqlgen.StringList `yaml:"schema"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("schema: schema.graphql"), &single))
	assert.Equal(t, gqlgen.StringList{"schema.graphql"}, single.Schema)

	var multi struct {
		Schema gqlgen.StringList `yaml:"schema"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("schema:\n  - a.graphql\n  - b.graphql"), &multi))
	assert.Equal(t, gqlgen.StringList{"a.graphql", "b.graphql"}, multi.Schema)

	var bad struct {
		Schema gqlgen.StringList `yaml:"schema"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("schema:\n  key: value"), &bad))
}

func TestStringListMarshal(t *testing.T) {
	t.Parallel()

	// A single entry marshals as a plain scalar.
	out, err := yaml.Marshal(map[string]gqlgen.StringList{"schema": {"a.graphql"}})
	require.NoError(t, err)
	assert.Equal(t, "schema: a.graphql\n", string(out))

	out, err = yaml.Marshal(map[string]gqlgen.StringList{"schema": {"a.graphql", "b.graphql"}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "- a.graphql")
}

func TestLoadConfigMissing(t *testing.T) {
	t.Parallel()

	cfg, err := gqlgen.LoadConfig(filepath.Join(t.TempDir(), "gqlgen.yml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.SchemaFilename)
	assert.NotNil(t, cfg.Models)
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "gqlgen.yml")
	cfg := &gqlgen.Config{}
	cfg.AddSchemaPath("graph/schema.graphql")
	cfg.AddSchemaPath("graph/filters.graphql")
	cfg.AddSchemaPath("graph/schema.graphql")
	cfg.SetModel("UserFilter", "example.com/app/graph/model.UserFilter")

	require.NoError(t, gqlgen.SaveConfig(path, cfg))

	loaded, err := gqlgen.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, gqlgen.StringList{"graph/schema.graphql", "graph/filters.graphql"}, loaded.SchemaFilename)
	assert.Equal(t, gqlgen.StringList{"example.com/app/graph/model.UserFilter"}, loaded.Models["UserFilter"].Model)
}

func TestBindInputType(t *testing.T) {
	t.Parallel()

	rs := rulefilter.New("ProductFilter").
		Add("name", rulefilter.Char().Lookup(rulefilter.LookupIContains)).
		Add("in_stock", rulefilter.Bool())
	typ, err := filterql.Synthesize(rs, filterql.WithCamelCase())
	require.NoError(t, err)

	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "filters.graphql")
	cfg := &gqlgen.Config{}
	require.NoError(t, cfg.BindInputType(typ, schemaPath, "example.com/app/graph/model.ProductFilter"))

	sdl, err := os.ReadFile(schemaPath)
	require.NoError(t, err)
	assert.Contains(t, string(sdl), "input ProductFilter")
	assert.Contains(t, string(sdl), "inStock: Boolean")

	assert.Equal(t, gqlgen.StringList{schemaPath}, cfg.SchemaFilename)
	assert.Equal(t, gqlgen.StringList{"example.com/app/graph/model.ProductFilter"}, cfg.Models["ProductFilter"].Model)
}
