package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStringList(t *testing.T) {
	require := require.New(t)

	var cfg FileConfig
	require.NoError(yaml.Unmarshal([]byte(`schema: schema.graphql`), &cfg))
	require.Equal(StringList{"schema.graphql"}, cfg.Schema)

	cfg = FileConfig{}
	require.NoError(yaml.Unmarshal([]byte("schema:\n  - a.graphql\n  - b.graphql"), &cfg))
	require.Equal(StringList{"a.graphql", "b.graphql"}, cfg.Schema)

	require.Error(yaml.Unmarshal([]byte("schema:\n  a: b"), &cfg))
}

func TestLoadConfig(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "validgen.yml")
	require.NoError(os.WriteFile(path, []byte(`
schema: schema.graphql
target: ./appvalid
package: example.com/app/appvalid
model_package: example.com/app/model
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(err)
	require.Equal(StringList{"schema.graphql"}, cfg.Schema)
	require.Equal("./appvalid", cfg.Target)
	require.Equal("example.com/app/appvalid", cfg.Package)
	require.Equal("example.com/app/model", cfg.ModelPackage)

	// A missing file yields an empty config; flags can supply everything.
	cfg, err = LoadConfig(filepath.Join(dir, "missing.yml"))
	require.NoError(err)
	require.Empty(cfg.Schema)
}
