package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFileLoader_Load_YAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "web.prod.yaml", "listen: \":8080\"\ndb:\n  host: localhost\n")

	result, err := NewFileLoader().Load(filepath.Join(dir, "web.prod"))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, map[string]any{
		"listen": ":8080",
		"db":     map[string]any{"host": "localhost"},
	}, result.Data)
}

func TestFileLoader_Load_JSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "web.json", `{"listen": ":8080", "workers": 4}`)

	result, err := NewFileLoader().Load(filepath.Join(dir, "web"))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, map[string]any{"listen": ":8080", "workers": float64(4)}, result.Data)
}

func TestFileLoader_Load_JSONC(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "web.jsonc", `{
  // primary listener
  "listen": ":8080",
}`)

	result, err := NewFileLoader().Load(filepath.Join(dir, "web"))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, map[string]any{"listen": ":8080"}, result.Data)
}

func TestFileLoader_Load_TOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "web.toml", "listen = \":8080\"\n\n[db]\nhost = \"localhost\"\n")

	result, err := NewFileLoader().Load(filepath.Join(dir, "web"))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, map[string]any{
		"listen": ":8080",
		"db":     map[string]any{"host": "localhost"},
	}, result.Data)
}

func TestFileLoader_Load_NotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	result, err := NewFileLoader().Load(filepath.Join(dir, "missing"))

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestFileLoader_Load_TrialOrder(t *testing.T) {
	t.Parallel()

	// Two files share a stem; YAML is probed before JSON.
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "web.yaml", "source: yaml\n")
	writeFile(t, dir, "web.json", `{"source": "json"}`)

	result, err := NewFileLoader().Load(filepath.Join(dir, "web"))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, yamlPath, result.Path)
	assert.Equal(t, map[string]any{"source": "yaml"}, result.Data)
}

func TestFileLoader_Load_ParseErrorPropagated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "web.json", "{not json")

	result, err := NewFileLoader().Load(filepath.Join(dir, "web"))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "web.json")
}

func TestFileLoader_Load_EmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "web.yaml", "")

	result, err := NewFileLoader().Load(filepath.Join(dir, "web"))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Data)
}

func TestFileLoader_Load_NonMappingRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "web.yaml", "- a\n- b\n")

	_, err := NewFileLoader().Load(filepath.Join(dir, "web"))

	require.ErrorIs(t, err, ErrNotMapping)
}

func TestFileLoader_CustomDecoders(t *testing.T) {
	t.Parallel()

	// A loader restricted to TOML must ignore a YAML file at the same stem.
	dir := t.TempDir()
	writeFile(t, dir, "web.yaml", "source: yaml\n")

	result, err := NewFileLoader(TOML{}).Load(filepath.Join(dir, "web"))

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestNormalizeKeys(t *testing.T) {
	t.Parallel()

	input := map[any]any{
		"outer": map[any]any{
			1:      "one",
			"deep": []any{map[any]any{"k": "v"}},
		},
	}

	got := normalizeKeys(input)

	want := map[string]any{
		"outer": map[string]any{
			"1":    "one",
			"deep": []any{map[string]any{"k": "v"}},
		},
	}
	assert.Equal(t, want, got)
}
