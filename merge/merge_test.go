package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaps_LaterWins(t *testing.T) {
	t.Parallel()

	under := map[string]any{"this": "that", "what": "yes", "bar": "no"}
	over := map[string]any{"bar": "yes"}

	got := Maps(under, over, PreferLatest)

	want := map[string]any{"this": "that", "what": "yes", "bar": "yes"}
	assert.Equal(t, want, got)
}

func TestMaps_EarlierWins(t *testing.T) {
	t.Parallel()

	under := map[string]any{"bar": "no"}
	over := map[string]any{"bar": "yes", "extra": true}

	got := Maps(under, over, PreferEarliest)

	want := map[string]any{"bar": "no", "extra": true}
	assert.Equal(t, want, got)
}

func TestMaps_NestedMappingsMergeRecursively(t *testing.T) {
	t.Parallel()

	under := map[string]any{
		"db": map[string]any{
			"host": "localhost",
			"port": 5432,
			"tls": map[string]any{
				"enabled": false,
				"ca":      "/etc/ca.pem",
			},
		},
	}
	over := map[string]any{
		"db": map[string]any{
			"host": "db.example.com",
			"tls": map[string]any{
				"enabled": true,
			},
		},
	}

	got := Maps(under, over, PreferLatest)

	want := map[string]any{
		"db": map[string]any{
			"host": "db.example.com",
			"port": 5432,
			"tls": map[string]any{
				"enabled": true,
				"ca":      "/etc/ca.pem",
			},
		},
	}
	assert.Equal(t, want, got)
}

func TestMaps_SlicesReplacedWholesale(t *testing.T) {
	t.Parallel()

	under := map[string]any{"hosts": []any{"a", "b", "c"}}
	over := map[string]any{"hosts": []any{"d"}}

	got := Maps(under, over, PreferLatest)

	assert.Equal(t, map[string]any{"hosts": []any{"d"}}, got)
}

func TestMaps_MappingReplacesScalar(t *testing.T) {
	t.Parallel()

	under := map[string]any{"db": "disabled"}
	over := map[string]any{"db": map[string]any{"host": "x"}}

	got := Maps(under, over, PreferLatest)

	assert.Equal(t, map[string]any{"db": map[string]any{"host": "x"}}, got)
}

func TestMaps_InputsNotModified(t *testing.T) {
	t.Parallel()

	under := map[string]any{"nested": map[string]any{"keep": 1}}
	over := map[string]any{"nested": map[string]any{"add": 2}}

	_ = Maps(under, over, PreferLatest)

	assert.Equal(t, map[string]any{"nested": map[string]any{"keep": 1}}, under)
	assert.Equal(t, map[string]any{"nested": map[string]any{"add": 2}}, over)
}

func TestFold_OrderSensitive(t *testing.T) {
	t.Parallel()

	sources := []Source{
		{Label: "default.yaml", Defaults: true, Data: map[string]any{"a": 1, "b": 1}},
		{Label: "all.yaml", Data: map[string]any{"b": 2, "c": 2}},
		{Label: "web.yaml", Data: map[string]any{"c": 3}},
	}

	got, err := Fold(sources, PreferLatest, false)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2, "c": 3}, got)
}

func TestFold_Empty(t *testing.T) {
	t.Parallel()

	got, err := Fold(nil, PreferLatest, false)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFold_StrictRejectsUndeclaredKey(t *testing.T) {
	t.Parallel()

	sources := []Source{
		{Label: "default.yaml", Defaults: true, Data: map[string]any{"known": 1}},
		{Label: "web.yaml", Data: map[string]any{"known": 2, "surprise": true}},
	}

	_, err := Fold(sources, PreferLatest, true)

	var validationErr *ValidationError

	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "surprise", validationErr.Key)
	assert.Equal(t, "web.yaml", validationErr.Source)
	assert.Contains(t, validationErr.Error(), `"surprise"`)
	assert.Contains(t, validationErr.Error(), "web.yaml")
}

func TestFold_StrictOffMergesUndeclaredKey(t *testing.T) {
	t.Parallel()

	sources := []Source{
		{Label: "default.yaml", Defaults: true, Data: map[string]any{"known": 1}},
		{Label: "web.yaml", Data: map[string]any{"surprise": true}},
	}

	got, err := Fold(sources, PreferLatest, false)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"known": 1, "surprise": true}, got)
}

func TestFold_StrictChecksBeforeMerging(t *testing.T) {
	t.Parallel()

	// An earlier non-defaults source cannot satisfy keys for later ones.
	sources := []Source{
		{Label: "default.yaml", Defaults: true, Data: map[string]any{"known": 1}},
		{Label: "all.yaml", Data: map[string]any{"known": 2}},
		{Label: "web.yaml", Data: map[string]any{"late": true}},
	}

	_, err := Fold(sources, PreferLatest, true)

	var validationErr *ValidationError

	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "late", validationErr.Key)
	assert.Equal(t, "web.yaml", validationErr.Source)
}

func TestFold_StrictReportsFirstKeyInSortOrder(t *testing.T) {
	t.Parallel()

	sources := []Source{
		{Label: "default.yaml", Defaults: true, Data: map[string]any{}},
		{Label: "web.yaml", Data: map[string]any{"zeta": 1, "alpha": 2}},
	}

	_, err := Fold(sources, PreferLatest, true)

	var validationErr *ValidationError

	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "alpha", validationErr.Key)
}

func TestPolicy_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{"latest", PreferLatest, false},
		{"LATEST", PreferLatest, false},
		{"earliest", PreferEarliest, false},
		{"newest", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePolicy(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownPolicy)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicy_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, PreferLatest.Valid())
	assert.True(t, PreferEarliest.Valid())
	assert.False(t, Policy(5).Valid())
}
