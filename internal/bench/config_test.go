package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(`
iterations: 50
exponents: [3, 5]
values:
  - {re: 1, im: -2}
`))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Iterations)
	assert.Equal(t, []int{3, 5}, cfg.Exponents)
	assert.Equal(t, []Value{{Re: 1, Im: -2}}, cfg.Values)
	// Keys not in the file keep their defaults.
	assert.Equal(t, DefaultConfig().Warmup, cfg.Warmup)
	assert.Equal(t, DefaultConfig().Seed, cfg.Seed)
}

func TestParseConfigInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "iterations: [1"},
		{"zero iterations", "iterations: 0"},
		{"negative warmup", "warmup: -1"},
		{"no exponents", "exponents: []"},
		{"no values", "values: []"},
		{"negative random values", "random_values: -3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				err = cfg.Validate()
			}

			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseConfigRandomValuesOnly(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte("values: []\nrandom_values: 4\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Values)
	assert.Equal(t, 4, cfg.RandomValues)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 7\nseed: 9\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Iterations)
	assert.Equal(t, int64(9), cfg.Seed)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
