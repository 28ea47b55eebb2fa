package config

import "os"
import "path/filepath"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
machine:
  clauses: 100
  threshold: 60
  seed: 7
training:
  dataset: xor
  noise: 0.1
  epochs: 20
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 100, c.Machine.Clauses)
	assert.Equal(t, 60.0, c.Machine.Threshold)
	assert.Equal(t, uint64(7), c.Machine.Seed)
	assert.Equal(t, 30, c.Machine.MaxActivation, "unset fields keep defaults")
	assert.Equal(t, 4.0, c.Machine.S)
	assert.Equal(t, "xor", c.Training.Dataset)
	assert.Equal(t, 0.1, c.Training.Noise)
	assert.Equal(t, 20, c.Training.Epochs)
	assert.True(t, c.Training.Shuffle)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestParseRejects(t *testing.T) {
	var cases = map[string]string{
		"s not above one":     "machine: {s: 1.0}",
		"zero threshold":      "machine: {threshold: 0}",
		"negative clauses":    "machine: {clauses: -1}",
		"unknown dataset":     "training: {dataset: mnist}",
		"noise of one":        "training: {noise: 1}",
		"target above 100":    "training: {target: 101}",
		"column out of range": "training: {column: 3}",
		"xor on one feature":  "machine: {features: 1}\ntraining: {dataset: xor, column: 0}",
		"bad log level":       "log_level: loud",
		"not yaml":            "machine: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsetlin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("training: {epochs: 9}\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Training.Epochs)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("machine: {s: 0.5}\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
