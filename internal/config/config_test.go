package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		yaml     string
		expected func(*Config)
		err      string
	}{
		{
			name:     "empty file keeps defaults",
			yaml:     ``,
			expected: func(*Config) {},
		},
		{
			name: "bounded solver",
			yaml: `
solver:
  strategy: bounded
  passes: 3
`,
			expected: func(c *Config) {
				c.Solver.Strategy = "bounded"
				c.Solver.Passes = 3
			},
		},
		{
			name: "output and policy",
			yaml: `
unresolved: invariant
output:
  format: yaml
  rules: false
`,
			expected: func(c *Config) {
				c.Unresolved = "invariant"
				c.Output.Format = "yaml"
				c.Output.Rules = false
			},
		},
		{
			name: "substitute all bounds",
			yaml: `simplifier: {substitution: all}`,
			expected: func(c *Config) {
				c.Simplifier.Substitution = "all"
			},
		},
		{
			name: "unknown substitution",
			yaml: `simplifier: {substitution: last}`,
			err:  "invalid configuration",
		},
		{
			name: "unknown strategy",
			yaml: `solver: {strategy: forever}`,
			err:  "invalid configuration",
		},
		{
			name: "zero passes",
			yaml: `solver: {passes: 0}`,
			err:  "invalid configuration",
		},
		{
			name: "unknown key",
			yaml: `colour: always`,
			err:  "could not decode configuration",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			expected := Default()
			tc.expected(&expected)
			assert.Equal(t, expected, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("explicit missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		assert.ErrorContains(t, err, "could not read configuration")
	})

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(dir, "variance.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: {format: json}\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("implicit missing file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})
}
