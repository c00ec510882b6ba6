package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envSample struct {
	Name    string        `env:"NAME"`
	Count   int32         `env:"COUNT"`
	Ratio   float64       `env:"RATIO"`
	Enabled bool          `env:"ENABLED"`
	Timeout time.Duration `env:"TIMEOUT"`
	Hosts   []string      `env:"HOSTS"`
	Nested  struct {
		Level string `env:"LEVEL"`
	}
	Untagged string
	hidden   string
}

func fixedEnv(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	sample := envSample{Name: "keep", Untagged: "same", hidden: "x"}
	err := applyEnv(&sample, fixedEnv(map[string]string{
		"COUNT":   " 12 ",
		"RATIO":   "3.5",
		"ENABLED": "true",
		"TIMEOUT": "90s",
		"HOSTS":   "a.test, b.test,,",
		"LEVEL":   "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "keep", sample.Name)
	assert.EqualValues(t, 12, sample.Count)
	assert.Equal(t, 3.5, sample.Ratio)
	assert.True(t, sample.Enabled)
	assert.Equal(t, 90*time.Second, sample.Timeout)
	assert.Equal(t, []string{"a.test", "b.test"}, sample.Hosts)
	assert.Equal(t, "debug", sample.Nested.Level)
	assert.Equal(t, "same", sample.Untagged)
}

func TestApplyEnv_EmptyListClears(t *testing.T) {
	sample := envSample{Hosts: []string{"a.test"}}
	require.NoError(t, applyEnv(&sample, fixedEnv(map[string]string{"HOSTS": ""})))
	assert.Empty(t, sample.Hosts)
}

func TestApplyEnv_Errors(t *testing.T) {
	tests := map[string]string{
		"COUNT":   "many",
		"RATIO":   "half",
		"ENABLED": "maybe",
		"TIMEOUT": "forever",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			var sample envSample
			err := applyEnv(&sample, fixedEnv(map[string]string{key: value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestApplyEnv_RejectsNonPointer(t *testing.T) {
	assert.Error(t, applyEnv(envSample{}, fixedEnv(nil)))
}
