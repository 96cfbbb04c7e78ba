package sat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsFromJson(t *testing.T) {
	t.Run("Overrides defaults", func(t *testing.T) {
		//** Arrange
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{
			"mode": "dpll",
			"timeoutSeconds": 2.5,
			"maxDecisions": "250",
			"restartBase": 0,
			"pureLiterals": false,
			"verbose": true
		}`
		assert.Nil(t, os.WriteFile(path, []byte(content), 0666))

		//** Act
		opts, err := OptionsFromJson(path)

		//** Assert
		assert.Nil(t, err)
		assert.Equal(t, ModeDPLL, opts.Mode)
		assert.Equal(t, 2.5, opts.TimeoutSeconds)
		assert.Equal(t, int64(250), opts.MaxDecisions) // weakly typed input
		assert.Equal(t, 0, opts.RestartBase)
		assert.False(t, opts.PureLiterals)
		assert.True(t, opts.Verbose)
		assert.Equal(t, 0.95, opts.VarDecay) // untouched default
	})

	t.Run("Keeps defaults for missing fields", func(t *testing.T) {
		//** Arrange
		path := filepath.Join(t.TempDir(), "config.json")
		assert.Nil(t, os.WriteFile(path, []byte(`{"mode": "dpll"}`), 0666))

		//** Act
		opts, err := OptionsFromJson(path)

		//** Assert
		assert.Nil(t, err)
		assert.Equal(t, ModeDPLL, opts.Mode)
		assert.Equal(t, 100, opts.RestartBase)
		assert.Equal(t, 1000, opts.MaxLearned)
		assert.True(t, opts.PureLiterals)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := OptionsFromJson(filepath.Join(t.TempDir(), "missing.json"))
		assert.NotNil(t, err)
	})

	t.Run("Malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		assert.Nil(t, os.WriteFile(path, []byte("not json"), 0666))

		_, err := OptionsFromJson(path)
		assert.NotNil(t, err)
	})
}

func TestWithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, ModeCDCL, opts.Mode)
	assert.Equal(t, 0.95, opts.VarDecay)
	assert.Equal(t, 0.999, opts.ClauseDecay)
	assert.Equal(t, 0, opts.RestartBase) // the zero value leaves restarts off
}
