package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studykit/studykit/pkg/config"
)

type testConfig struct {
	Secret  string        `env:"TEST_SECRET,required"`
	Name    string        `env:"TEST_NAME" envDefault:"sid"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"30m"`
	Enabled bool          `env:"TEST_ENABLED" envDefault:"true"`
}

func TestLoad(t *testing.T) {
	t.Run("parses environment into struct", func(t *testing.T) {
		t.Setenv("TEST_SECRET", "super-secret")
		t.Setenv("TEST_NAME", "session_id")
		t.Setenv("TEST_TIMEOUT", "15m")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "super-secret", cfg.Secret)
		assert.Equal(t, "session_id", cfg.Name)
		assert.Equal(t, 15*time.Minute, cfg.Timeout)
		assert.True(t, cfg.Enabled)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("TEST_SECRET", "super-secret")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "sid", cfg.Name)
		assert.Equal(t, 30*time.Minute, cfg.Timeout)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics when required variable missing", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("loads valid configuration", func(t *testing.T) {
		t.Setenv("TEST_SECRET", "super-secret")

		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
