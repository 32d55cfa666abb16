package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductionConfig() *Config {
	return &Config{
		Env:        "production",
		Port:       "8480",
		JWTSecret:  "secure-secret-at-least-32-chars-long!!",
		DBPassword: "secure-password",
		DBSSLMode:  "require",
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Valid production config", func(t *testing.T) {
		assert.NoError(t, validProductionConfig().Validate())
	})

	t.Run("Missing port", func(t *testing.T) {
		c := validProductionConfig()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("Missing JWT secret", func(t *testing.T) {
		c := validProductionConfig()
		c.JWTSecret = ""
		assert.Error(t, c.Validate())
	})

	t.Run("Default JWT secret rejected in production", func(t *testing.T) {
		c := validProductionConfig()
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("Short JWT secret rejected in production", func(t *testing.T) {
		c := validProductionConfig()
		c.JWTSecret = "short"
		assert.Error(t, c.Validate())
	})

	t.Run("Weak DB password rejected in production", func(t *testing.T) {
		c := validProductionConfig()
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})

	t.Run("Development tolerates defaults", func(t *testing.T) {
		c := &Config{
			Env:       "development",
			Port:      "8480",
			JWTSecret: "your-secret-key-change-in-production",
		}
		assert.NoError(t, c.Validate())
	})
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: "test"}).IsProduction())
	assert.False(t, (&Config{Env: ""}).IsProduction())
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8480", c.Port)
	assert.Equal(t, "development", c.Env)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Contains(t, c.FeatureFlags, "video_calls")
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "9999")
	t.Setenv("REDIS_URL", "redis://example:6379")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", c.Port)
	assert.Equal(t, "redis://example:6379", c.RedisURL)
}
