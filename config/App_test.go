package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig(viper.New())
	require.NoError(t, err)

	a := assert.New(t)
	a.Equal("https://api.vnappmob.com/api/v2/province", cfg.Provider.BaseUrl)
	a.Equal(time.Duration(0), cfg.Provider.Timeout)
	a.Equal(30, cfg.Provider.MaxRedirects)
	a.Equal("vn_provinces_districts.json", cfg.Output.Json)
	a.Equal(2, cfg.Output.Indent)
	a.Empty(cfg.Output.Xlsx)
	a.Equal("vi", cfg.Locale)
	a.False(cfg.Redis.Enabled)
	a.Equal(24*time.Hour, cfg.Redis.TTL)
	a.False(cfg.Postgres.Enabled)
	a.Equal(5432, cfg.Postgres.Port)
}

func TestInitializeConfigOverrides(t *testing.T) {
	v := viper.New()
	v.Set("provider.timeout", "15s")
	v.Set("output.indent", 4)
	v.Set("locale", "en")
	v.Set("redis.enabled", true)

	cfg, err := InitializeConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.Equal(t, "en", cfg.Locale)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
}

func TestInitializeConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		description string
		key         string
		value       interface{}
	}{
		{description: "bad url", key: "provider.base_url", value: "not a url"},
		{description: "empty output", key: "output.json", value: ""},
		{description: "negative indent", key: "output.indent", value: -1},
		{description: "negative redirects", key: "provider.max_redirects", value: -1},
		{description: "unknown locale", key: "locale", value: "fr"},
		{description: "unknown log level", key: "log.level", value: "loud"},
	}
	for _, test := range tests {
		v := viper.New()
		v.Set(test.key, test.value)
		_, err := InitializeConfig(v)
		assert.ErrorIs(t, err, ErrInvalidConfig, test.description)
	}
}

func TestInitializeConfigPostgresRequiresKeyspace(t *testing.T) {
	v := viper.New()
	v.Set("postgres_db.enabled", true)
	v.Set("postgres_db.keyspace", "")
	_, err := InitializeConfig(v)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDatabaseUrl(t *testing.T) {
	url := DatabaseUrl(PostgresConfig{User: "app", Password: "p@ss", Cluster: "db", Port: 5432, Keyspace: "provinces"})
	assert.Equal(t, "postgres://app:p%40ss@db:5432/provinces?sslmode=disable", url)
}
