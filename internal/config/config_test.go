package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSecrets map[string]string

func (m mapSecrets) GetSecretOrEnv(_ context.Context, secretName, _ string) (string, error) {
	v, ok := m[secretName]
	if !ok {
		return "", errors.New("missing")
	}
	return v, nil
}

func TestLoad_Defaults(t *testing.T) {

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "DataLab API", cfg.App.Name)
	assert.Equal(t, 8001, cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "ka", cfg.Display.Locale)
	assert.True(t, cfg.Display.DarkMode)
	assert.False(t, cfg.Jobs.AutoArchiveEnabled)
	assert.Equal(t, 30, cfg.Jobs.AutoArchiveAfterDays)
	assert.Equal(t, "http://localhost:8001", cfg.Client.APIBaseURL)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTLDuration())
	assert.Equal(t, time.Duration(0), cfg.Client.TimeoutDuration())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("ADMIN_API_KEY", "key-123")
	t.Setenv("BACKEND_URL", "https://api.datalab.ge")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "key-123", cfg.Auth.APIKey)
	assert.Equal(t, "key-123", cfg.Client.APIKey)
	assert.Equal(t, "https://api.datalab.ge", cfg.Client.APIBaseURL)
}

func TestApplySecrets(t *testing.T) {
	cfg := &Config{}
	err := applySecrets(context.Background(), cfg, mapSecrets{
		"DATALAB-DB-PASSWORD":       "pw",
		"admin-api-key":             "vault-key",
		"jwt-secret":                "jwt",
		"storage-connection-string": "conn",
	})
	require.NoError(t, err)

	assert.Equal(t, "pw", cfg.Database.Password)
	assert.Equal(t, "vault-key", cfg.Auth.APIKey)
	assert.Equal(t, "jwt", cfg.Auth.JWTSecret)
	assert.Equal(t, "conn", cfg.Storage.CloudConnectionString)
	assert.Empty(t, cfg.Cache.Password)
}

func TestApplySecrets_RequiresAPIKey(t *testing.T) {
	err := applySecrets(context.Background(), &Config{}, mapSecrets{})
	assert.Error(t, err)
}

func TestDatabaseConnectionString(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "datalab", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=datalab sslmode=disable", d.ConnectionString())
}
