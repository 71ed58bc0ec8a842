package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "hiking-weather-service", conf.ServiceName)
	assert.Equal(t, "0.0.0.0:3000", conf.ServerAddress)
	assert.Equal(t, "5432", conf.DBPort)
	assert.Equal(t, 30*time.Second, conf.HTTPTimeoutDuration())
	assert.Equal(t, 10*time.Second, conf.UpstreamTimeout)
	assert.Equal(t, "Asia/Jakarta", conf.Timezone)
	assert.Equal(t, 24*time.Hour, conf.JWTTTL)
	assert.Equal(t, "hiking_weather", conf.MetricsNamespace)
	assert.Empty(t, conf.JWTSecret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("TIMEZONE", "Europe/Istanbul")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_TIMEOUT", "5")

	conf, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, conf.UpstreamTimeout)
	assert.Equal(t, "Europe/Istanbul", conf.Timezone)
	assert.Equal(t, "s3cret", conf.JWTSecret)
	assert.Equal(t, 5*time.Second, conf.HTTPTimeoutDuration())
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "DATABASE_NAME=trails\nDATABASE_HOST=db.internal\nMETRICS_NAMESPACE=trails\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	conf, err := load(dir)
	require.NoError(t, err)

	assert.Equal(t, "trails", conf.DBName)
	assert.Equal(t, "db.internal", conf.DBHost)
	assert.Equal(t, "trails", conf.MetricsNamespace)
}

func TestLoadRejectsNonPositiveUpstreamTimeout(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "0s")

	_, err := load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPSTREAM_TIMEOUT")
}

func TestLocation(t *testing.T) {
	conf := &Config{Timezone: "Asia/Jakarta"}
	loc, err := conf.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())

	conf.Timezone = "Mars/Olympus_Mons"
	_, err = conf.Location()
	assert.Error(t, err)
}
