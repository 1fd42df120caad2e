package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNew_LoadsFileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
env: prod
database:
  driver: sqlite
  dsn: "file::memory:"
gateway:
  merchant_id: "1211149"
  merchant_secret: "s3cr3t"
reconcile:
  pending_horizon: 30m
`)
	t.Setenv("APP_CONFIG_FILE", path)

	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, EnvProd, cfg.Env)
	require.Equal(t, DBDriverSQLite, cfg.Database.Driver)
	require.Equal(t, "1211149", cfg.Gateway.MerchantID)
	require.Equal(t, 30*time.Minute, cfg.Reconcile.PendingHorizon)
	require.Equal(t, 8888, cfg.Server.Port)
	require.Equal(t, 24*time.Hour, cfg.Redis.ResultTTL)
	require.Equal(t, 100, cfg.Reconcile.StaleLimit)
}

func TestNew_EnvOverridesSecret(t *testing.T) {
	path := writeConfig(t, `
gateway:
  merchant_id: "1211149"
  merchant_secret: "from-file"
`)
	t.Setenv("APP_CONFIG_FILE", path)
	t.Setenv("APP_GATEWAY_MERCHANT_SECRET", "from-env")

	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Gateway.MerchantSecret)
}

func TestNew_RejectsMissingMerchant(t *testing.T) {
	path := writeConfig(t, "env: dev\n")
	t.Setenv("APP_CONFIG_FILE", path)

	_, err := New()
	require.Error(t, err)
	require.Contains(t, err.Error(), "gateway.merchant_id")
}
