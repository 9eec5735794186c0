package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `server:
  listen_addr: ":50051"
  shutdown_timeout: "3s"

log:
  level: DEBUG
  format: console

employee:
  email_domain: example.org

seed:
  count: 25
  random_seed: 42
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":50051", cfg.Server.ListenAddr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, LogFormatConsole, cfg.Log.Format)
	assert.Equal(t, "example.org", cfg.Employee.EmailDomain)
	assert.Equal(t, 25, cfg.Seed.Count)
	assert.Equal(t, uint64(42), cfg.Seed.RandomSeed)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "server:\n  listen_addr: \":50051\"\n"))
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
	assert.Equal(t, "company.com", cfg.Employee.EmailDomain)
	assert.Zero(t, cfg.Seed.Count)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing listen addr": "{}",
		"bad duration":        "server:\n  listen_addr: \":1\"\n  shutdown_timeout: soon\n",
		"bad log format":      "server:\n  listen_addr: \":1\"\nlog:\n  format: xml\n",
		"negative seed":       "server:\n  listen_addr: \":1\"\nseed:\n  count: -1\n",
		"domain with at":      "server:\n  listen_addr: \":1\"\nemployee:\n  email_domain: a@b\n",
		"broken yaml":         "server: [",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config:")
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
