package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cireport/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://magma-ci-default-rtdb.firebaseio.com/", cfg.DatabaseURL)
	assert.Empty(t, cfg.HistoryDSN)
	assert.Zero(t, cfg.Timeout)
}

func TestLoadFromPath(t *testing.T) {
	p := writeFile(t, "ci-report.yaml", `
database_url: https://staging-rtdb.firebaseio.com/
history_dsn: postgres://ci@localhost/ci
timeout: 30s
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "https://staging-rtdb.firebaseio.com/", cfg.DatabaseURL)
	assert.Equal(t, "postgres://ci@localhost/ci", cfg.HistoryDSN)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadKeepsDefaultURL(t *testing.T) {
	cfg, err := Load(writeFile(t, "c.yaml", "timeout: 5s\n"))
	require.NoError(t, err)
	assert.Equal(t, "https://magma-ci-default-rtdb.firebaseio.com/", cfg.DatabaseURL)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsKind(err, errors.KindConfig))

	_, err = Load(writeFile(t, "bad.yaml", "database_url: [unclosed\n"))
	assert.True(t, errors.IsKind(err, errors.KindConfig))

	_, err = Load(writeFile(t, "ftp.yaml", "database_url: ftp://nope\n"))
	assert.True(t, errors.IsKind(err, errors.KindConfig))

	_, err = Load(writeFile(t, "neg.yaml", "timeout: -1s\n"))
	assert.True(t, errors.IsKind(err, errors.KindConfig))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(p, []byte("CI_REPORT_TEST_A=from-file\nCI_REPORT_TEST_B=from-file\n"), 0o600))

	t.Setenv("CI_REPORT_TEST_B", "from-env")
	os.Unsetenv("CI_REPORT_TEST_A")
	t.Cleanup(func() { os.Unsetenv("CI_REPORT_TEST_A") })

	require.NoError(t, LoadDotEnv(p))
	assert.Equal(t, "from-file", os.Getenv("CI_REPORT_TEST_A"))
	assert.Equal(t, "from-env", os.Getenv("CI_REPORT_TEST_B"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "absent.env")))
}
