package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vacancies_parser/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// очищаем переменные окружения, которые читает LoadConfig
func clearEnv(t *testing.T) {
	for _, key := range []string{EnvSuperJobAPIKey, EnvParsersConfigPath, EnvStorageConfigPath, EnvStorageDirOverride} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.hh.ru/vacancies", cfg.Parsers.HH.BaseURL)
	assert.Equal(t, "https://api.superjob.ru/2.0/vacancies/", cfg.Parsers.SuperJob.BaseURL)
	assert.Equal(t, 100, cfg.Parsers.HH.PerPage)
	assert.Equal(t, ".", cfg.Storage.Dir)
	assert.Empty(t, cfg.Parsers.SuperJob.APIKey)
}

func TestLoadConfig_FromEnvFileAndYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	parsersYAML := `
hh:
  base_url: "http://localhost:9000/vacancies"
  per_page: 20
  timeout: 5s
  rate_limit: 100ms
superjob:
  base_url: "http://localhost:9001/2.0/vacancies/"
  per_page: 40
`
	parsersPath := filepath.Join(dir, "parsers.yml")
	require.NoError(t, os.WriteFile(parsersPath, []byte(parsersYAML), 0644))

	envContent := "SJ_API_KEY=v3.r.secret\n" +
		"PARSERS_CONFIG_PATH=" + parsersPath + "\n" +
		"STORAGE_DIR=" + filepath.Join(dir, "data") + "\n"
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(envContent), 0644))

	cfg, err := LoadConfig(envPath)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/vacancies", cfg.Parsers.HH.BaseURL)
	assert.Equal(t, 20, cfg.Parsers.HH.PerPage)
	assert.Equal(t, 5*time.Second, cfg.Parsers.HH.Timeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Parsers.HH.RateLimit)
	assert.Equal(t, 40, cfg.Parsers.SuperJob.PerPage)
	assert.Equal(t, "v3.r.secret", cfg.Parsers.SuperJob.APIKey)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.Storage.Dir)
}

func TestLoadConfig_ValidationError(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	parsersPath := filepath.Join(dir, "parsers.yml")
	require.NoError(t, os.WriteFile(parsersPath, []byte("hh:\n  base_url: \"http://hh.local/vacancies\"\n  per_page: 500\n"), 0644))
	t.Setenv(EnvParsersConfigPath, parsersPath)

	_, err := LoadConfig(filepath.Join(dir, "missing.env"))

	var cfgErr *config.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "Parsers.HH.PerPage", cfgErr.Field)
}
