package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тестовые структуры для проверки
type TestConfig struct {
	Port    int    `yaml:"port" validate:"gt=0"`
	Host    string `yaml:"host" validate:"required"`
	Enabled bool   `yaml:"enabled"`
}

func TestLoadYAMLConfig(t *testing.T) {
	// Создаем временный каталог для тестовых файлов
	tmpDir := t.TempDir()

	t.Run("пустой путь к конфигу - значения по умолчанию", func(t *testing.T) {
		cfg, err := LoadYAMLConfig("", func() *TestConfig {
			return &TestConfig{Port: 8080, Host: "localhost", Enabled: true}
		})

		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "localhost", cfg.Host)
	})

	t.Run("файл не существует - значения по умолчанию", func(t *testing.T) {
		cfg, err := LoadYAMLConfig(filepath.Join(tmpDir, "nonexistent.yaml"), func() *TestConfig {
			return &TestConfig{Port: 3000, Host: "127.0.0.1"}
		})

		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, 3000, cfg.Port)
	})

	t.Run("успешная загрузка конфига", func(t *testing.T) {
		yamlContent := `
port: 9090
host: "example.com"
enabled: true
`
		configFile := filepath.Join(tmpDir, "test-config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(yamlContent), 0644))

		cfg, err := LoadYAMLConfig(configFile, func() *TestConfig {
			return &TestConfig{Port: 8080, Host: "localhost"}
		})

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "example.com", cfg.Host)
		assert.True(t, cfg.Enabled)
	})

	t.Run("ошибка парсинга YAML", func(t *testing.T) {
		invalidYaml := `
port: "не число"  # строка вместо числа
host: example.com
`
		configFile := filepath.Join(tmpDir, "invalid-config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(invalidYaml), 0644))

		cfg, err := LoadYAMLConfig(configFile, func() *TestConfig {
			return &TestConfig{}
		})

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("частичное заполнение конфига", func(t *testing.T) {
		yamlContent := `
port: 7777
# host не указан, должен остаться default
`
		configFile := filepath.Join(tmpDir, "partial-config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(yamlContent), 0644))

		cfg, err := LoadYAMLConfig(configFile, func() *TestConfig {
			return &TestConfig{Port: 1111, Host: "default", Enabled: true}
		})

		require.NoError(t, err)
		assert.Equal(t, 7777, cfg.Port)
		assert.Equal(t, "default", cfg.Host)
		assert.True(t, cfg.Enabled)
	})
}

func TestValidate(t *testing.T) {
	t.Run("валидный конфиг", func(t *testing.T) {
		assert.NoError(t, Validate(&TestConfig{Port: 1, Host: "h"}))
	})

	t.Run("нарушение правила возвращает ConfigError", func(t *testing.T) {
		err := Validate(&TestConfig{Port: 0, Host: "h"})

		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "Port", cfgErr.Field)
		assert.Contains(t, cfgErr.Error(), "gt")
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, ValidateVar("pages", 3, "gte=1"))

	err := ValidateVar("pages", 0, "gte=1")
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "pages", cfgErr.Field)
}
