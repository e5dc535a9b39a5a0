// описание общего конфига приложения
package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"vacancies_parser/internal/config"

	"github.com/joho/godotenv"
)

// имена переменных окружения
const (
	EnvSuperJobAPIKey     = "SJ_API_KEY"
	EnvParsersConfigPath  = "PARSERS_CONFIG_PATH"
	EnvStorageConfigPath  = "STORAGE_CONFIG_PATH"
	EnvStorageDirOverride = "STORAGE_DIR"
)

type AppConfig struct {
	Parsers *ParsersConfig `validate:"required"`
	Storage *StorageConfig `validate:"required"`
}

// LoadConfig загружает .env (если он есть), yml-конфиги и ключ SuperJob из окружения.
// envPath может быть пустым - тогда ищется .env в текущем каталоге
func LoadConfig(envPath string) (*AppConfig, error) {
	if envPath == "" {
		envPath = ".env"
	}

	// отсутствие .env - не ошибка, переменные могут прийти из окружения
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error during loading %s: %w", envPath, err)
	}

	parsersConfig, err := config.LoadYAMLConfig[ParsersConfig](os.Getenv(EnvParsersConfigPath), DefaultParsersConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading parsers config: %w", err)
	}

	storageConfig, err := config.LoadYAMLConfig[StorageConfig](os.Getenv(EnvStorageConfigPath), DefaultStorageConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading storage config: %w", err)
	}

	if dir := os.Getenv(EnvStorageDirOverride); dir != "" {
		storageConfig.Dir = dir
	}

	// ключ читается один раз и дальше передаётся в конструктор парсера
	if parsersConfig.SuperJob != nil {
		parsersConfig.SuperJob.APIKey = os.Getenv(EnvSuperJobAPIKey)
	}

	cfg := &AppConfig{
		Parsers: parsersConfig,
		Storage: storageConfig,
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
