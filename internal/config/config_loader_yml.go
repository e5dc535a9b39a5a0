package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// универсальня функция загрузки конфига из .yml файла (используем дженерики)
// fn - функция конструктор конфига со значениями по умолчанию
func LoadYAMLConfig[T any](configPath string, fn func() *T) (*T, error) {
	// в config сразу лежат значения по умолчанию:
	// если файла нет или он пуст, конфигурация всё равно рабочая
	config := fn()

	// путь не указан - возвращаем дефолтные значения
	if configPath == "" {
		return config, nil
	}

	// файла нет - тоже дефолтные значения, без ошибки
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	// файл есть, но не читается или не парсится - это ошибка
	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", configPath, err)
	}

	// пробуем анмаршалить конфиг из yml файла поверх значений по умолчанию
	if err := yaml.Unmarshal(yamlFile, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", configPath, err)
	}

	return config, nil
}
