package config

import (
	"strings"

	"github.com/go-playground/validator"
)

// создаём экзмепляр валидатора один раз при загрузке модуля
var validate = validator.New()

// Вспомогательная структура для ошибок конфигурации
type ConfigError struct {
	Field string
	Msg   string
}

// метод вспомогательной функции для формирования ошибок
func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Msg
}

// Validate проверяет конфиг по тегам `validate`.
// Первое нарушение возвращается как *ConfigError
func Validate(cfg interface{}) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return &ConfigError{Field: "-", Msg: err.Error()}
	}

	fe := validationErrors[0]
	return &ConfigError{
		Field: strings.TrimPrefix(fe.Namespace(), namespaceRoot(fe.Namespace())),
		Msg:   "failed on the '" + fe.Tag() + "' rule",
	}
}

// ValidateVar проверяет одиночное значение (например, ввод пользователя)
func ValidateVar(field string, value interface{}, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return &ConfigError{Field: field, Msg: "failed on the '" + tag + "' rule"}
	}
	return nil
}

// отрезаем имя корневой структуры: "AppConfig.Parsers.HH.BaseURL" -> "Parsers.HH.BaseURL"
func namespaceRoot(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[:i+1]
	}
	return ""
}
