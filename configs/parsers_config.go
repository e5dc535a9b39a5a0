package configs

import "time"

type ParsersConfig struct {
	HH       *ParserInstanceConfig `yaml:"hh" validate:"required"`
	SuperJob *ParserInstanceConfig `yaml:"superjob" validate:"required"`
}

// структура конфига для отдельного парсера
type ParserInstanceConfig struct {
	BaseURL               string        `yaml:"base_url" validate:"required,url"`
	UserAgent             string        `yaml:"user_agent"`
	APIKey                string        `yaml:"-"` // API ключ заполняется только из окружения
	PerPage               int           `yaml:"per_page" validate:"gt=0,lte=100"`
	Timeout               time.Duration `yaml:"timeout" validate:"gte=0"`
	RateLimit             time.Duration `yaml:"rate_limit" validate:"gte=0"` // пауза между запросами страниц
	MaxIdleConns          int           `yaml:"max_idle_conns"`
	IdleConnTimeout       time.Duration `yaml:"idle_conn_timeout"`
	TLSHandshakeTimeout   time.Duration `yaml:"tls_handshake_timeout"`
	ResponseHeaderTimeout time.Duration `yaml:"response_header_timeout"`
}

// DefaultParsersConfig возвращает конфигурацию по умолчанию
func DefaultParsersConfig() *ParsersConfig {
	return &ParsersConfig{
		HH: &ParserInstanceConfig{
			BaseURL:               "https://api.hh.ru/vacancies",
			UserAgent:             "vacancies-parser/1.0 (api@vacancies-parser.local)",
			PerPage:               100,
			Timeout:               30 * time.Second,
			RateLimit:             500 * time.Millisecond,
			MaxIdleConns:          5,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
		},
		SuperJob: &ParserInstanceConfig{
			BaseURL:               "https://api.superjob.ru/2.0/vacancies/",
			PerPage:               100,
			Timeout:               30 * time.Second,
			RateLimit:             500 * time.Millisecond,
			MaxIdleConns:          5,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	}
}
