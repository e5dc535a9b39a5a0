// фабрика парсеров: по типу парсера создаёт нужный источник вакансий
package parser

import (
	"fmt"
	"log"

	"vacancies_parser/configs"
	"vacancies_parser/internal/interfaces"
)

// ParserType тип парсера
type ParserType string

const (
	ParserTypeHH ParserType = "hh"
	ParserTypeSJ ParserType = "superjob"
)

// ParserConstructor функция-конструктор парсера
type ParserConstructor func(config *configs.ParserInstanceConfig, logger *log.Logger) (interfaces.VacancySource, error)

// ParserFactory фабрика парсеров
type ParserFactory struct {
	constructors map[ParserType]ParserConstructor
	configs      map[ParserType]*configs.ParserInstanceConfig
	logger       *log.Logger
}

// NewParserFactory создает новую фабрику
func NewParserFactory(logger *log.Logger) *ParserFactory {
	return &ParserFactory{
		constructors: make(map[ParserType]ParserConstructor),
		configs:      make(map[ParserType]*configs.ParserInstanceConfig),
		logger:       logger,
	}
}

// NewDefaultFactory создаёт фабрику с зарегистрированными HH.ru и SuperJob
func NewDefaultFactory(cfg *configs.ParsersConfig, logger *log.Logger) *ParserFactory {
	if cfg == nil {
		cfg = configs.DefaultParsersConfig()
	}

	f := NewParserFactory(logger)
	f.Register(ParserTypeHH, cfg.HH, func(c *configs.ParserInstanceConfig, l *log.Logger) (interfaces.VacancySource, error) {
		p, err := NewHHParser(c, l)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	f.Register(ParserTypeSJ, cfg.SuperJob, func(c *configs.ParserInstanceConfig, l *log.Logger) (interfaces.VacancySource, error) {
		p, err := NewSJParser(c, l)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	return f
}

// Register регистрирует конструктор парсера и конфиг
func (f *ParserFactory) Register(parserType ParserType, config *configs.ParserInstanceConfig, constructor ParserConstructor) {
	f.constructors[parserType] = constructor
	f.configs[parserType] = config
}

// Create - создает парсер, если вся инфа до этого была зарегестрирована в фабрике
func (f *ParserFactory) Create(parserType ParserType) (interfaces.VacancySource, error) {
	constructor, ok := f.constructors[parserType]
	if !ok {
		return nil, fmt.Errorf("parser type not registered: %s", parserType)
	}

	var logger *log.Logger
	if f.logger != nil {
		logger = log.New(f.logger.Writer(), f.logger.Prefix()+"["+string(parserType)+"] ", f.logger.Flags())
	}

	return constructor(f.configs[parserType], logger)
}
