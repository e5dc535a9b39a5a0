package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"vacancies_parser/configs"
	"vacancies_parser/internal/domain/models"
	"vacancies_parser/internal/interfaces"
	"vacancies_parser/internal/parser/model"
)

// создаём стркутуру парсера для HH.ru на базе общего парсера
type HHParser struct {
	*BaseParser[model.HHVacancy]
}

// конструктор для парсера HH.ru
func NewHHParser(cfg *configs.ParserInstanceConfig, logger *log.Logger) (*HHParser, error) {
	if cfg == nil {
		cfg = configs.DefaultParsersConfig().HH
	}

	p := &HHParser{}

	baseParser, err := NewBaseParser(baseConfig("HH.ru", cfg, logger), ParserFuncs[model.HHVacancy]{
		BuildURL: p.buildURL,
		Parse:    p.parseResponse,
	})
	if err != nil {
		return nil, fmt.Errorf("create parser HH.ru: %w", err)
	}

	p.BaseParser = baseParser
	return p, nil
}

// Search собирает страницы и приводит их к общему формату
func (p *HHParser) Search(ctx context.Context, keyword string, pageCount int) []models.Listing {
	return p.ToListings(p.Collect(ctx, keyword, pageCount))
}

// buildURL строит URL для API запроса для поиска списка вакансий
func (p *HHParser) buildURL(params models.SearchParams) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	if params.Text != "" {
		query.Set("text", params.Text)
	}
	query.Set("page", strconv.Itoa(params.Page)) // HH.ru считает страницы с 0
	if params.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(params.PerPage))
	}

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// метод парсера обработки тела ответа
func (p *HHParser) parseResponse(body []byte) ([]model.HHVacancy, error) {
	var searchResponse model.SearchResponse
	if err := json.Unmarshal(body, &searchResponse); err != nil {
		return nil, fmt.Errorf("[Parser name: %s] parse response body - failed: %w", p.name, err)
	}
	return searchResponse.Items, nil
}

// ToListings приводит вакансии HH.ru к общему формату.
// Вакансии без зарплаты не отбрасываются
func (p *HHParser) ToListings(items []model.HHVacancy) []models.Listing {
	listings := make([]models.Listing, len(items))

	for i, hhvacancy := range items {
		listing := models.Listing{
			ID:       hhvacancy.ID,
			Title:    hhvacancy.Name,
			Employer: hhvacancy.Employer.Name,
			URL:      hhvacancy.AlternateURL,
		}

		if hhvacancy.Salary != nil {
			listing.SalaryMin = hhvacancy.Salary.From
			listing.SalaryMax = hhvacancy.Salary.To
			listing.Currency = hhvacancy.Salary.Currency
		}

		if hhvacancy.Area.Name != "" {
			area := hhvacancy.Area.Name
			listing.Address = &area
		}

		listings[i] = listing
	}

	return listings
}

// общая часть конфига для всех парсеров
func baseConfig(name string, cfg *configs.ParserInstanceConfig, logger *log.Logger) BaseConfig {
	return BaseConfig{
		Name:                  name,
		BaseURL:               cfg.BaseURL,
		UserAgent:             cfg.UserAgent,
		APIKey:                cfg.APIKey,
		PerPage:               cfg.PerPage,
		Timeout:               cfg.Timeout,
		RateLimit:             cfg.RateLimit,
		MaxIdleConns:          cfg.MaxIdleConns,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		Logger:                logger,
	}
}

// Проверка на этапе компиляции, что тип реализует интерфейсы
var (
	_ interfaces.Source[model.HHVacancy] = (*HHParser)(nil)
	_ interfaces.VacancySource           = (*HHParser)(nil)
)
