package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"vacancies_parser/configs"
	"vacancies_parser/internal/domain/models"
	"vacancies_parser/internal/interfaces"
	"vacancies_parser/internal/parser/model"
)

// заголовок, в котором SuperJob ждёт секретный ключ приложения
const superJobKeyHeader = "X-Api-App-Id"

// создаём стркутуру парсера для SuperJob.ru на базе общего парсера
type SJParser struct {
	*BaseParser[model.SJVacancy]
}

// конструктор для парсера SuperJob.ru
func NewSJParser(cfg *configs.ParserInstanceConfig, logger *log.Logger) (*SJParser, error) {
	if cfg == nil {
		cfg = configs.DefaultParsersConfig().SuperJob
	}

	p := &SJParser{}

	baseParser, err := NewBaseParser(baseConfig("SuperJob.ru", cfg, logger), ParserFuncs[model.SJVacancy]{
		BuildURL:   p.buildURL,
		SetHeaders: p.setHeaders,
		Parse:      p.parseResponse,
	})
	if err != nil {
		return nil, fmt.Errorf("create parser SuperJob.ru: %w", err)
	}

	p.BaseParser = baseParser
	return p, nil
}

// Search собирает страницы и приводит их к общему формату
func (p *SJParser) Search(ctx context.Context, keyword string, pageCount int) []models.Listing {
	return p.ToListings(p.Collect(ctx, keyword, pageCount))
}

// buildURL строит URL для API запроса для поиска списка вакансий
func (p *SJParser) buildURL(params models.SearchParams) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	if params.Text != "" {
		query.Set("keyword", params.Text)
	}
	query.Set("page", strconv.Itoa(params.Page)) // SuperJob использует 0-based
	if params.PerPage > 0 {
		query.Set("count", strconv.Itoa(params.PerPage))
	}

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// без ключа SuperJob ответит 403, это попадёт в лог как RequestError
func (p *SJParser) setHeaders(req *http.Request) {
	if p.apiKey != "" {
		req.Header.Set(superJobKeyHeader, p.apiKey)
	}
}

// метод парсера обработки тела ответа
func (p *SJParser) parseResponse(body []byte) ([]model.SJVacancy, error) {
	var searchResponse model.SuperJobResponse
	if err := json.Unmarshal(body, &searchResponse); err != nil {
		return nil, fmt.Errorf("[Parser name: %s] parse response body - failed: %w", p.name, err)
	}
	return searchResponse.Items, nil
}

// ToListings приводит вакансии SuperJob к общему формату.
// payment_from/payment_to переносятся как есть, в том числе нули
func (p *SJParser) ToListings(items []model.SJVacancy) []models.Listing {
	listings := make([]models.Listing, len(items))

	for i, sjv := range items {
		listings[i] = models.Listing{
			ID:        strconv.Itoa(sjv.ID),
			Title:     sjv.Profession,
			SalaryMin: sjv.PaymentFrom,
			SalaryMax: sjv.PaymentTo,
			Currency:  sjv.Currency,
			Employer:  sjv.FirmName,
			URL:       sjv.Link,
			Address:   sjv.Address,
		}
	}

	return listings
}

// Проверка на этапе компиляции, что тип реализует интерфейсы
var (
	_ interfaces.Source[model.SJVacancy] = (*SJParser)(nil)
	_ interfaces.VacancySource           = (*SJParser)(nil)
)
