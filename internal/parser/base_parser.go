package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"vacancies_parser/internal/domain/models"

	"golang.org/x/time/rate"
)

// сколько байт тела ошибки попадёт в текст RequestError
const maxErrorBody = 512

// BaseConfig конфигурация базового парсера
type BaseConfig struct {
	Name                  string        // имя парсера (к какому источнику будет привязан)
	BaseURL               string        // базовый URL, через который бдет осуществляться парсинг
	UserAgent             string        // заголовок User-Agent (HH.ru без него отвечает 400)
	APIKey                string        // API ключ, если предусмотрен сервисом
	PerPage               int           // размер страницы выдачи
	Timeout               time.Duration // таймаут для http клиента
	RateLimit             time.Duration // пауза между запросами страниц, 0 - без паузы
	MaxIdleConns          int           // максимальное количество бездействующих (keep-alive) соединений
	IdleConnTimeout       time.Duration // интервал, через сколько закрывать неиспользуемое соединение
	TLSHandshakeTimeout   time.Duration // максимальное время ожидания завершения TLS handshake
	ResponseHeaderTimeout time.Duration // сколько ждать заголовков ответа после отправки запроса
	Logger                *log.Logger
}

// ParserFuncs определяет специфичные для источника функции
type ParserFuncs[T any] struct {
	BuildURL   func(models.SearchParams) (string, error)
	SetHeaders func(*http.Request)
	Parse      func([]byte) ([]T, error)
}

// BaseParser базовая реализация парсера: http, пауза между страницами, сбор страниц.
// T - сырой тип вакансии источника
type BaseParser[T any] struct {
	name       string
	baseURL    string
	userAgent  string
	apiKey     string
	perPage    int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
	funcs      ParserFuncs[T]
}

// Конструктор, который создает базовый парсер
func NewBaseParser[T any](config BaseConfig, funcs ParserFuncs[T]) (*BaseParser[T], error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("%s: base URL is empty", config.Name)
	}
	if config.RateLimit < 0 {
		return nil, fmt.Errorf("%s: rate limit must not be negative", config.Name)
	}
	if funcs.BuildURL == nil || funcs.Parse == nil {
		return nil, fmt.Errorf("%s: parser funcs are not set", config.Name)
	}

	limit := rate.Inf
	if config.RateLimit > 0 {
		limit = rate.Every(config.RateLimit)
	}

	logger := config.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "["+config.Name+"] ", log.LstdFlags)
	}

	return &BaseParser[T]{
		name:       config.Name,
		baseURL:    config.BaseURL,
		userAgent:  config.UserAgent,
		apiKey:     config.APIKey,
		perPage:    config.PerPage,
		httpClient: createHTTPClient(config),
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
		funcs:      funcs,
	}, nil
}

// функция, которая создаёт новый клиент с параметрами
func createHTTPClient(config BaseConfig) *http.Client {
	return &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxIdleConnsPerHost:   config.MaxIdleConns,
			IdleConnTimeout:       config.IdleConnTimeout,
			TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
			ResponseHeaderTimeout: config.ResponseHeaderTimeout,
		},
	}
}

// FetchPage запрашивает одну страницу выдачи.
// Неуспешный статус ответа возвращается как *RequestError
func (p *BaseParser[T]) FetchPage(ctx context.Context, params models.SearchParams) ([]T, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	apiURL, err := p.funcs.BuildURL(params)
	if err != nil {
		return nil, fmt.Errorf("build URL failed: %w", err)
	}

	resp, err := p.executeRequest(ctx, apiURL)
	if err != nil {
		return nil, err
	}
	defer p.drainAndClose(resp)

	if err := p.checkResponseStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response failed: %w", err)
	}

	items, err := p.funcs.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse response failed: %w", err)
	}

	return items, nil
}

// Collect последовательно собирает страницы 0..pageCount-1.
// Первая же ошибка останавливает сбор: она пишется в лог,
// а вызывающий получает всё, что успели собрать
func (p *BaseParser[T]) Collect(ctx context.Context, keyword string, pageCount int) []T {
	items := make([]T, 0)

	for page := 0; page < pageCount; page++ {
		pageItems, err := p.FetchPage(ctx, models.SearchParams{
			Text:    keyword,
			Page:    page,
			PerPage: p.perPage,
		})
		if err != nil {
			var reqErr *RequestError
			if errors.As(err, &reqErr) {
				p.logger.Printf("page %d: request failed with status %d, collected %d vacancies", page, reqErr.StatusCode, len(items))
			} else {
				p.logger.Printf("page %d: %v, collected %d vacancies", page, err, len(items))
			}
			break
		}

		items = append(items, pageItems...)
	}

	return items
}

// метод для выполнения HTTP запроса через клиент
func (p *BaseParser[T]) executeRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	if p.funcs.SetHeaders != nil {
		p.funcs.SetHeaders(req)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	return resp, nil
}

// метод для дренирования и закрытия тела ответа, освобождения ресурсов
func (p *BaseParser[T]) drainAndClose(resp *http.Response) {
	// Читаем с лимитом
	const maxBodySlurp = 1 << 20 // 1MB
	io.CopyN(io.Discard, resp.Body, maxBodySlurp)

	_ = resp.Body.Close()
}

// метод проверки статуса ответа на запрос к API
func (p *BaseParser[T]) checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &RequestError{
		Parser:     p.name,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}

// GetName возвращает имя парсера
func (p *BaseParser[T]) GetName() string {
	return p.name
}
