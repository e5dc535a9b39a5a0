package interfaces

import (
	"context"

	"vacancies_parser/internal/domain/models"
)

// Source - постраничный внешний источник вакансий.
// T - сырой тип вакансии конкретного API
type Source[T any] interface {
	GetName() string
	FetchPage(ctx context.Context, params models.SearchParams) ([]T, error)
	Collect(ctx context.Context, keyword string, pageCount int) []T
	ToListings(items []T) []models.Listing
}

// VacancySource - источник, который сразу отдаёт вакансии в общем формате
type VacancySource interface {
	GetName() string
	Search(ctx context.Context, keyword string, pageCount int) []models.Listing
}
