package service

import (
	"slices"

	"vacancies_parser/internal/domain/models"
)

// SortAscendingMin сортирует вакансии по возрастанию минимальной зарплаты в рублях.
// Порядок берётся из Vacancy.Greater: если обе вакансии "больше" друг друга
// (равные зарплаты или обе без зарплаты), они остаются в исходном порядке.
// Вакансии без зарплаты идут первыми. Входной срез не меняется
func SortAscendingMin(records []models.Vacancy) []models.Vacancy {
	sorted := slices.Clone(records)

	slices.SortStableFunc(sorted, func(a, b models.Vacancy) int {
		aGreater := a.Greater(b)
		bGreater := b.Greater(a)

		switch {
		case aGreater == bGreater:
			return 0
		case bGreater:
			return -1
		default:
			return 1
		}
	})

	return sorted
}

// SortDescendingMax сортирует вакансии по убыванию максимальной зарплаты в рублях.
// Вакансии без зарплаты всегда в конце. Входной срез не меняется
func SortDescendingMax(records []models.Vacancy) []models.Vacancy {
	sorted := slices.Clone(records)

	slices.SortStableFunc(sorted, func(a, b models.Vacancy) int {
		aMax, bMax := a.SortMax(), b.SortMax()

		switch {
		case aMax == nil && bMax == nil:
			return 0
		case aMax == nil:
			return 1
		case bMax == nil:
			return -1
		case *aMax > *bMax:
			return -1
		case *aMax < *bMax:
			return 1
		default:
			return 0
		}
	})

	return sorted
}
