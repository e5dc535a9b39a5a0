package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func vacancyWithMin(min *int) Vacancy {
	return NewVacancy(Listing{ID: "1", Title: "Go developer", SalaryMin: min})
}

func TestNewVacancy_Normalization(t *testing.T) {
	t.Run("зарплата пересчитывается в рубли", func(t *testing.T) {
		v := NewVacancy(Listing{
			ID:        "42",
			SalaryMin: intPtr(1000),
			SalaryMax: intPtr(2000),
			Currency:  strPtr("USD"),
		})

		require.NotNil(t, v.SortMin())
		require.NotNil(t, v.SortMax())
		assert.Equal(t, 77000, *v.SortMin())
		assert.Equal(t, 154000, *v.SortMax())
	})

	t.Run("нет зарплаты - нет ключа сортировки", func(t *testing.T) {
		v := NewVacancy(Listing{ID: "1", Currency: strPtr("EUR")})

		assert.Nil(t, v.SortMin())
		assert.Nil(t, v.SortMax())
	})

	t.Run("только верхняя граница", func(t *testing.T) {
		v := NewVacancy(Listing{SalaryMax: intPtr(300), Currency: strPtr("KZT")})

		assert.Nil(t, v.SortMin())
		require.NotNil(t, v.SortMax())
		assert.Equal(t, 5100, *v.SortMax())
	})
}

// изменение исходной структуры после создания не должно влиять на вакансию
func TestNewVacancy_Immutable(t *testing.T) {
	min := 100
	cur := "USD"
	l := Listing{SalaryMin: &min, Currency: &cur}
	v := NewVacancy(l)

	min = 999
	cur = "EUR"

	assert.Equal(t, 100, *v.SalaryMin())
	assert.Equal(t, "USD", *v.Currency())
	assert.Equal(t, 7700, *v.SortMin())

	got := v.SortMin()
	*got = 1
	assert.Equal(t, 7700, *v.SortMin())
}

func TestVacancy_Greater(t *testing.T) {
	low := vacancyWithMin(intPtr(100))
	high := vacancyWithMin(intPtr(500))
	same := vacancyWithMin(intPtr(100))
	none := vacancyWithMin(nil)
	otherNone := vacancyWithMin(nil)

	assert.True(t, high.Greater(low))
	assert.False(t, low.Greater(high))

	// при равенстве обе стороны "больше"
	assert.True(t, low.Greater(same))
	assert.True(t, same.Greater(low))

	// любая вакансия больше вакансии без зарплаты
	assert.True(t, low.Greater(none))
	assert.False(t, none.Greater(low))
	assert.True(t, none.Greater(otherNone))
}

// сравнение идёт по рублёвому эквиваленту, а не по сырой сумме
func TestVacancy_GreaterUsesNormalizedSalary(t *testing.T) {
	dollars := NewVacancy(Listing{SalaryMin: intPtr(1000), Currency: strPtr("USD")})
	rubles := NewVacancy(Listing{SalaryMin: intPtr(50000), Currency: strPtr("RUR")})

	assert.True(t, dollars.Greater(rubles))
	assert.False(t, rubles.Greater(dollars))
}

func TestVacancy_String(t *testing.T) {
	t.Run("нулевая зарплата выводится как не указанная", func(t *testing.T) {
		v := NewVacancy(Listing{
			ID:        "7",
			Title:     "Python developer",
			SalaryMin: intPtr(0),
			SalaryMax: intPtr(0),
			Employer:  "ООО Ромашка",
			URL:       "https://hh.ru/vacancy/7",
		})

		s := v.String()
		assert.Contains(t, s, "Salary from: not specified")
		assert.Contains(t, s, "Salary to: not specified")
		assert.Contains(t, s, "Address: not specified")
		assert.NotContains(t, s, "Salary from: 0")
		assert.Contains(t, s, "Employer: ООО Ромашка")
	})

	t.Run("зарплата с валютой", func(t *testing.T) {
		v := NewVacancy(Listing{
			ID:        "8",
			Title:     "Go developer",
			SalaryMin: intPtr(1500),
			Currency:  strPtr("USD"),
			Address:   strPtr("Москва"),
			URL:       "https://hh.ru/vacancy/8",
		})

		s := v.String()
		assert.Contains(t, s, "Salary from: 1500 USD")
		assert.Contains(t, s, "Salary to: not specified")
		assert.Contains(t, s, "Address: Москва")
		assert.Contains(t, s, "URL: https://hh.ru/vacancy/8")
	})
}

func TestVacancy_ListingRoundTrip(t *testing.T) {
	l := Listing{
		ID:        "1",
		Title:     "QA",
		SalaryMin: intPtr(10),
		Currency:  strPtr("rub"),
		Employer:  "Acme",
		URL:       "https://example.com",
	}

	assert.Equal(t, l, NewVacancy(l).Listing())
}
