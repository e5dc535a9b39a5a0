package models

import (
	"fmt"
	"strings"

	"vacancies_parser/internal/currency"
)

// текст, который выводится вместо отсутствующих данных
const NotSpecified = "not specified"

// общая структура запроса одной страницы поиска
type SearchParams struct {
	Text    string
	Page    int // номер страницы, начиная с 0
	PerPage int
}

// Listing - промежуточная вакансия, общая для всех источников.
// Именно в таком виде вакансии сохраняются в файл
type Listing struct {
	ID        string  `json:"id_vacancy"`
	Title     string  `json:"title"`
	SalaryMin *int    `json:"salary_min"`
	SalaryMax *int    `json:"salary_max"`
	Currency  *string `json:"currency"`
	Employer  string  `json:"employer"`
	URL       string  `json:"url"`
	Address   *string `json:"address"`
}

// Vacancy - доменная вакансия, которая восстанавливается из хранилища.
// Поля закрыты: после создания вакансия не меняется
type Vacancy struct {
	listing Listing
	sortMin *int // минимальная зарплата в рублях
	sortMax *int // максимальная зарплата в рублях
}

// NewVacancy создаёт вакансию и один раз пересчитывает зарплату в рубли
func NewVacancy(l Listing) Vacancy {
	l.SalaryMin = copyInt(l.SalaryMin)
	l.SalaryMax = copyInt(l.SalaryMax)
	l.Currency = copyString(l.Currency)
	l.Address = copyString(l.Address)

	return Vacancy{
		listing: l,
		sortMin: currency.Normalize(l.SalaryMin, l.Currency),
		sortMax: currency.Normalize(l.SalaryMax, l.Currency),
	}
}

func (v Vacancy) ID() string { return v.listing.ID }
func (v Vacancy) Title() string { return v.listing.Title }
func (v Vacancy) Employer() string { return v.listing.Employer }
func (v Vacancy) URL() string { return v.listing.URL }
func (v Vacancy) SalaryMin() *int { return copyInt(v.listing.SalaryMin) }
func (v Vacancy) SalaryMax() *int { return copyInt(v.listing.SalaryMax) }
func (v Vacancy) Currency() *string { return copyString(v.listing.Currency) }
func (v Vacancy) Address() *string { return copyString(v.listing.Address) }
func (v Vacancy) SortMin() *int { return copyInt(v.sortMin) }
func (v Vacancy) SortMax() *int { return copyInt(v.sortMax) }

// Listing возвращает исходные (сырые) поля вакансии
func (v Vacancy) Listing() Listing {
	l := v.listing
	l.SalaryMin = copyInt(l.SalaryMin)
	l.SalaryMax = copyInt(l.SalaryMax)
	l.Currency = copyString(l.Currency)
	l.Address = copyString(l.Address)
	return l
}

// Greater сравнивает вакансии по минимальной зарплате в рублях.
// Вакансия без зарплаты меньше любой другой. При равенстве оба сравнения
// дают true: сортировка поверх Greater обязана быть стабильной.
func (v Vacancy) Greater(other Vacancy) bool {
	if other.sortMin == nil {
		return true
	}
	if v.sortMin == nil {
		return false
	}
	return *v.sortMin >= *other.sortMin
}

// String формирует карточку вакансии для вывода пользователю
func (v Vacancy) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "ID: %s\n", v.listing.ID)
	fmt.Fprintf(&b, "Vacancy: %s\n", v.listing.Title)
	fmt.Fprintf(&b, "Employer: %s\n", v.listing.Employer)
	fmt.Fprintf(&b, "Salary from: %s\n", v.formatSalary(v.listing.SalaryMin))
	fmt.Fprintf(&b, "Salary to: %s\n", v.formatSalary(v.listing.SalaryMax))

	address := NotSpecified
	if v.listing.Address != nil && *v.listing.Address != "" {
		address = *v.listing.Address
	}
	fmt.Fprintf(&b, "Address: %s\n", address)
	fmt.Fprintf(&b, "URL: %s", v.listing.URL)

	return b.String()
}

// ноль и отсутствие зарплаты выводятся одинаково
func (v Vacancy) formatSalary(amount *int) string {
	if amount == nil || *amount == 0 {
		return NotSpecified
	}
	if v.listing.Currency == nil || *v.listing.Currency == "" {
		return fmt.Sprintf("%d", *amount)
	}
	return fmt.Sprintf("%d %s", *amount, *v.listing.Currency)
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
