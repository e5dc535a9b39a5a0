package model

// HHVacancy представляет структуру вакансии с HH.ru
type HHVacancy struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Salary       *Salary  `json:"salary"` // null, если работодатель не указал зарплату
	Employer     Employer `json:"employer"`
	Area         Area     `json:"area"`
	AlternateURL string   `json:"alternate_url"`
}

// Salary представляет информацию о зарплате
type Salary struct {
	From     *int    `json:"from"`
	To       *int    `json:"to"`
	Currency *string `json:"currency"`
}

// Employer представляет информацию о работодателе
type Employer struct {
	Name string `json:"name"`
}

// Area представляет информацию о местоположении
type Area struct {
	Name string `json:"name"`
}

// SearchResponse представляет ответ от API HH.ru
type SearchResponse struct {
	Items []HHVacancy `json:"items"`
}
