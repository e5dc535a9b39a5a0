package model

// Структуры для SuperJob API
type SuperJobResponse struct {
	Items []SJVacancy `json:"objects"`
}

type SJVacancy struct {
	ID          int     `json:"id"`
	Profession  string  `json:"profession"`
	FirmName    string  `json:"firm_name"`
	PaymentFrom *int    `json:"payment_from"` // 0 - зарплата не указана
	PaymentTo   *int    `json:"payment_to"`
	Currency    *string `json:"currency"`
	Address     *string `json:"address"`
	Link        string  `json:"link"`
}
