// конвертер валют: приводит сумму к рублям по фиксированному курсу
package currency

import "strings"

// таблица курсов к рублю. Курсы статические и со временем устаревают
var rates = map[string]int{
	"USD": 77,
	"UZS": 67,
	"KZT": 17,
	"EUR": 84,
}

// Normalize переводит сумму в рубли.
// Если суммы нет - результата тоже нет (не ноль).
// Если валюта не указана или неизвестна - сумма возвращается как есть.
func Normalize(amount *int, code *string) *int {
	if amount == nil {
		return nil
	}

	value := *amount
	if code != nil {
		// SuperJob присылает коды в нижнем регистре ("rub", "uzs")
		if rate, ok := rates[strings.ToUpper(*code)]; ok {
			value *= rate
		}
	}

	return &value
}

