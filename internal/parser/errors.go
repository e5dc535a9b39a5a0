package parser

import "fmt"

// RequestError - внешний API ответил статусом, отличным от успешного
type RequestError struct {
	Parser     string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	if e.StatusCode >= 500 && e.StatusCode < 600 {
		return fmt.Sprintf("%s API server error %d: %s", e.Parser, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s API returned status %d: %s", e.Parser, e.StatusCode, e.Body)
}
