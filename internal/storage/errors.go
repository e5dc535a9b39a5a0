package storage

import "fmt"

// NotFoundError - файла для ключевого слова нет
type NotFoundError struct {
	Keyword string
	Path    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no saved vacancies for %q: %s does not exist", e.Keyword, e.Path)
}

// ParseError - содержимое файла не является списком вакансий
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
