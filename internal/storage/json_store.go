// файловое хранилище вакансий: один json-файл на ключевое слово
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"vacancies_parser/internal/domain/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const fileExt = ".json"

// JSONStore хранит вакансии в каталоге dir
type JSONStore struct {
	dir string
}

// NewJSONStore создаёт хранилище; каталог создаётся при первой записи
func NewJSONStore(dir string) *JSONStore {
	if dir == "" {
		dir = "."
	}
	return &JSONStore{dir: dir}
}

// FileName возвращает путь к файлу для ключевого слова: "python developer" -> "Python Developer.json"
func (s *JSONStore) FileName(keyword string) string {
	title := cases.Title(language.Und).String(strings.TrimSpace(keyword))
	return filepath.Join(s.dir, title+fileExt)
}

// Write полностью перезаписывает файл ключевого слова.
// Кириллица и прочие не-ASCII символы пишутся как есть
func (s *JSONStore) Write(keyword string, listings []models.Listing) error {
	if listings == nil {
		listings = []models.Listing{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(listings); err != nil {
		return fmt.Errorf("encode vacancies: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir %s: %w", s.dir, err)
	}

	path := s.FileName(keyword)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Read читает файл ключевого слова и создаёт по вакансии на каждую запись.
// Ключи сортировки пересчитываются при каждом чтении
func (s *JSONStore) Read(keyword string) ([]models.Vacancy, error) {
	path := s.FileName(keyword)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Keyword: keyword, Path: path}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var listings []models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	vacancies := make([]models.Vacancy, len(listings))
	for i, l := range listings {
		vacancies[i] = models.NewVacancy(l)
	}

	return vacancies, nil
}
