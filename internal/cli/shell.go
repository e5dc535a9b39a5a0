// интерактивная оболочка: выбор площадки, поиск, сохранение и вывод вакансий
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"vacancies_parser/internal/config"
	"vacancies_parser/internal/domain/models"
	"vacancies_parser/internal/interfaces"
	"vacancies_parser/internal/parser"
	"vacancies_parser/internal/service"
)

// InputError - пользователь ввёл некорректное значение
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Store - хранилище, в которое складываются результаты поиска
type Store interface {
	FileName(keyword string) string
	Write(keyword string, listings []models.Listing) error
	Read(keyword string) ([]models.Vacancy, error)
}

// SourceFactory создаёт источник вакансий по его типу
type SourceFactory interface {
	Create(parserType parser.ParserType) (interfaces.VacancySource, error)
}

// площадка в меню: номер, тип парсера и ширина разделителя между вакансиями
type platform struct {
	title          string
	parserType     parser.ParserType
	separatorWidth int
}

var platforms = map[string]platform{
	"1": {title: "SuperJob", parserType: parser.ParserTypeSJ, separatorWidth: 100},
	"2": {title: "HeadHunter", parserType: parser.ParserTypeHH, separatorWidth: 180},
}

const (
	cmdList    = "1"
	cmdSortMin = "2"
	cmdSortMax = "3"
	cmdExit    = "4"
)

const menuText = "Please choose a menu item and enter its number:\n" +
	"1: Show vacancies;\n" +
	"2: Show vacancies (sorted by minimum salary);\n" +
	"3: Show vacancies (sorted by maximum salary);\n" +
	"4: Exit\n"

// Shell - последовательный цикл "вопрос - ответ" поверх in/out
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	factory SourceFactory
	store   Store
	logger  *log.Logger
}

func NewShell(in io.Reader, out io.Writer, factory SourceFactory, store Store, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		factory: factory,
		store:   store,
		logger:  logger,
	}
}

// результат одного поиска
type session struct {
	vacancies []models.Vacancy
	platform  platform
}

// Run работает до команды выхода или конца ввода.
// Ошибка хранилища завершает текущий поиск, после чего можно начать новый.
// Отмена ctx завершает сессию с ошибкой ctx.Err()
func (s *Shell) Run(ctx context.Context) error {
	s.println("Welcome! This program searches for vacancies on HeadHunter and SuperJob.\n")

	for {
		sess, ok, err := s.search(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if sess == nil {
			continue
		}

		if done := s.menu(sess.vacancies, sess.platform); done {
			return nil
		}
	}
}

// search проводит один поиск. ok=false - ввод закончился.
// sess=nil при ok=true - поиск прерван пользователем или ошибкой хранилища
func (s *Shell) search(ctx context.Context) (*session, bool, error) {
	p, ok := s.askPlatform()
	if !ok {
		return nil, false, nil
	}
	s.println(fmt.Sprintf("You have chosen %s to search for vacancies.", p.title))

	keyword, ok := s.askKeyword()
	if !ok {
		return nil, false, nil
	}

	pages, ok := s.askPageCount()
	if !ok {
		return nil, false, nil
	}

	source, err := s.factory.Create(p.parserType)
	if err != nil {
		return nil, false, fmt.Errorf("create %s parser: %w", p.title, err)
	}

	// Ctrl+C во время поиска прерывает только запросы к API
	searchCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	listings := source.Search(searchCtx, keyword, pages)
	interrupted := searchCtx.Err() != nil
	stop()

	// прерванный поиск не перезаписывает сохранённые результаты
	if interrupted {
		s.println("Search interrupted, results were not saved.")
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	s.logger.Printf("%s: %d vacancies collected for %q", source.GetName(), len(listings), keyword)

	if err := s.store.Write(keyword, listings); err != nil {
		s.println("Error: " + err.Error())
		return nil, true, nil
	}

	vacancies, err := s.store.Read(keyword)
	if err != nil {
		s.println("Error: " + err.Error())
		return nil, true, nil
	}

	s.println(fmt.Sprintf("Found %d vacancies, saved to %s\n", len(vacancies), s.store.FileName(keyword)))
	return &session{vacancies: vacancies, platform: p}, true, nil
}

// menu показывает меню до выхода. Сортировки применяются к текущему списку.
// Возвращает true, если пользователь вышел или ввод закончился
func (s *Shell) menu(vacancies []models.Vacancy, p platform) bool {
	for {
		command, ok := s.ask(menuText)
		if !ok {
			return true
		}

		switch strings.ToLower(command) {
		case cmdList:
		case cmdSortMin:
			vacancies = service.SortAscendingMin(vacancies)
		case cmdSortMax:
			vacancies = service.SortDescendingMax(vacancies)
		case cmdExit:
			s.println("Thank you for using our program.\nGoodbye!")
			return true
		default:
			s.println("Unknown command: " + command)
			continue
		}

		s.printVacancies(vacancies, p.separatorWidth)
	}
}

func (s *Shell) printVacancies(vacancies []models.Vacancy, width int) {
	if len(vacancies) == 0 {
		s.println("No vacancies found.")
		return
	}

	separator := "\n\n" + strings.Repeat("_", width) + "\n\n"
	for _, v := range vacancies {
		fmt.Fprint(s.out, v.String()+separator)
	}
}

func (s *Shell) askPlatform() (platform, bool) {
	answer, ok := s.ask("Please choose one of the available services by its number:\n1: SuperJob\n2: HeadHunter\n")
	for ok {
		if p, found := platforms[answer]; found {
			return p, true
		}
		answer, ok = s.ask("Platform not found, please try again: ")
	}
	return platform{}, false
}

func (s *Shell) askKeyword() (string, bool) {
	keyword, ok := s.ask("Enter a vacancy title or a keyword to search for\n")
	for ok && keyword == "" {
		keyword, ok = s.ask("The keyword must not be empty, please try again:\n")
	}
	return keyword, ok
}

func (s *Shell) askPageCount() (int, bool) {
	answer, ok := s.ask("Enter the number of pages to search\n")
	for ok {
		pages, err := parsePageCount(answer)
		if err == nil {
			return pages, true
		}
		s.println(err.Error())
		answer, ok = s.ask("Enter the number of pages to search\n")
	}
	return 0, false
}

// parsePageCount разбирает количество страниц: целое число не меньше 1
func parsePageCount(answer string) (int, error) {
	pages, err := strconv.Atoi(answer)
	if err != nil {
		return 0, &InputError{Input: answer, Err: errors.New("page count must be an integer")}
	}
	if config.ValidateVar("pages", pages, "gte=1") != nil {
		return 0, &InputError{Input: answer, Err: errors.New("page count must be at least 1")}
	}
	return pages, nil
}

// ask печатает вопрос и читает строку ответа без пробелов по краям
func (s *Shell) ask(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}
