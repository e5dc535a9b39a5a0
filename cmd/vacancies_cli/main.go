package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"vacancies_parser/configs"
	"vacancies_parser/internal/cli"
	"vacancies_parser/internal/parser"
	"vacancies_parser/internal/storage"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	// Получаем конфигурацию
	conf, err := configs.LoadConfig(os.Getenv("ENV_FILE"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if conf.Parsers.SuperJob.APIKey == "" {
		logger.Printf("%s is not set, SuperJob requests will be rejected", configs.EnvSuperJobAPIKey)
	}

	//создаём фабрику парсеров и хранилище
	factory := parser.NewDefaultFactory(conf.Parsers, logger)
	store := storage.NewJSONStore(conf.Storage.Dir)

	shell := cli.NewShell(os.Stdin, os.Stdout, factory, store, logger)
	// Ctrl+C во время поиска обрабатывает сама оболочка, в остальное время завершает процесс
	if err := shell.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
