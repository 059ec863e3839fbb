package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"mentions-report/internal/adapters/exporter"
	"mentions-report/internal/adapters/parser"
	"mentions-report/internal/adapters/source"
	"mentions-report/internal/core/services"
	"mentions-report/internal/core/usecase"
	"mentions-report/internal/domain"
	"mentions-report/internal/log"
	"mentions-report/internal/pkg/config"
	"mentions-report/internal/ports"
)

type result struct {
	inputPath  string
	outputPath string
	summary    domain.Summary
}

// buildReport загружает конфигурацию из baseDir, собирает зависимости и выполняет прогон.
func buildReport(baseDir string) (result, error) {
	var res result

	// 1. Загрузка и валидация конфигурации
	cfg, err := config.LoadConfig(baseDir)
	if err != nil {
		return res, err
	}
	if err := cfg.Validate(); err != nil {
		return res, fmt.Errorf("некоректна конфігурація: %w", err)
	}

	// 2. Инициализация логгера. Логи идут в stderr, сообщения пользователю - в stdout.
	logger := log.NewLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	// 3. Поиск входного файла
	res.inputPath, err = findInput(baseDir, cfg)
	if err != nil {
		return res, err
	}
	res.outputPath = config.ResolvePath(baseDir, cfg.Paths.Output)

	loc, err := cfg.Location()
	if err != nil {
		return res, err
	}

	// 4. Инициализация зависимостей
	var out ports.Exporter = exporter.NewDocxExporter(res.outputPath, documentStyle(cfg))
	if cfg.Output.Preview {
		out = exporter.NewMultiExporter(exporter.NewConsoleExporter(), out)
	}
	uc := usecase.NewBuildReportUseCase(
		source.NewFileSource(res.inputPath),
		parser.ForPath(res.inputPath),
		services.NewLineFormatter(loc, logger.With(slog.String("component", "formatter"))),
		out,
		logger,
	)

	logger.Info("Формування звіту", slog.String("input", res.inputPath), slog.String("output", res.outputPath))

	// 5. Прогон
	res.summary, err = uc.Run(context.Background())
	if errors.Is(err, source.ErrInputNotFound) {
		return res, &missingInputError{name: filepath.Base(cfg.Paths.Input)}
	}
	return res, err
}

// findInput возвращает путь к CSV, а если его нет - к книге Excel.
func findInput(baseDir string, cfg *config.Config) (string, error) {
	csvPath := config.ResolvePath(baseDir, cfg.Paths.Input)
	if source.Exists(csvPath) {
		return csvPath, nil
	}
	if cfg.Paths.InputXLSX != "" {
		xlsxPath := config.ResolvePath(baseDir, cfg.Paths.InputXLSX)
		if source.Exists(xlsxPath) {
			return xlsxPath, nil
		}
	}
	return "", &missingInputError{name: filepath.Base(cfg.Paths.Input)}
}

func documentStyle(cfg *config.Config) exporter.DocumentStyle {
	style := exporter.DefaultDocumentStyle()
	style.LinkColor = cfg.Document.LinkColor
	style.LinkUnderline = cfg.Underline()
	if cfg.Document.FontName != "" {
		style.FontName = cfg.Document.FontName
	}
	if cfg.Document.FontSizePt > 0 {
		style.FontSizePt = cfg.Document.FontSizePt
	}
	return style
}
