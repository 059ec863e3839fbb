package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mentions-report/internal/domain"
	"mentions-report/internal/ports"
)

// BuildReportUseCase инкапсулирует прогон: чтение таблицы, форматирование строк и запись документа.
type BuildReportUseCase struct {
	source    ports.DataSource
	parser    ports.Parser
	formatter ports.LineFormatter
	exporter  ports.Exporter
	logger    *slog.Logger
}

// NewBuildReportUseCase создает новый экземпляр BuildReportUseCase.
func NewBuildReportUseCase(
	source ports.DataSource,
	parser ports.Parser,
	formatter ports.LineFormatter,
	exporter ports.Exporter,
	logger *slog.Logger,
) *BuildReportUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildReportUseCase{
		source:    source,
		parser:    parser,
		formatter: formatter,
		exporter:  exporter,
		logger:    logger,
	}
}

// Run выполняет все этапы по очереди. Документ записывается только если чтение
// и форматирование прошли целиком.
func (uc *BuildReportUseCase) Run(ctx context.Context) (domain.Summary, error) {
	var summary domain.Summary

	data, err := uc.source.Fetch()
	if err != nil {
		return summary, fmt.Errorf("не вдалося прочитати вхідний файл: %w", err)
	}

	records, err := uc.parser.Parse(data)
	if err != nil {
		return summary, fmt.Errorf("не вдалося розібрати таблицю: %w", err)
	}
	uc.logger.Info("Прочитано записи", slog.Int("count", len(records)))

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	lines, failures := uc.formatter.FormatAll(records)
	summary.Rows = len(lines)
	summary.DateParseFailures = failures
	for _, line := range lines {
		if line.URL != "" {
			summary.WithLinks++
		}
	}
	if failures > 0 {
		uc.logger.Warn("Частину дат не вдалося розібрати", slog.Int("failures", failures))
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	if err := uc.exporter.Export(lines); err != nil {
		return summary, fmt.Errorf("не вдалося записати документ: %w", err)
	}

	uc.logger.Info("Звіт сформовано",
		slog.Int("rows", summary.Rows),
		slog.Int("with_links", summary.WithLinks),
		slog.Int("date_failures", summary.DateParseFailures),
	)
	return summary, nil
}
