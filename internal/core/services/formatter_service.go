package services

import (
	"log/slog"
	"strings"
	"time"

	"mentions-report/internal/domain"
	"mentions-report/internal/ports"
)

// LineFormatterImpl реализует интерфейс LineFormatter.
type LineFormatterImpl struct {
	loc    *time.Location
	logger *slog.Logger
}

// NewLineFormatter создает форматтер, показывающий даты в зоне loc.
func NewLineFormatter(loc *time.Location, logger *slog.Logger) ports.LineFormatter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LineFormatterImpl{loc: loc, logger: logger}
}

// Format превращает одну запись в предложение. index - номер строки данных, начиная с 1,
// используется только в логах.
func (f *LineFormatterImpl) Format(index int, rec domain.Record) domain.FormattedLine {
	line, _ := f.format(index, rec)
	return line
}

// FormatAll форматирует записи по порядку и возвращает число дат, которые не удалось разобрать.
// Ни одна запись не отбрасывается.
func (f *LineFormatterImpl) FormatAll(records []domain.Record) ([]domain.FormattedLine, int) {
	lines := make([]domain.FormattedLine, 0, len(records))
	failures := 0
	for i, rec := range records {
		line, ok := f.format(i+1, rec)
		if !ok {
			failures++
		}
		lines = append(lines, line)
	}
	return lines, failures
}

func (f *LineFormatterImpl) format(index int, rec domain.Record) (domain.FormattedLine, bool) {
	// Обрезаются только ссылка и код платформы, имя источника идет как есть.
	url := strings.TrimSpace(rec.URL)
	label := ResolvePlatform(rec.Platform)

	moment, err := NormalizeDateTime(rec.Date, f.loc)
	if err != nil {
		f.logger.Warn("Не удалось разобрать дату, строка будет неполной",
			slog.Int("row", index),
			slog.String("date", rec.Date),
			slog.String("error", err.Error()),
		)
	}

	text := ComposeSentence(FormatDate(moment), FormatTime(moment), label, rec.SourceName, url)
	f.logger.Debug("Строка сформирована", slog.Int("row", index), slog.String("text", text))

	return domain.FormattedLine{Text: text, URL: url}, err == nil
}
