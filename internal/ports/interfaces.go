package ports

import (
	"mentions-report/internal/domain"
)

// DataSource определяет интерфейс для получения исходной таблицы.
type DataSource interface {
	// Fetch загружает данные из источника и возвращает их в виде байтового среза.
	Fetch() ([]byte, error)
}

// Parser определяет интерфейс для разбора таблицы в записи.
type Parser interface {
	// Parse преобразует сырые данные в записи в порядке следования строк.
	Parse(data []byte) ([]domain.Record, error)
}

// LineFormatter превращает записи в готовые предложения.
type LineFormatter interface {
	Format(index int, rec domain.Record) domain.FormattedLine
	FormatAll(records []domain.Record) ([]domain.FormattedLine, int)
}

// Exporter определяет интерфейс для вывода результата.
type Exporter interface {
	// Export принимает готовые строки и сохраняет их.
	Export(lines []domain.FormattedLine) error
}
