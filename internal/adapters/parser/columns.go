package parser

import (
	"path/filepath"
	"strings"

	"mentions-report/internal/domain"
	"mentions-report/internal/ports"
)

const utf8BOM = "\ufeff"

// columnIndex хранит позиции распознанных колонок, -1 если колонки нет.
type columnIndex struct {
	date, url, platform, sourceName int
}

// newColumnIndex находит распознанные колонки по заголовку.
// Имена сравниваются точно; BOM в начале первой ячейки отбрасывается.
func newColumnIndex(header []string) columnIndex {
	idx := columnIndex{date: -1, url: -1, platform: -1, sourceName: -1}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		switch name {
		case domain.ColumnDate:
			if idx.date < 0 {
				idx.date = i
			}
		case domain.ColumnURL:
			if idx.url < 0 {
				idx.url = i
			}
		case domain.ColumnPlatform:
			if idx.platform < 0 {
				idx.platform = i
			}
		case domain.ColumnSourceName:
			if idx.sourceName < 0 {
				idx.sourceName = i
			}
		}
	}
	return idx
}

// record собирает запись из строки. Отсутствующие ячейки дают "".
func (c columnIndex) record(row []string) domain.Record {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}
	return domain.Record{
		Date:       cell(c.date),
		URL:        cell(c.url),
		Platform:   cell(c.platform),
		SourceName: cell(c.sourceName),
	}
}

// ForPath выбирает парсер по расширению файла: .xlsx читается как книга Excel,
// все остальное как CSV.
func ForPath(path string) ports.Parser {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return NewXLSXParser()
	}
	return NewCSVParser()
}
