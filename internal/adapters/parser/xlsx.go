package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"mentions-report/internal/domain"
	"mentions-report/internal/ports"
)

// XLSXParser реализует интерфейс Parser для книг Excel.
// Читается только первый лист, первая строка которого - заголовок.
type XLSXParser struct{}

// NewXLSXParser создает новый экземпляр XLSXParser.
func NewXLSXParser() ports.Parser {
	return &XLSXParser{}
}

// Parse разбирает первый лист книги.
func (p *XLSXParser) Parse(data []byte) (records []domain.Record, err error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close xlsx: %w", cerr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("в книге нет листов")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []domain.Record{}, nil
	}

	cols := newColumnIndex(rows[0])
	records = make([]domain.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		records = append(records, cols.record(row))
	}
	return records, nil
}

// isBlankRow отсекает пустые строки листа, как encoding/csv пропускает пустые строки файла.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
