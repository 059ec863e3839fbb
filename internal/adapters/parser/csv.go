package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"mentions-report/internal/domain"
	"mentions-report/internal/ports"
)

// CSVParser реализует интерфейс Parser для таблиц с разделителем-запятой и строкой заголовка.
type CSVParser struct{}

// NewCSVParser создает новый экземпляр CSVParser.
func NewCSVParser() ports.Parser {
	return &CSVParser{}
}

// Parse читает заголовок и все строки данных.
// Строка с неверным числом колонок или битые кавычки прерывают разбор целиком.
func (p *CSVParser) Parse(data []byte) ([]domain.Record, error) {
	r := csv.NewReader(bytes.NewReader(data))

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		// Пустой файл - это пустой отчет, а не ошибка.
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	cols := newColumnIndex(header)

	records := []domain.Record{}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		records = append(records, cols.record(row))
	}
	return records, nil
}
