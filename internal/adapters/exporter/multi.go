package exporter

import (
	"mentions-report/internal/domain"
	"mentions-report/internal/ports"
)

// MultiExporter передает строки нескольким экспортерам по очереди.
// Первая ошибка прерывает экспорт.
type MultiExporter struct {
	exporters []ports.Exporter
}

// NewMultiExporter создает новый экземпляр MultiExporter.
func NewMultiExporter(exporters ...ports.Exporter) ports.Exporter {
	return &MultiExporter{exporters: exporters}
}

// Export вызывает Export у каждого экспортера.
func (m *MultiExporter) Export(lines []domain.FormattedLine) error {
	for _, e := range m.exporters {
		if err := e.Export(lines); err != nil {
			return err
		}
	}
	return nil
}
