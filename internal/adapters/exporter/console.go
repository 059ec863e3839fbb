package exporter

import (
	"fmt"
	"io"
	"os"

	"mentions-report/internal/domain"
	"mentions-report/internal/ports"
)

// ConsoleExporter реализует интерфейс Exporter для предпросмотра строк в консоли.
type ConsoleExporter struct {
	out io.Writer
}

// NewConsoleExporter создает новый экземпляр ConsoleExporter, пишущий в stdout.
func NewConsoleExporter() ports.Exporter {
	return &ConsoleExporter{out: os.Stdout}
}

// Export выводит пронумерованные строки отчета.
func (e *ConsoleExporter) Export(lines []domain.FormattedLine) error {
	out := e.out
	if out == nil {
		out = os.Stdout
	}

	if _, err := fmt.Fprintln(out, "--- Звіт ---"); err != nil {
		return err
	}
	if len(lines) == 0 {
		_, err := fmt.Fprintln(out, "Немає записів.")
		return err
	}
	for i, line := range lines {
		if _, err := fmt.Fprintf(out, "%d. %s\n", i+1, line.Text); err != nil {
			return err
		}
	}
	return nil
}
