package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentions-report/internal/domain"
)

func TestConsoleExporter(t *testing.T) {
	t.Run("NewConsoleExporter создает корректный экземпляр", func(t *testing.T) {
		assert.NotNil(t, NewConsoleExporter())
	})

	t.Run("Export выводит пронумерованные строки", func(t *testing.T) {
		var buf bytes.Buffer
		exporter := &ConsoleExporter{out: &buf}

		err := exporter.Export([]domain.FormattedLine{
			{Text: "15.01.2024 на Веб-сторінці \"Foo\" за посиланням http://x.test/a", URL: "http://x.test/a"},
			{Text: "без ссылки"},
		})
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "--- Звіт ---")
		assert.Contains(t, output, "1. 15.01.2024 на Веб-сторінці \"Foo\" за посиланням http://x.test/a\n")
		assert.Contains(t, output, "2. без ссылки\n")
	})

	t.Run("Export выводит сообщение при отсутствии строк", func(t *testing.T) {
		var buf bytes.Buffer
		exporter := &ConsoleExporter{out: &buf}

		require.NoError(t, exporter.Export(nil))
		assert.Contains(t, buf.String(), "Немає записів.")
	})
}
