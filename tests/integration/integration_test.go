package integration

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentions-report/internal/adapters/exporter"
	"mentions-report/internal/adapters/parser"
	"mentions-report/internal/adapters/source"
	"mentions-report/internal/core/services"
	"mentions-report/internal/core/usecase"
	"mentions-report/internal/pkg/config"
)

// Этот интеграционный тест проходит весь путь CSV -> предложения -> .docx
// на настоящих адаптерах без моков.
func TestFullApplicationFlow(t *testing.T) {
	loc, err := time.LoadLocation(config.DefaultTimezone)
	require.NoError(t, err)

	src := source.NewMemorySourceFromRows("source_name,platform,url,date,extra",
		"Foo,TELEGRAM,http://x.test/a,2024-01-15T10:30:00+02:00,1",
		"Bar,FACEBOOK,https://fb.test/p?id=1&x=2,25.12.2024,2",
		",WEB,http://x.test/c,2024-12-25 14:30,3",
		"Baz,TWITTER,,2024-07-01T10:30:00Z,4",
	)
	outPath := filepath.Join(t.TempDir(), "output.docx")

	recorded := &recordingExporter{}
	uc := usecase.NewBuildReportUseCase(
		src,
		parser.NewCSVParser(),
		services.NewLineFormatter(loc, nil),
		exporter.NewMultiExporter(
			exporter.NewDocxExporter(outPath, exporter.DefaultDocumentStyle()),
			recorded,
		),
		nil,
	)

	summary, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Rows)
	assert.Equal(t, 3, summary.WithLinks)
	assert.Equal(t, 0, summary.DateParseFailures)

	want := []string{
		"15.01.2024 о 10:30 на Telegram-каналі \"Foo\" за посиланням http://x.test/a",
		"25.12.2024 на Facebook-сторінці \"Bar\" за посиланням https://fb.test/p?id=1&x=2",
		"25.12.2024 о 14:30 на Веб-сторінці за посиланням http://x.test/c",
		"01.07.2024 о 13:30 у соціальній мережі Х \"Baz\"",
	}
	require.Len(t, recorded.lines, 4)
	for i, line := range recorded.lines {
		assert.Equal(t, want[i], line.Text)
		assert.False(t, strings.Contains(line.Text, "  "), "двойной пробел в строке %d", i)
	}

	report := readReport(t, outPath)
	assert.Equal(t, []string{
		"15.01.2024 о 10:30 на Telegram-каналі \"Foo\" за посиланням ",
		"25.12.2024 на Facebook-сторінці \"Bar\" за посиланням ",
		"25.12.2024 о 14:30 на Веб-сторінці за посиланням ",
		"01.07.2024 о 13:30 у соціальній мережі Х \"Baz\"",
	}, report.texts)
	assert.Equal(t, []string{"http://x.test/a", "https://fb.test/p?id=1&x=2", "http://x.test/c"}, report.links)
}
