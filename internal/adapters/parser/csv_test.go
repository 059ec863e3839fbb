package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentions-report/internal/domain"
)

func TestCSVParser(t *testing.T) {
	t.Run("Разбор корректного CSV", func(t *testing.T) {
		data := "date,url,platform,source_name\n" +
			"2024-01-15T10:30:00+02:00,http://x.test/a,TELEGRAM,Foo\n" +
			"25.12.2024,http://x.test/b,WEB,\"Bar, Baz\"\n"

		records, err := NewCSVParser().Parse([]byte(data))
		require.NoError(t, err)

		assert.Equal(t, []domain.Record{
			{Date: "2024-01-15T10:30:00+02:00", URL: "http://x.test/a", Platform: "TELEGRAM", SourceName: "Foo"},
			{Date: "25.12.2024", URL: "http://x.test/b", Platform: "WEB", SourceName: "Bar, Baz"},
		}, records)
	})

	t.Run("Лишние колонки игнорируются, отсутствующие дают пустую строку", func(t *testing.T) {
		data := "id,source_name,url,comment\n" +
			"1,Foo,http://x.test/a,ignored\n"

		records, err := NewCSVParser().Parse([]byte(data))
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, domain.Record{URL: "http://x.test/a", SourceName: "Foo"}, records[0])
	})

	t.Run("BOM в заголовке не мешает распознать колонку date", func(t *testing.T) {
		data := "\ufeffdate,url,platform,source_name\n2024-01-15,http://x.test/a,WEB,Foo\n"

		records, err := NewCSVParser().Parse([]byte(data))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "2024-01-15", records[0].Date)
	})

	t.Run("Только заголовок дает пустой список без ошибки", func(t *testing.T) {
		records, err := NewCSVParser().Parse([]byte("date,url,platform,source_name\n"))
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("Пустой файл дает пустой список без ошибки", func(t *testing.T) {
		records, err := NewCSVParser().Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Строка с неверным числом колонок - ошибка всего разбора", func(t *testing.T) {
		data := "date,url,platform,source_name\n" +
			"2024-01-15,http://x.test/a,WEB,Foo\n" +
			"2024-01-16,http://x.test/b\n"

		records, err := NewCSVParser().Parse([]byte(data))
		assert.Error(t, err)
		assert.Nil(t, records)
	})

	t.Run("Битые кавычки - ошибка", func(t *testing.T) {
		data := "date,url,platform,source_name\n2024-01-15,\"http://x.test/a,WEB,Foo\n"

		_, err := NewCSVParser().Parse([]byte(data))
		assert.Error(t, err)
	})

	t.Run("Кириллица сохраняется как есть", func(t *testing.T) {
		data := "date,url,platform,source_name\n15.01.2024,https://t.me/s/kanal,TELEGRAM,Новини Києва\n"

		records, err := NewCSVParser().Parse([]byte(data))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Новини Києва", records[0].SourceName)
	})
}

func TestForPath(t *testing.T) {
	assert.IsType(t, &XLSXParser{}, ForPath("input.xlsx"))
	assert.IsType(t, &XLSXParser{}, ForPath("/tmp/INPUT.XLSX"))
	assert.IsType(t, &CSVParser{}, ForPath("input.csv"))
	assert.IsType(t, &CSVParser{}, ForPath("input"))
}
