package domain

import "time"

// Колонки входной таблицы, которые мы распознаем. Остальные игнорируются.
const (
	ColumnDate       = "date"
	ColumnURL        = "url"
	ColumnPlatform   = "platform"
	ColumnSourceName = "source_name"
)

// Record представляет одну строку входной таблицы.
// Отсутствующие колонки дают пустую строку.
type Record struct {
	Date       string `json:"date"`
	URL        string `json:"url"`
	Platform   string `json:"platform"`
	SourceName string `json:"source_name"`
}

// Moment - нормализованная дата/время публикации.
// HasTime сообщает, было ли в исходной строке время суток.
type Moment struct {
	Time    time.Time
	HasTime bool
}

// FormattedLine - готовое предложение и ссылка, которую нужно сделать кликабельной.
// Если URL не пустой, он встречается в Text без изменений.
type FormattedLine struct {
	Text string
	URL  string
}

// Summary описывает результат одного запуска.
type Summary struct {
	Rows              int
	WithLinks         int
	DateParseFailures int
}
