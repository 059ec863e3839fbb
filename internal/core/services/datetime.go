package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/araddon/dateparse"

	"mentions-report/internal/domain"
)

const (
	dateLayout = "02.01.2006"
	timeLayout = "15:04"
)

// Числовые даты с точкой или дефисом (25.12.2024, 15-01-2024, 1.2.24) разборщик
// понимает только через "/", поэтому разделитель заменяется до разбора.
var numericDate = regexp.MustCompile(`^(\d{1,2})[.\-](\d{1,2})[.\-](\d{2}|\d{4})(\s.*)?$`)

var dayFirst = []dateparse.ParserOption{
	dateparse.PreferMonthFirst(false),
}

var monthFirst = []dateparse.ParserOption{
	dateparse.PreferMonthFirst(true),
}

// NormalizeDateTime разбирает произвольную строку даты и переводит ее в зону loc.
// Пустая строка дает nil без ошибки. Строка без явной зоны считается записанной в loc.
// Неоднозначные числовые даты читаются как "день/месяц"; если месяц выходит
// за 12, пробуется порядок "месяц/день".
//
// Признак HasTime определяется по исходной строке: наличие "T" или ":" означает,
// что указано время суток. Для локальных форматов с двоеточием без времени это
// срабатывает ложно, но поведение сохранено как есть.
func NormalizeDateTime(raw string, loc *time.Location) (*domain.Moment, error) {
	val := strings.TrimSpace(raw)
	if val == "" {
		return nil, nil
	}
	if loc == nil {
		return nil, fmt.Errorf("не задан часовой пояс")
	}

	t, err := parseFlexible(val, loc)
	if err != nil {
		return nil, fmt.Errorf("не удалось разобрать дату %q: %w", val, err)
	}

	return &domain.Moment{
		Time:    t.In(loc),
		HasTime: strings.ContainsAny(val, "T:"),
	}, nil
}

func parseFlexible(val string, loc *time.Location) (time.Time, error) {
	normalized := numericDate.ReplaceAllString(val, "$1/$2/$3$4")

	// RetryAmbiguousDateWithSwap повторяет разбор в time.Local, а не в loc,
	// поэтому второй порядок пробуем сами.
	t, err := dateparse.ParseIn(normalized, loc, dayFirst...)
	if err != nil {
		var retryErr error
		if t, retryErr = dateparse.ParseIn(normalized, loc, monthFirst...); retryErr != nil {
			return time.Time{}, err
		}
	}

	// Одно время суток ("12:30") разбирается без года.
	if t.Year() == 0 {
		return time.Time{}, errors.New("в строке нет даты")
	}
	return t, nil
}

// FormatDate возвращает дату в виде ДД.ММ.ГГГГ или "" для nil.
func FormatDate(m *domain.Moment) string {
	if m == nil {
		return ""
	}
	return m.Time.Format(dateLayout)
}

// FormatTime возвращает ЧЧ:ММ, только если в исходной строке было время.
func FormatTime(m *domain.Moment) string {
	if m == nil || !m.HasTime {
		return ""
	}
	return m.Time.Format(timeLayout)
}
