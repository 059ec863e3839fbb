package services

import (
	"fmt"
	"strings"
)

// ComposeSentence собирает предложение отчета из уже отформатированных частей.
// Пустая строка означает отсутствующую часть.
func ComposeSentence(date, clock, label, sourceName, url string) string {
	switch {
	case date != "" && clock != "" && label != "" && sourceName != "" && url != "":
		return fmt.Sprintf("%s о %s %s \"%s\" за посиланням %s", date, clock, label, sourceName, url)
	case date != "" && label != "" && sourceName != "" && url != "":
		return fmt.Sprintf("%s %s \"%s\" за посиланням %s", date, label, sourceName, url)
	}

	parts := make([]string, 0, 5)
	if date != "" {
		parts = append(parts, date)
	}
	if clock != "" {
		parts = append(parts, "о "+clock)
	}
	if label != "" {
		parts = append(parts, label)
	}
	if sourceName != "" {
		parts = append(parts, "\""+sourceName+"\"")
	}
	if url != "" {
		parts = append(parts, "за посиланням "+url)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
