package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mentions-report/internal/adapters/source"
	"mentions-report/internal/pkg/term"
)

// Сообщения для пользователя.
const (
	msgInputMissing = "❌ Файл %s не знайдено."
	msgInputHint    = "🔷 Покладіть %s у ту саму папку, що і виконуваний файл."
	msgDone         = "✅ Готово! Файл збережено як %s"
	msgFailed       = "⚠️ Помилка: %v"
	msgPressEnter   = "Натисніть Enter для виходу..."
)

func main() {
	t := term.NewTerminal()

	baseDir, err := executableDir()
	if err != nil {
		t.Println(fmt.Sprintf(msgFailed, err))
		_ = t.WaitForEnter(msgPressEnter)
		os.Exit(1)
	}

	os.Exit(run(baseDir, t))
}

// run выполняет один прогон и возвращает код выхода.
// Отсутствие входного файла - штатная ситуация с кодом 0.
func run(baseDir string, t *term.Terminal) int {
	res, err := buildReport(baseDir)

	var missing *missingInputError
	switch {
	case errors.As(err, &missing):
		t.Println(fmt.Sprintf(msgInputMissing, missing.name))
		t.Println(fmt.Sprintf(msgInputHint, missing.name))
		_ = t.WaitForEnter(msgPressEnter)
		return 0
	case err != nil:
		t.Println(fmt.Sprintf(msgFailed, err))
		_ = t.WaitForEnter(msgPressEnter)
		return 1
	}

	t.Println(fmt.Sprintf(msgDone, filepath.Base(res.outputPath)))
	return 0
}

// executableDir возвращает каталог, в котором лежит программа.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("не вдалося визначити розташування програми: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// missingInputError - входного файла нет рядом с программой.
type missingInputError struct {
	name string
}

func (e *missingInputError) Error() string {
	return fmt.Sprintf("%s: %s", source.ErrInputNotFound, e.name)
}

func (e *missingInputError) Unwrap() error {
	return source.ErrInputNotFound
}
