package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"mentions-report/internal/ports"
)

// ErrInputNotFound возвращается, когда входного файла нет на диске.
var ErrInputNotFound = errors.New("входной файл не найден")

// FileSource реализует интерфейс DataSource для чтения таблицы с диска.
type FileSource struct {
	filePath string
}

// NewFileSource создает новый экземпляр FileSource.
func NewFileSource(filePath string) ports.DataSource {
	return &FileSource{filePath: filePath}
}

// Fetch читает файл по указанному пути и возвращает его содержимое.
func (s *FileSource) Fetch() ([]byte, error) {
	if s.filePath == "" {
		return nil, fmt.Errorf("не указан путь к файлу")
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, s.filePath)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", s.filePath, err)
	}

	return data, nil
}

// Exists сообщает, существует ли обычный файл по пути.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
