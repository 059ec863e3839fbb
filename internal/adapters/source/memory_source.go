package source

import (
	"bytes"
	"fmt"

	"mentions-report/internal/ports"
)

// MemorySource отдает таблицу, уже загруженную в память (например, вставленную из буфера обмена).
type MemorySource struct {
	data []byte
}

// NewMemorySource создает новый экземпляр MemorySource.
func NewMemorySource(data []byte) ports.DataSource {
	return &MemorySource{data: data}
}

// NewMemorySourceFromRows собирает CSV из заголовка и строк. Удобно для тестов.
func NewMemorySourceFromRows(header string, rows ...string) ports.DataSource {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteByte('\n')
	for _, row := range rows {
		buf.WriteString(row)
		buf.WriteByte('\n')
	}
	return &MemorySource{data: buf.Bytes()}
}

// Fetch возвращает копию данных из памяти.
func (s *MemorySource) Fetch() ([]byte, error) {
	if s.data == nil {
		return nil, fmt.Errorf("данные не установлены")
	}

	return bytes.Clone(s.data), nil
}
