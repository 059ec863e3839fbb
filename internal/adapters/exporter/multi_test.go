package exporter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"mentions-report/internal/domain"
)

type recordingExporter struct {
	calls int
	err   error
}

func (r *recordingExporter) Export(lines []domain.FormattedLine) error {
	r.calls++
	return r.err
}

func TestMultiExporter(t *testing.T) {
	t.Run("вызывает все экспортеры по очереди", func(t *testing.T) {
		a, b := &recordingExporter{}, &recordingExporter{}
		err := NewMultiExporter(a, b).Export([]domain.FormattedLine{{Text: "x"}})

		assert.NoError(t, err)
		assert.Equal(t, 1, a.calls)
		assert.Equal(t, 1, b.calls)
	})

	t.Run("первая ошибка прерывает экспорт", func(t *testing.T) {
		boom := errors.New("boom")
		a, b := &recordingExporter{err: boom}, &recordingExporter{}
		err := NewMultiExporter(a, b).Export(nil)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, b.calls)
	})
}
