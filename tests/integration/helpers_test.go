package integration

import (
	"strings"
	"testing"

	"github.com/gomutex/godocx"
	"github.com/stretchr/testify/require"

	"mentions-report/internal/domain"
)

// reportDocument - готовый .docx глазами godocx: при чтении гиперссылки
// из абзацев выпадают, поэтому их адреса берутся из связей документа.
type reportDocument struct {
	texts []string
	links []string
}

func readReport(t *testing.T, path string) reportDocument {
	t.Helper()
	doc, err := godocx.OpenDocument(path)
	require.NoError(t, err)

	var report reportDocument
	for _, child := range doc.Document.Body.Children {
		if child.Para == nil {
			continue
		}
		var b strings.Builder
		for _, pc := range child.Para.GetCT().Children {
			if pc.Run == nil {
				continue
			}
			for _, rc := range pc.Run.Children {
				if rc.Text != nil {
					b.WriteString(rc.Text.Text)
				}
			}
		}
		report.texts = append(report.texts, b.String())
	}
	for _, rel := range doc.Document.DocRels.Relationships {
		if rel.TargetMode == "External" {
			report.links = append(report.links, rel.Target)
		}
	}
	return report
}

// recordingExporter запоминает строки, ушедшие в экспорт.
type recordingExporter struct {
	lines []domain.FormattedLine
}

func (r *recordingExporter) Export(lines []domain.FormattedLine) error {
	r.lines = lines
	return nil
}
