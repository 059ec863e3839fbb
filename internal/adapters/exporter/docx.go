package exporter

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"

	"mentions-report/internal/domain"
	"mentions-report/internal/ports"
)

// DocumentStyle задает оформление документа.
type DocumentStyle struct {
	LinkColor     string // RRGGBB без решетки
	LinkUnderline bool
	FontName      string
	FontSizePt    int
	Language      string
}

// DefaultDocumentStyle - синие подчеркнутые ссылки, Calibri 11.
func DefaultDocumentStyle() DocumentStyle {
	return DocumentStyle{
		LinkColor:     "0000FF",
		LinkUnderline: true,
		FontName:      "Calibri",
		FontSizePt:    11,
		Language:      "uk-UA",
	}
}

// DocxExporter реализует интерфейс Exporter: каждая строка становится абзацем .docx,
// ссылка внутри строки - кликабельной.
type DocxExporter struct {
	path  string
	style DocumentStyle
}

// NewDocxExporter создает экспортер, записывающий документ в path.
func NewDocxExporter(path string, style DocumentStyle) ports.Exporter {
	return &DocxExporter{path: path, style: style}
}

// Export собирает документ в памяти и только потом перезаписывает файл.
func (e *DocxExporter) Export(lines []domain.FormattedLine) error {
	if e.path == "" {
		return fmt.Errorf("не указан путь к выходному файлу")
	}

	doc, err := buildDocument(lines, e.style)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return fmt.Errorf("failed to encode docx: %w", err)
	}

	if err := os.WriteFile(e.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.path, err)
	}
	return nil
}

// run - фрагмент абзаца. Непустой link делает его гиперссылкой.
type run struct {
	text string
	link string
}

// splitLine делит строку вокруг первого вхождения ссылки.
// Если ссылки в тексте нет, весь текст идет перед ней, а ссылка дописывается в конец.
func splitLine(line domain.FormattedLine) []run {
	if line.URL == "" {
		return []run{{text: line.Text}}
	}

	before, after, found := strings.Cut(line.Text, line.URL)
	if !found {
		before, after = line.Text, ""
	}

	runs := []run{
		{text: strings.TrimSpace(before) + " "},
		{text: line.URL, link: line.URL},
	}
	if tail := strings.TrimSpace(after); tail != "" {
		runs = append(runs, run{text: " " + tail})
	}
	return runs
}

func buildDocument(lines []domain.FormattedLine, style DocumentStyle) (*docx.RootDoc, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	applyDefaults(doc, style)
	if body := doc.Document.Body; body != nil && body.SectPr != nil {
		body.SectPr.PageSize = ctypes.A4
	}

	for _, line := range lines {
		p := doc.AddEmptyParagraph()
		for _, r := range splitLine(line) {
			if r.link == "" {
				p.AddText(r.text)
				continue
			}

			link := p.AddLink(r.text, r.link)
			if style.LinkColor != "" {
				link.Color(style.LinkColor)
			}
			// Шаблонный стиль Hyperlink сам подчеркивает ссылку, поэтому "нет" задается явно.
			if style.LinkUnderline {
				link.Underline(stypes.UnderlineSingle)
			} else {
				link.Underline(stypes.UnderlineNone)
			}
		}
	}
	return doc, nil
}

// applyDefaults переписывает шрифт, размер и язык по умолчанию в styles.xml.
func applyDefaults(doc *docx.RootDoc, style DocumentStyle) {
	if doc.DocStyles == nil {
		doc.DocStyles = &ctypes.Styles{}
	}
	if doc.DocStyles.DocDefaults == nil {
		doc.DocStyles.DocDefaults = &ctypes.DocDefault{}
	}
	defaults := doc.DocStyles.DocDefaults
	if defaults.RunProp == nil {
		defaults.RunProp = &ctypes.RunPropDefault{}
	}
	if defaults.RunProp.RunProp == nil {
		defaults.RunProp.RunProp = &ctypes.RunProperty{}
	}
	props := defaults.RunProp.RunProp

	if style.FontName != "" {
		// Явные имена вместо тем шаблона, иначе Word берет шрифт темы.
		props.Fonts = &ctypes.RunFonts{
			Ascii:    style.FontName,
			HAnsi:    style.FontName,
			EastAsia: style.FontName,
			CS:       style.FontName,
		}
	}
	if style.FontSizePt > 0 {
		// Размер задается в полупунктах.
		half := uint64(style.FontSizePt * 2)
		props.Size = ctypes.NewFontSize(half)
		props.SizeCs = ctypes.NewFontSizeCS(half)
	}
	if style.Language != "" {
		lang := style.Language
		props.Lang = &ctypes.Lang{Val: &lang}
	}
}
