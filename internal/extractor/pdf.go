package extractor

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF extracts text from in-memory PDF documents.
type PDF struct{}

// ExtractText returns a document's text as a single newline-joined string
// concatenating every page's text in page order. Pages yielding no
// extractable text still contribute an empty segment; a per-page failure
// never aborts the whole extraction.
func (PDF) ExtractText(data []byte) (text string, err error) {
	// The pdf library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	reader, openErr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if openErr != nil {
		return "", fmt.Errorf("opening PDF: %w", openErr)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		pages = append(pages, pageText(reader, i))
	}

	text = strings.Join(pages, "\n")
	if strings.TrimSpace(text) == "" {
		// Whole-document extraction sometimes succeeds where the per-page
		// path yields nothing.
		if whole := readerPlainText(reader); whole != "" {
			return whole, nil
		}
	}
	return text, nil
}

// pageText extracts one page's text, preferring row-based extraction for
// its layout preservation and falling back to plain text with fonts.
func pageText(r *pdf.Reader, num int) string {
	page := r.Page(num)
	if page.V.IsNull() {
		return ""
	}

	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			return strings.Join(lines, "\n")
		}
	}

	fonts := make(map[string]*pdf.Font)
	for _, name := range page.Fonts() {
		f := page.Font(name)
		fonts[name] = &f
	}
	plain, err := page.GetPlainText(fonts)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(plain)
}

func readerPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
