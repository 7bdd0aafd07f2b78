// Package pdftext extracts per-page plain text from PDF bytes. It exists
// so the import pipeline can treat PDF decoding as an external concern
// with a narrow, fallible boundary.
package pdftext

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Extract returns the text content of every page, in page order. The
// underlying library panics on some corrupt or encrypted files, so the
// panic is converted into an error here rather than crossing the boundary.
func Extract(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF extraction crashed: %v", r)
		}
	}()

	if len(data) == 0 {
		return nil, fmt.Errorf("empty PDF content")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
