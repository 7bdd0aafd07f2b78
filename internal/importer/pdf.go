package importer

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/budgetwise-dev/budgetwise/internal/categories"
	"github.com/budgetwise-dev/budgetwise/internal/model"
	"github.com/budgetwise-dev/budgetwise/internal/normalize"
	"github.com/budgetwise-dev/budgetwise/internal/pdftext"
)

// transactionLineRe captures a date token, a non-greedy description, and a
// trailing currency amount. PDF statements are mostly non-transaction text
// (headers, footers, running balances); lines that don't match are
// expected noise. This is the lowest-precision parser in the set.
var transactionLineRe = regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s+(.+?)\s+(-?\$?\d+(\.\d{2})?)`)

// ExtractFunc returns ordered per-page text for PDF bytes.
type ExtractFunc func(data []byte) ([]string, error)

// PDFParser scans text extracted from PDF statements line by line.
type PDFParser struct {
	dates   *normalize.DateParser
	logger  *log.Logger
	extract ExtractFunc
}

// NewPDFParser creates a PDFParser backed by the pdftext extractor.
func NewPDFParser(dates *normalize.DateParser, logger *log.Logger) *PDFParser {
	return &PDFParser{dates: dates, logger: logger, extract: pdftext.Extract}
}

// Format returns the parser name.
func (p *PDFParser) Format() string { return "pdf" }

// Parse extracts text from the PDF and matches transaction-shaped lines.
// A corrupt or unreadable PDF yields an empty result, never an error.
func (p *PDFParser) Parse(data []byte) ([]model.Transaction, error) {
	pages, err := p.extract(data)
	if err != nil {
		p.logger.Warn("PDF text extraction failed", "err", err)
		return nil, nil
	}

	var txns []model.Transaction
	for _, line := range strings.Split(strings.Join(pages, "\n"), "\n") {
		match := transactionLineRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		desc := strings.TrimSpace(match[2])
		if desc == "" {
			continue
		}

		amount, err := normalize.ParseAmount(match[3])
		if err != nil {
			continue
		}

		txns = append(txns, model.Transaction{
			Date:        p.dates.Parse(match[1]),
			Description: desc,
			Amount:      normalize.ApplySign(desc, amount),
			Category:    categories.Classify(desc),
		})
	}
	return txns, nil
}
