package importer

import (
	"bytes"
	"encoding/csv"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/budgetwise-dev/budgetwise/internal/categories"
	"github.com/budgetwise-dev/budgetwise/internal/model"
	"github.com/budgetwise-dev/budgetwise/internal/normalize"
)

// Column detection is heuristic. Banks disagree on export layouts, so
// after the header check the parser falls back to scanning fields for
// date- and amount-shaped tokens, and finally to fixed positions. This is
// best effort: an unusual layout can misassign fields.
var (
	dateShapedRe   = regexp.MustCompile(`^(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2})$`)
	amountShapedRe = regexp.MustCompile(`^[-$]?\d+(\.\d{2})?$`)
	numericLikeRe  = regexp.MustCompile(`^[\d.,$-]+$`)
)

// CSVParser parses comma-delimited bank exports with one header row.
type CSVParser struct {
	dates  *normalize.DateParser
	logger *log.Logger
}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse converts CSV statement text into normalized transactions.
// Unparseable lines are skipped with a warning, never fatal.
func (p *CSVParser) Parse(data []byte) ([]model.Transaction, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil || len(records) <= 1 {
		if err != nil {
			p.logger.Warn("unreadable CSV content", "err", err)
		}
		return nil, nil
	}

	header := strings.ToLower(strings.Join(records[0], ","))
	dateFirst := strings.Contains(header, "date") &&
		strings.Contains(strings.ToLower(records[0][0]), "date")
	hasCategory := strings.Contains(header, "category")

	var txns []model.Transaction
	for _, rec := range records[1:] {
		fields := make([]string, 0, len(rec))
		for _, f := range rec {
			fields = append(fields, strings.TrimSpace(f))
		}
		if len(fields) < 3 || strings.Join(fields, "") == "" {
			continue
		}

		txn, ok := p.parseRow(fields, dateFirst, hasCategory)
		if !ok {
			p.logger.Warn("skipping unparseable CSV line", "line", strings.Join(fields, ","))
			continue
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (p *CSVParser) parseRow(fields []string, dateFirst, hasCategory bool) (model.Transaction, bool) {
	var rawDate, desc, rawAmount, rawCategory string

	switch {
	case dateFirst:
		rawDate, desc, rawAmount = fields[0], fields[1], fields[2]
		if len(fields) > 3 {
			rawCategory = fields[3]
		}
	default:
		dateIdx := -1
		for i, f := range fields {
			if dateShapedRe.MatchString(f) {
				dateIdx = i
				break
			}
		}
		if dateIdx >= 0 {
			rawDate = fields[dateIdx]
			for _, f := range fields {
				if len(f) > 3 && !numericLikeRe.MatchString(f) && f != rawDate {
					desc = f
					break
				}
			}
			for _, f := range fields {
				if amountShapedRe.MatchString(f) {
					rawAmount = f
					break
				}
			}
		} else {
			// Fixed-position fallback: description, amount, date.
			desc, rawAmount, rawDate = fields[0], fields[1], fields[2]
		}
	}

	desc = strings.TrimSpace(desc)
	if desc == "" {
		return model.Transaction{}, false
	}

	amount, err := normalize.ParseAmount(rawAmount)
	if err != nil {
		return model.Transaction{}, false
	}

	cat := categories.Classify(desc)
	if hasCategory && rawCategory != "" {
		if c, ok := model.ParseCategory(rawCategory); ok {
			cat = c
		}
	}

	return model.Transaction{
		Date:        p.dates.Parse(rawDate),
		Description: desc,
		Amount:      normalize.ApplySign(desc, amount),
		Category:    cat,
	}, true
}
