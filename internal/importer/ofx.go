package importer

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/budgetwise-dev/budgetwise/internal/categories"
	"github.com/budgetwise-dev/budgetwise/internal/model"
	"github.com/budgetwise-dev/budgetwise/internal/normalize"
)

// OFXParser parses OFX-dialect statements. QFX is OFX-compatible, so the
// same parser is registered under both formats.
type OFXParser struct {
	format string // "ofx" or "qfx"
	dates  *normalize.DateParser
	logger *log.Logger
}

// Format returns the parser name.
func (p *OFXParser) Format() string { return p.format }

// ofxField tracks which STMTTRN child the next character data belongs to.
type ofxField int

const (
	fieldNone ofxField = iota
	fieldDate
	fieldName
	fieldAmount
)

// Parse walks the document token by token rather than unmarshaling a
// schema: OFX 1.x is SGML-flavored and leaf tags are often left unclosed,
// which RawToken tolerates. Malformed content yields an empty result, not
// an error.
func (p *OFXParser) Parse(data []byte) ([]model.Transaction, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var txns []model.Transaction
	var rawDate, name, rawAmount string
	inTxn := false
	next := fieldNone

	flush := func() {
		if !inTxn {
			return
		}
		if txn, ok := p.buildTransaction(rawDate, name, rawAmount); ok {
			txns = append(txns, txn)
		}
		rawDate, name, rawAmount = "", "", ""
		inTxn = false
	}

	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed XML discards the whole result set.
			p.logger.Warn("malformed OFX content", "err", err)
			return nil, nil
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "STMTTRN":
				flush()
				inTxn = true
			case "DTPOSTED":
				next = fieldDate
			case "NAME":
				next = fieldName
			case "TRNAMT":
				next = fieldAmount
			default:
				next = fieldNone
			}
		case xml.EndElement:
			if t.Name.Local == "STMTTRN" {
				flush()
			}
			next = fieldNone
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" || !inTxn {
				continue
			}
			switch next {
			case fieldDate:
				rawDate = text
			case fieldName:
				name = text
			case fieldAmount:
				rawAmount = text
			}
			next = fieldNone
		}
	}
	flush()

	return txns, nil
}

// buildTransaction normalizes one STMTTRN. TRNAMT carries a meaningful
// sign per OFX convention, but the income-keyword rule still wins.
func (p *OFXParser) buildTransaction(rawDate, name, rawAmount string) (model.Transaction, bool) {
	desc := strings.TrimSpace(name)
	if desc == "" {
		return model.Transaction{}, false
	}

	amount, err := normalize.ParseAmount(rawAmount)
	if err != nil {
		p.logger.Warn("skipping STMTTRN with unparseable amount",
			"description", desc, "amount", rawAmount)
		return model.Transaction{}, false
	}

	return model.Transaction{
		Date:        p.dates.Parse(rawDate),
		Description: desc,
		Amount:      normalize.ApplySign(desc, amount),
		Category:    categories.Classify(desc),
	}, true
}
