package twr

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file is the input adapter: it turns the messy, externally-sourced NAV
// and cash-flow tables into typed records, guessing among the candidate
// field names the upstream report formats use. The engine core never sees a
// raw table.

// SchemaError reports an input table whose required field cannot be found
// under any of its accepted names. It is fatal to the whole computation.
type SchemaError struct {
	Table string // "nav" or "cashflow"
	Field string // the logical field that could not be located
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s table has no recognizable %s field", e.Table, e.Field)
}

// Accepted field names, tried in order.
var (
	navDateFields  = []string{"reportDate", "date"}
	navValueFields = []string{"total", "nav"}
	flowDateFields = []string{"reportDate", "dateTime", "date"}
	flowDescFields = []string{"description", "activityDescription"}
	flowTypeFields = []string{"type", "category"}
	rowsCandidates = []string{"$.data", "$.rows", "$.items"}
)

// DecodeNAVTable reads a raw NAV table and returns one record per row, in
// source order. The table may be a JSON array of row objects, a JSONL
// stream, or an object wrapping the rows (e.g. {"data": [...]}).
func DecodeNAVTable(r io.Reader) ([]NAVRecord, error) {
	rows, err := decodeRows(r)
	if err != nil {
		return nil, fmt.Errorf("could not read nav table: %w", err)
	}

	records := make([]NAVRecord, 0, len(rows))
	for _, row := range rows {
		on, ok := pickDate(row, navDateFields)
		if !ok {
			return nil, &SchemaError{Table: "nav", Field: "date"}
		}
		rec := NAVRecord{Date: on}
		raw, ok := pick(row, navValueFields)
		if !ok {
			return nil, &SchemaError{Table: "nav", Field: "value"}
		}
		if v, ok := coerceNumber(raw); ok {
			rec.Value = v
		} else {
			rec.Missing = true
		}
		records = append(records, rec)
	}
	return records, nil
}

// DecodeCashFlowTable reads a raw cash-flow table and returns one record per
// row, in source order.
func DecodeCashFlowTable(r io.Reader) ([]FlowRecord, error) {
	rows, err := decodeRows(r)
	if err != nil {
		return nil, fmt.Errorf("could not read cash flow table: %w", err)
	}

	records := make([]FlowRecord, 0, len(rows))
	for _, row := range rows {
		on, ok := pickDate(row, flowDateFields)
		if !ok {
			return nil, &SchemaError{Table: "cashflow", Field: "date"}
		}
		rec := FlowRecord{Date: on}
		raw, ok := pick(row, []string{"amount"})
		if !ok {
			return nil, &SchemaError{Table: "cashflow", Field: "amount"}
		}
		if v, ok := coerceNumber(raw); ok {
			rec.Amount = v
		} else {
			rec.Missing = true
		}
		if s, ok := pickString(row, flowTypeFields); ok {
			rec.Category = s
		}
		if s, ok := pickString(row, flowDescFields); ok {
			rec.Description = s
		}
		if s, ok := pickString(row, []string{"currency"}); ok {
			rec.Currency = s
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeRows reads the payload and locates the row objects in it.
func decodeRows(r io.Reader) ([]map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var rows []map[string]any
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	case '{':
		// Either a wrapped payload holding the rows array somewhere, or a
		// JSONL stream whose first row happens to be an object.
		if rows, err := decodeWrapped(trimmed); err == nil {
			return rows, nil
		}
		return decodeLines(trimmed)
	default:
		return nil, fmt.Errorf("unsupported table payload starting with %q", trimmed[0])
	}
}

// decodeWrapped locates the rows array inside a wrapping object.
func decodeWrapped(data []byte) ([]map[string]any, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	for _, path := range rowsCandidates {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		jlist, ok := jval.([]any)
		if !ok {
			continue
		}
		rows := make([]map[string]any, 0, len(jlist))
		for _, item := range jlist {
			if row, ok := item.(map[string]any); ok {
				rows = append(rows, row)
			}
		}
		return rows, nil
	}
	return nil, fmt.Errorf("no rows array found under any of %v", rowsCandidates)
}

// decodeLines reads the payload as a JSONL stream, one row object per line.
func decodeLines(data []byte) ([]map[string]any, error) {
	var rows []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var row map[string]any
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("could not parse row %q: %w", string(line), err)
		}
		rows = append(rows, row)
	}
	return rows, scanner.Err()
}

func pick(row map[string]any, fields []string) (any, bool) {
	for _, f := range fields {
		if v, ok := row[f]; ok {
			return v, true
		}
	}
	return nil, false
}

func pickString(row map[string]any, fields []string) (string, bool) {
	v, ok := pick(row, fields)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

func pickDate(row map[string]any, fields []string) (Date, bool) {
	s, ok := pickString(row, fields)
	if !ok {
		return Date{}, false
	}
	on, err := ParseDate(s)
	if err != nil {
		return Date{}, false
	}
	return on, true
}

// coerceNumber reads a numeric cell that may arrive as a JSON number or a
// string. Anything else is a missing value, not an error.
func coerceNumber(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}
