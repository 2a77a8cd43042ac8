package rebalance

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/xuri/excelize/v2"
)

// this file contains functions to read raw position records out of broker
// exports. The readers are thin adapters: they produce Position records and
// nothing else, the core model never touches a file on its own.

// Position is one raw record of a broker positions export.
type Position struct {
	Symbol      string
	Price       float64
	Quantity    int64
	Description string
}

// column headers as found in the broker's Positions export.
const (
	colSymbol      = "Equity Symbol"
	colPrice       = "Market Price"
	colQuantity    = "Quantity"
	colDescription = "Equity Description"
)

// FilterPositions keeps only the positions whose symbol starts with the
// given prefix, compared case-insensitively. An empty prefix keeps all.
// Brokers export every position; the caller narrows the list to the asset
// universe the policy knows about (e.g. "V" for Vanguard ETFs).
func FilterPositions(positions []Position, prefix string) []Position {
	if prefix == "" {
		return positions
	}
	prefix = strings.ToUpper(prefix)
	var kept []Position
	for _, pos := range positions {
		if strings.HasPrefix(strings.ToUpper(pos.Symbol), prefix) {
			kept = append(kept, pos)
		}
	}
	return kept
}

// NewPortfolioFromPositions builds a portfolio from raw position records,
// pricing every position in the given currency.
func NewPortfolioFromPositions(policy Policy, positions []Position, currency string) (*Portfolio, error) {
	assets := make([]Asset, 0, len(positions))
	for _, pos := range positions {
		a, err := NewAsset(policy, pos.Symbol, M(pos.Price, currency), pos.Quantity, pos.Description)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return NewPortfolio(policy, assets), nil
}

// ReadPositionsCSV reads position records from 'r' in CSV form. The first
// row must be a header carrying at least the "Equity Symbol", "Market
// Price" and "Quantity" columns; "Equity Description" is optional.
func ReadPositionsCSV(r io.Reader) ([]Position, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse positions CSV: %w", err)
	}
	return positionsFromRows(rows)
}

// ReadPositionsXLSX reads position records from the given sheet of an Excel
// workbook, with the same column layout as the CSV form.
func ReadPositionsXLSX(path, sheet string) ([]Position, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %q: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q of %q: %w", sheet, path, err)
	}
	return positionsFromRows(rows)
}

// positionsFromRows converts a header row plus data rows into records.
func positionsFromRows(rows [][]string) ([]Position, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("positions table is empty")
	}

	// index the header columns by name, case-insensitively.
	index := make(map[string]int)
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	cell := func(row []string, name string) string {
		i, ok := index[strings.ToLower(name)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	for _, required := range []string{colSymbol, colPrice, colQuantity} {
		if _, ok := index[strings.ToLower(required)]; !ok {
			return nil, fmt.Errorf("positions table is missing column %q", required)
		}
	}

	var positions []Position
	for n, row := range rows[1:] {
		symbol := cell(row, colSymbol)
		if symbol == "" {
			continue // blank padding rows are common in exports
		}
		price, err := strconv.ParseFloat(cell(row, colPrice), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: cannot parse market price %q: %w", n+2, cell(row, colPrice), err)
		}
		quantity, err := strconv.ParseFloat(cell(row, colQuantity), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: cannot parse quantity %q: %w", n+2, cell(row, colQuantity), err)
		}
		positions = append(positions, Position{
			Symbol:      symbol,
			Price:       price,
			Quantity:    int64(quantity),
			Description: cell(row, colDescription),
		})
	}
	return positions, nil
}

// ReadPositionsJSON reads position records from 'r' in the JSON export
// form: a top-level object carrying a "positions" array of objects with
// "symbol", "price", "quantity" and optional "description" properties.
func ReadPositionsJSON(r io.Reader) ([]Position, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse positions JSON: %w", err)
	}
	jval, err := jsonpath.Get("$.positions[*]", jobj)
	if err != nil {
		return nil, fmt.Errorf("no positions array in JSON export: %w", err)
	}
	// jsonpath is never clear about whether it returns a list of answers or
	// a single answer: normalize to a list.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	var positions []Position
	for n, item := range jlist {
		jpos, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("position %d: expected an object, got %T", n, item)
		}
		symbol, _ := jpos["symbol"].(string)
		if symbol == "" {
			return nil, fmt.Errorf("position %d: missing symbol", n)
		}
		price, ok := jpos["price"].(float64)
		if !ok {
			return nil, fmt.Errorf("position %d (%s): missing or non-numeric price", n, symbol)
		}
		quantity, ok := jpos["quantity"].(float64)
		if !ok {
			return nil, fmt.Errorf("position %d (%s): missing or non-numeric quantity", n, symbol)
		}
		description, _ := jpos["description"].(string)
		positions = append(positions, Position{
			Symbol:      symbol,
			Price:       price,
			Quantity:    int64(quantity),
			Description: description,
		})
	}
	return positions, nil
}
