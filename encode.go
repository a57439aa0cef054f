package etfperf

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The two source ledgers are plain CSV files.
//
// Prices: a "Date" column followed by one column per ticker. A row may
// leave a ticker's cell empty when there is no observation that day.
//
//	Date,IWDA,EMIM
//	2023-01-02,75.43,28.91
//	2023-01-03,75.89,
//
// Transactions: one buy or sell per row, in ascending date order.
//
//	date,ticker,qty,order
//	2023-01-02,IWDA,100,BUY

// DecodePrices reads the sparse price ledger from CSV.
func DecodePrices(r io.Reader) (*PriceHistory, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read price header: %w", err)
	}
	if len(header) < 2 || strings.TrimSpace(header[0]) != "Date" {
		return nil, fmt.Errorf("malformed price header %q: want a Date column followed by tickers", strings.Join(header, ","))
	}
	tickers := make([]string, len(header)-1)
	for i, ticker := range header[1:] {
		tickers[i] = strings.TrimSpace(ticker)
	}

	history := NewPriceHistory()
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read price row: %w", err)
		}
		on, err := ParseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("price row %d: %w", line, err)
		}
		for i, cell := range record[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue // no observation for this ticker that day
			}
			price, err := decimal.NewFromString(cell)
			if err != nil {
				return nil, fmt.Errorf("price row %d: invalid price %q for %s: %w", line, cell, tickers[i], err)
			}
			if err := history.Record(on, tickers[i], price); err != nil {
				return nil, fmt.Errorf("price row %d: %w", line, err)
			}
		}
	}
	return history, nil
}

// DecodeLedger reads the transaction ledger from CSV.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = 4

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read transaction header: %w", err)
	}
	want := []string{"date", "ticker", "qty", "order"}
	for i, col := range header {
		if strings.TrimSpace(col) != want[i] {
			return nil, fmt.Errorf("malformed transaction header %q: want %q", strings.Join(header, ","), strings.Join(want, ","))
		}
	}

	ledger := NewLedger()
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read transaction row: %w", err)
		}
		on, err := ParseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("transaction row %d: %w", line, err)
		}
		qty, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("transaction row %d: invalid quantity %q: %w", line, record[2], err)
		}
		side, err := ParseSide(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, fmt.Errorf("transaction row %d: %w", line, err)
		}
		tx := Transaction{Date: on, Ticker: strings.TrimSpace(record[1]), Quantity: qty, Side: side}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction row %d: %w", line, err)
		}
		ledger.Append(tx)
	}
	return ledger, nil
}
