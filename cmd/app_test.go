package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/subcommands"
)

// writeLedgers materialises a pair of CSV ledgers in a temp dir and
// sets the global file flags to point at them.
func writeLedgers(t *testing.T, pricesCSV, transactionsCSV string) {
	t.Helper()
	dir := t.TempDir()
	prices := filepath.Join(dir, "px_etf.csv")
	transactions := filepath.Join(dir, "tx_etf.csv")
	if err := os.WriteFile(prices, []byte(pricesCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(transactions, []byte(transactionsCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := flag.Set("prices-file", prices); err != nil {
		t.Fatal(err)
	}
	if err := flag.Set("transactions-file", transactions); err != nil {
		t.Fatal(err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PricesFile != "px_etf.csv" || cfg.TransactionsFile != "tx_etf.csv" {
		t.Errorf("unexpected default files: %+v", cfg)
	}
	if cfg.Investment != 1_000_000 || cfg.Listen != ":8000" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseExclude(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "IWDA", want: []string{"IWDA"}},
		{in: "IWDA,EMIM", want: []string{"IWDA", "EMIM"}},
		{in: " IWDA , ,EMIM ", want: []string{"IWDA", "EMIM"}},
	}
	for _, tt := range tests {
		if got := parseExclude(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("parseExclude(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMonthlyCommand(t *testing.T) {
	writeLedgers(t,
		"Date,IWDA\n2024-01-01,100\n2024-01-31,110\n",
		"date,ticker,qty,order\n2024-01-01,IWDA,10,BUY\n")

	cmd := &monthlyCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}
}

func TestRiskCommandFailsOnTooShortHistory(t *testing.T) {
	// Two price days give a single daily return; the standard
	// deviation is undefined and the command must fail.
	writeLedgers(t,
		"Date,IWDA\n2024-01-01,100\n2024-01-02,110\n",
		"date,ticker,qty,order\n2024-01-01,IWDA,10,BUY\n")

	cmd := &riskCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
}
