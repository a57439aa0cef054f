package etfperf

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Portfolio is the computation context for one analysis: the sparse
// price history, the transaction ledger, the initially invested cash,
// and the full analysis range. It is immutable once constructed; every
// analytics method recomputes from the sources, so independent requests
// can share nothing.
type Portfolio struct {
	prices   *PriceHistory
	ledger   *Ledger
	invested decimal.Decimal
	r        Range
}

// NewPortfolio constructs a computation context. The analysis range
// spans the price history: from its first to its last observation.
func NewPortfolio(prices *PriceHistory, ledger *Ledger, invested decimal.Decimal) (*Portfolio, error) {
	bounds, ok := prices.Bounds()
	if !ok {
		return nil, InvalidArgumentError{Reason: "price history is empty"}
	}
	if invested.IsNegative() {
		return nil, InvalidArgumentError{Reason: fmt.Sprintf("negative invested cash %s", invested)}
	}
	return &Portfolio{prices: prices, ledger: ledger, invested: invested, r: bounds}, nil
}

// Load reads the two source ledgers named by the configuration and
// constructs a fresh computation context.
func Load(cfg Config) (*Portfolio, error) {
	pf, err := os.Open(cfg.PricesFile)
	if err != nil {
		return nil, fmt.Errorf("could not open price ledger: %w", err)
	}
	defer pf.Close()
	prices, err := DecodePrices(pf)
	if err != nil {
		return nil, fmt.Errorf("could not decode price ledger %q: %w", cfg.PricesFile, err)
	}

	tf, err := os.Open(cfg.TransactionsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open transaction ledger: %w", err)
	}
	defer tf.Close()
	ledger, err := DecodeLedger(tf)
	if err != nil {
		return nil, fmt.Errorf("could not decode transaction ledger %q: %w", cfg.TransactionsFile, err)
	}

	return NewPortfolio(prices, ledger, decimal.NewFromFloat(cfg.Investment))
}

// Range returns the full analysis range.
func (p *Portfolio) Range() Range { return p.r }

// Instruments returns the sorted instrument universe: every ticker with
// at least one price observation.
func (p *Portfolio) Instruments() []string { return p.prices.Tickers() }

// Invested returns the initially invested cash.
func (p *Portfolio) Invested() Money { return USD(p.invested) }

// instruments returns the universe minus the excluded tickers.
func (p *Portfolio) instruments(exclude []string) []string {
	excluded := make(map[string]bool, len(exclude))
	for _, ticker := range exclude {
		excluded[ticker] = true
	}
	var kept []string
	for _, ticker := range p.prices.Tickers() {
		if !excluded[ticker] {
			kept = append(kept, ticker)
		}
	}
	return kept
}

// PriceTable builds the dense daily price table over the full range,
// without the excluded instruments.
func (p *Portfolio) PriceTable(exclude []string) *Table {
	return p.prices.Table(p.r, exclude)
}

// QuantityTable replays the ledger into the dense daily holdings table
// over the full range, without the excluded instruments.
func (p *Portfolio) QuantityTable(exclude []string) *Table {
	return p.ledger.QuantityTable(p.r, p.instruments(exclude))
}

// PositionsValue derives the total daily market value of all positions,
// without the excluded instruments.
func (p *Portfolio) PositionsValue(exclude []string) (*Series, error) {
	return PositionsValue(p.PriceTable(exclude), p.QuantityTable(exclude))
}

// PositionsValueByInstrument derives the per-instrument daily market
// value table, without the excluded instruments.
func (p *Portfolio) PositionsValueByInstrument(exclude []string) (*Table, error) {
	return PositionsValueByInstrument(p.PriceTable(exclude), p.QuantityTable(exclude))
}

// CashFlow replays the ledger into the daily cash-on-hand series,
// ignoring trades in the excluded instruments.
func (p *Portfolio) CashFlow(exclude []string) (*Series, error) {
	return p.ledger.CashFlow(p.PriceTable(exclude), p.r, p.invested, exclude)
}

// Performance computes the monthly or yearly performance report over
// the full range, without the excluded instruments.
func (p *Portfolio) Performance(granularity Period, exclude []string) (*PerformanceReport, error) {
	positionsValue, err := p.PositionsValue(exclude)
	if err != nil {
		return nil, err
	}
	cashFlow, err := p.CashFlow(exclude)
	if err != nil {
		return nil, err
	}
	return PortfolioPerformance(positionsValue, cashFlow, p.r, granularity)
}

// RiskStdDev computes the standard deviation of daily portfolio
// returns, without the excluded instruments.
func (p *Portfolio) RiskStdDev(exclude []string) (float64, error) {
	positionsValue, err := p.PositionsValue(exclude)
	if err != nil {
		return 0, err
	}
	cashFlow, err := p.CashFlow(exclude)
	if err != nil {
		return 0, err
	}
	return StdDevOfDailyReturns(positionsValue, cashFlow)
}
