package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/etnz/etfperf"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// sampleReport builds a small two-window monthly report.
func sampleReport(t *testing.T) *etfperf.PerformanceReport {
	t.Helper()
	h := etfperf.NewPriceHistory()
	l := etfperf.NewLedger()
	from, to := etfperf.MustParseDate("2024-01-01"), etfperf.MustParseDate("2024-02-29")
	r, err := etfperf.NewRange(from, to)
	if err != nil {
		t.Fatal(err)
	}
	for d := range r.Dates() {
		price := decimal.NewFromInt(100)
		if !d.Before(etfperf.MustParseDate("2024-02-15")) {
			price = decimal.NewFromInt(110)
		}
		if err := h.Record(d, "IWDA", price); err != nil {
			t.Fatal(err)
		}
	}
	l.Append(etfperf.Transaction{Date: from, Ticker: "IWDA", Quantity: 100, Side: etfperf.Buy})

	p, err := etfperf.NewPortfolio(h, l, decimal.NewFromInt(20_000))
	if err != nil {
		t.Fatal(err)
	}
	report, err := p.Performance(etfperf.Monthly, nil)
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func TestPerformanceMarkdown(t *testing.T) {
	got := PerformanceMarkdown(sampleReport(t), nil)

	for _, want := range []string{
		"Monthly Portfolio Performance",
		"Date", "USD value", "% value",
		"2024-01-01", "2024-01-31", "2024-02-29",
		// February gains 10 USD per unit on 100 units, 5% of the
		// 20,000 total worth at the window start.
		"+$1,000.00", "+5.00%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q:\n%s", want, got)
		}
	}
}

func TestPerformanceMarkdown_ExcludeNote(t *testing.T) {
	got := PerformanceMarkdown(sampleReport(t), []string{"EMIM", "VUSA"})
	if !strings.Contains(got, "Excluding: EMIM, VUSA") {
		t.Errorf("exclusion note missing:\n%s", got)
	}
}

func TestRiskMarkdown(t *testing.T) {
	got := RiskMarkdown(1.2345)
	if !strings.Contains(got, "Risk Measures") || !strings.Contains(got, "1.2345%") {
		t.Errorf("unexpected risk markdown:\n%s", got)
	}
}

func TestPerformancePNG(t *testing.T) {
	report := sampleReport(t)
	for _, percentage := range []bool{false, true} {
		img, err := PerformancePNG(report, percentage)
		if err != nil {
			t.Fatalf("PerformancePNG(percentage=%v): %v", percentage, err)
		}
		if !bytes.HasPrefix(img, pngMagic) {
			t.Errorf("PerformancePNG(percentage=%v) did not produce a PNG", percentage)
		}
	}
}

func TestSeriesPNG(t *testing.T) {
	h := etfperf.NewPriceHistory()
	r, err := etfperf.NewRange(etfperf.MustParseDate("2024-01-01"), etfperf.MustParseDate("2024-01-10"))
	if err != nil {
		t.Fatal(err)
	}
	for d := range r.Dates() {
		if err := h.Record(d, "IWDA", decimal.NewFromInt(100)); err != nil {
			t.Fatal(err)
		}
	}
	table := h.Table(r, nil)

	img, err := TablePNG(table, "ETF Prices", "Date", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(img, pngMagic) {
		t.Error("TablePNG did not produce a PNG")
	}

	if got := EncodeBase64(img); !strings.HasPrefix(got, "iVBOR") {
		t.Errorf("EncodeBase64 prefix = %q, want base64 PNG magic", got[:8])
	}
}
