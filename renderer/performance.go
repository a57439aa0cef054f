package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/etnz/etfperf"
)

// PerformanceTitle is the display title of a performance report, also
// used for the chart headings.
func PerformanceTitle(p etfperf.Period) string {
	if p == etfperf.Yearly {
		return "Annually Portfolio Performance"
	}
	return "Monthly Portfolio Performance"
}

// PerformanceMarkdown renders a performance report as a markdown table,
// one row per aggregation window plus the zero origin row.
func PerformanceMarkdown(report *etfperf.PerformanceReport, exclude []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(PerformanceTitle(report.Granularity))
	if len(exclude) > 0 {
		doc.PlainText(fmt.Sprintf("Excluding: %s", strings.Join(exclude, ", ")))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "USD value", "% value"},
	}
	for _, row := range report.Rows {
		table.Rows = append(table.Rows, []string{
			row.Date.String(),
			row.USD.SignedString(),
			row.Pct.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// RiskMarkdown renders the risk statistic as a short markdown snippet.
func RiskMarkdown(stddev float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Risk Measures")
	doc.PlainText(fmt.Sprintf("Standard deviation of daily returns: **%.4f%%**", stddev))
	return doc.String()
}
