// Package renderer turns the dense analytics tables into renderable
// artifacts: PNG line charts for the web API and markdown tables for
// the terminal reports.
package renderer

import (
	"bytes"
	"encoding/base64"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/etnz/etfperf"
)

const (
	chartWidth  = 1400
	chartHeight = 800
)

// TablePNG renders every column of a dense table as one line of a
// dated chart and returns the PNG bytes.
func TablePNG(t *etfperf.Table, title, xLabel, yLabel string) ([]byte, error) {
	var series []chart.Series
	for _, col := range t.Columns() {
		column, _ := t.Column(col)
		if ts, ok := line(column, col); ok {
			series = append(series, ts)
		}
	}
	return render(series, title, xLabel, yLabel)
}

// SeriesPNG renders a single dense series as a dated chart and returns
// the PNG bytes.
func SeriesPNG(s *etfperf.Series, name, title, xLabel, yLabel string) ([]byte, error) {
	var series []chart.Series
	if l, ok := line(s, name); ok {
		series = append(series, l)
	}
	return render(series, title, xLabel, yLabel)
}

// line collects the non-null points of a series. A line needs at least
// two points to be drawable.
func line(s *etfperf.Series, name string) (chart.TimeSeries, bool) {
	var xs []time.Time
	var ys []float64
	for d, cell := range s.Values() {
		if !cell.Valid {
			continue
		}
		value, _ := cell.Decimal.Float64()
		xs = append(xs, d.Time())
		ys = append(ys, value)
	}
	if len(xs) < 2 {
		return chart.TimeSeries{}, false
	}
	return chart.TimeSeries{Name: name, XValues: xs, YValues: ys}, true
}

func render(series []chart.Series, title, xLabel, yLabel string) ([]byte, error) {
	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: xLabel},
		YAxis:  chart.YAxis{Name: yLabel},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendThin(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PerformancePNG renders a performance report as a dated chart of one
// value per window end, in USD or in percent.
func PerformancePNG(report *etfperf.PerformanceReport, percentage bool) ([]byte, error) {
	yLabel := "USD value"
	if percentage {
		yLabel = "% value"
	}
	var xs []time.Time
	var ys []float64
	for _, row := range report.Rows {
		xs = append(xs, row.Date.Time())
		if percentage {
			ys = append(ys, float64(row.Pct))
		} else {
			value, _ := row.USD.Decimal().Float64()
			ys = append(ys, value)
		}
	}
	series := []chart.Series{chart.TimeSeries{Name: yLabel, XValues: xs, YValues: ys}}
	return render(series, PerformanceTitle(report.Granularity), "Date", yLabel)
}

// EncodeBase64 encodes an image for embedding in a JSON response.
func EncodeBase64(image []byte) string {
	return base64.StdEncoding.EncodeToString(image)
}
