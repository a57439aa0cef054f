package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/etnz/etfperf"
	"github.com/etnz/etfperf/renderer"
)

// queryDateFormat is the DD-MM-YYYY format the API accepts for the
// display range parameters.
const queryDateFormat = "02-01-2006"

// request carries the per-request parameters: the display range the
// charts are cut to, and the instruments excluded from every table.
type request struct {
	portfolio *etfperf.Portfolio
	display   etfperf.Range
	exclude   []string
}

// parse reloads the portfolio from the source ledgers and reads the
// query parameters. The display range defaults to the full analysis
// range.
func (s *Server) parse(c *fiber.Ctx) (*request, error) {
	p, err := etfperf.Load(s.cfg)
	if err != nil {
		return nil, err
	}

	display := p.Range()
	if raw := c.Query("display_data_from"); raw != "" {
		on, err := time.Parse(queryDateFormat, raw)
		if err != nil {
			return nil, etfperf.InvalidArgumentError{Reason: fmt.Sprintf("invalid display_data_from %q, want DD-MM-YYYY", raw)}
		}
		display.From = etfperf.NewDate(on.Date())
	}
	if raw := c.Query("display_data_to"); raw != "" {
		on, err := time.Parse(queryDateFormat, raw)
		if err != nil {
			return nil, etfperf.InvalidArgumentError{Reason: fmt.Sprintf("invalid display_data_to %q, want DD-MM-YYYY", raw)}
		}
		display.To = etfperf.NewDate(on.Date())
	}
	if display.From.After(display.To) {
		return nil, etfperf.InvalidArgumentError{Reason: fmt.Sprintf("display range %s is after %s", display.From, display.To)}
	}

	var exclude []string
	if raw := c.Query("exclude_etfs", "[]"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &exclude); err != nil {
			return nil, etfperf.InvalidArgumentError{Reason: fmt.Sprintf("invalid exclude_etfs %q, want a JSON array of tickers", raw)}
		}
	}

	return &request{portfolio: p, display: display, exclude: exclude}, nil
}

func (s *Server) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Good luck! Have a nice day :)"})
}

func (s *Server) png(c *fiber.Ctx, image []byte) error {
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(image)
}

func (s *Server) handlePrices(c *fiber.Ctx) error {
	req, err := s.parse(c)
	if err != nil {
		return s.fail(c, err)
	}
	prices := req.portfolio.PriceTable(req.exclude).Slice(req.display)
	image, err := renderer.TablePNG(prices, "ETF Prices Over Time", "Date", "USD value")
	if err != nil {
		return s.fail(c, err)
	}
	return s.png(c, image)
}

func (s *Server) handlePositionsValuePerETF(c *fiber.Ctx) error {
	req, err := s.parse(c)
	if err != nil {
		return s.fail(c, err)
	}
	values, err := req.portfolio.PositionsValueByInstrument(req.exclude)
	if err != nil {
		return s.fail(c, err)
	}
	image, err := renderer.TablePNG(values.Slice(req.display), "Positions Value for an ETF Over Time", "Date", "USD value")
	if err != nil {
		return s.fail(c, err)
	}
	return s.png(c, image)
}

func (s *Server) handlePositionsValue(c *fiber.Ctx) error {
	req, err := s.parse(c)
	if err != nil {
		return s.fail(c, err)
	}
	values, err := req.portfolio.PositionsValue(req.exclude)
	if err != nil {
		return s.fail(c, err)
	}
	image, err := renderer.SeriesPNG(values.Slice(req.display), "value", "Positions Value Over Time", "Date", "USD value")
	if err != nil {
		return s.fail(c, err)
	}
	return s.png(c, image)
}

func (s *Server) handleCashFlow(c *fiber.Ctx) error {
	req, err := s.parse(c)
	if err != nil {
		return s.fail(c, err)
	}
	cash, err := req.portfolio.CashFlow(req.exclude)
	if err != nil {
		return s.fail(c, err)
	}
	image, err := renderer.SeriesPNG(cash.Slice(req.display), "value", "Cash on Hand Over Time", "Date", "USD value")
	if err != nil {
		return s.fail(c, err)
	}
	return s.png(c, image)
}

func (s *Server) handleCombined(c *fiber.Ctx) error {
	req, err := s.parse(c)
	if err != nil {
		return s.fail(c, err)
	}
	values, err := req.portfolio.PositionsValue(req.exclude)
	if err != nil {
		return s.fail(c, err)
	}
	cash, err := req.portfolio.CashFlow(req.exclude)
	if err != nil {
		return s.fail(c, err)
	}
	combined, err := values.Add(cash)
	if err != nil {
		return s.fail(c, err)
	}
	image, err := renderer.SeriesPNG(combined.Slice(req.display), "value", "Combined Cash Flow and Positions Value Over Time", "Date", "USD value")
	if err != nil {
		return s.fail(c, err)
	}
	return s.png(c, image)
}

// handlePerformance serves the monthly or annual performance: the full
// table as JSON plus the two diagrams, cut to the display range,
// base64-encoded.
func (s *Server) handlePerformance(granularity etfperf.Period) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := s.parse(c)
		if err != nil {
			return s.fail(c, err)
		}
		report, err := req.portfolio.Performance(granularity, req.exclude)
		if err != nil {
			return s.fail(c, err)
		}

		displayed := report.Slice(req.display)
		diagramUSD, err := renderer.PerformancePNG(displayed, false)
		if err != nil {
			return s.fail(c, err)
		}
		diagramPct, err := renderer.PerformancePNG(displayed, true)
		if err != nil {
			return s.fail(c, err)
		}

		value := make(map[string]fiber.Map, len(report.Rows))
		for _, row := range report.Rows {
			value[row.Date.String()] = fiber.Map{
				"USD value": row.USD,
				"% value":   float64(row.Pct),
			}
		}
		return c.JSON(fiber.Map{
			"value":             value,
			"diagramUSD":        renderer.EncodeBase64(diagramUSD),
			"diagramPercentage": renderer.EncodeBase64(diagramPct),
		})
	}
}

func (s *Server) handleRiskMeasures(c *fiber.Ctx) error {
	req, err := s.parse(c)
	if err != nil {
		return s.fail(c, err)
	}
	stddev, err := req.portfolio.RiskStdDev(req.exclude)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"standardDeviation": stddev,
		"description":       "Standard deviation of daily returns(%).",
	})
}
