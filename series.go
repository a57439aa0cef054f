package etfperf

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// FillPolicy controls how gaps are filled when a sparse mapping is
// spread over a dense daily calendar.
type FillPolicy int

const (
	// FillNone leaves every unobserved day null.
	FillNone FillPolicy = iota
	// FillForward carries the last observed value forward. Days before
	// the first observation in range remain null.
	FillForward
	// FillZero is FillForward with days before the first observation
	// set to zero instead of null.
	FillZero
)

// Reindex spreads a sparse date→value mapping over the dense daily
// calendar of r, applying the fill policy to unobserved days.
// Observations outside r are ignored.
func Reindex(sparse map[Date]decimal.Decimal, r Range, policy FillPolicy) []decimal.NullDecimal {
	values := make([]decimal.NullDecimal, r.Days())
	last := decimal.NullDecimal{}
	if policy == FillZero {
		last = decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
	}
	for i, d := 0, r.From; !d.After(r.To); i, d = i+1, d.Add(1) {
		if v, ok := sparse[d]; ok {
			last = decimal.NullDecimal{Decimal: v, Valid: true}
		} else if policy == FillNone {
			continue
		}
		values[i] = last
	}
	return values
}

// Series is a dense daily series of values over a date range. Cells may
// be null, typically for days preceding the first observation.
type Series struct {
	r      Range
	values []decimal.NullDecimal
}

// NewSeries builds a dense series from a sparse date→value mapping.
func NewSeries(r Range, sparse map[Date]decimal.Decimal, policy FillPolicy) *Series {
	return &Series{r: r, values: Reindex(sparse, r, policy)}
}

// Range returns the date range covered by the series.
func (s *Series) Range() Range { return s.r }

// Len returns the number of days in the series.
func (s *Series) Len() int { return len(s.values) }

// At returns the value on the given date. The boolean is false when the
// date is outside the range or the cell is null.
func (s *Series) At(d Date) (decimal.Decimal, bool) {
	if !s.r.Contains(d) {
		return decimal.Decimal{}, false
	}
	cell := s.values[s.r.index(d)]
	return cell.Decimal, cell.Valid
}

// Values iterates over every day of the series in chronological order.
func (s *Series) Values() iter.Seq2[Date, decimal.NullDecimal] {
	return func(yield func(Date, decimal.NullDecimal) bool) {
		for i, v := range s.values {
			if !yield(s.r.date(i), v) {
				return
			}
		}
	}
}

// Slice returns the portion of the series overlapping the given range.
func (s *Series) Slice(r Range) *Series {
	clamped, ok := s.r.Clamp(r)
	if !ok {
		return &Series{r: r, values: make([]decimal.NullDecimal, r.Days())}
	}
	from := s.r.index(clamped.From)
	return &Series{r: clamped, values: s.values[from : from+clamped.Days()]}
}

// Add returns the elementwise sum of two series sharing the same range.
// A cell is null when either operand is null.
func (s *Series) Add(o *Series) (*Series, error) {
	if s.r != o.r {
		return nil, AlignmentError{Detail: "ranges differ: " + s.r.String() + " vs " + o.r.String()}
	}
	values := make([]decimal.NullDecimal, len(s.values))
	for i := range s.values {
		a, b := s.values[i], o.values[i]
		if a.Valid && b.Valid {
			values[i] = decimal.NullDecimal{Decimal: a.Decimal.Add(b.Decimal), Valid: true}
		}
	}
	return &Series{r: s.r, values: values}, nil
}

// Table is a dense daily table of values per instrument over a date
// range: one row per calendar day, one column per ticker.
type Table struct {
	r     Range
	cols  []string // sorted
	cells map[string][]decimal.NullDecimal
}

// NewTable builds a dense table column by column from sparse
// date→value mappings, applying the same fill policy to each.
func NewTable(r Range, columns map[string]map[Date]decimal.Decimal, policy FillPolicy) *Table {
	t := &Table{r: r, cells: make(map[string][]decimal.NullDecimal, len(columns))}
	for col, sparse := range columns {
		t.cols = append(t.cols, col)
		t.cells[col] = Reindex(sparse, r, policy)
	}
	slices.Sort(t.cols)
	return t
}

// Range returns the date range covered by the table.
func (t *Table) Range() Range { return t.r }

// Columns returns the sorted column tickers.
func (t *Table) Columns() []string { return slices.Clone(t.cols) }

// At returns the value for a ticker on a date. The boolean is false
// when the date is out of range, the column is unknown, or the cell is
// null.
func (t *Table) At(d Date, col string) (decimal.Decimal, bool) {
	if !t.r.Contains(d) {
		return decimal.Decimal{}, false
	}
	cells, ok := t.cells[col]
	if !ok {
		return decimal.Decimal{}, false
	}
	cell := cells[t.r.index(d)]
	return cell.Decimal, cell.Valid
}

// Column returns the dense series of a single column. The boolean is
// false for an unknown ticker.
func (t *Table) Column(col string) (*Series, bool) {
	cells, ok := t.cells[col]
	if !ok {
		return nil, false
	}
	return &Series{r: t.r, values: cells}, true
}

// Slice returns the portion of the table overlapping the given range.
func (t *Table) Slice(r Range) *Table {
	clamped, ok := t.r.Clamp(r)
	if !ok {
		clamped = r
	}
	out := &Table{r: clamped, cols: slices.Clone(t.cols), cells: make(map[string][]decimal.NullDecimal, len(t.cols))}
	for col, cells := range t.cells {
		if ok {
			from := t.r.index(clamped.From)
			out.cells[col] = cells[from : from+clamped.Days()]
		} else {
			out.cells[col] = make([]decimal.NullDecimal, clamped.Days())
		}
	}
	return out
}

// aligned reports whether two tables cover the same range with the same
// columns.
func aligned(a, b *Table) error {
	if a.r != b.r {
		return AlignmentError{Detail: "ranges differ: " + a.r.String() + " vs " + b.r.String()}
	}
	if !slices.Equal(a.cols, b.cols) {
		return AlignmentError{Detail: "instrument columns differ"}
	}
	return nil
}
