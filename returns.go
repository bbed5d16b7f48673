package marketbot

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ReturnPeriod identifies one of the fixed lookback windows of the return
// calculator. All windows are counted in trading sessions except YTD, which
// is anchored on January 1 of the request's year.
type ReturnPeriod string

const (
	Daily   ReturnPeriod = "1D"
	Weekly  ReturnPeriod = "1W"
	Monthly ReturnPeriod = "1M"
	YTD     ReturnPeriod = "YTD"
	Yearly  ReturnPeriod = "1Y"
)

// ReturnPeriods lists all periods in report order.
var ReturnPeriods = []ReturnPeriod{Daily, Weekly, Monthly, YTD, Yearly}

// ErrNoData is returned when a price series is completely empty. Callers
// building a batch report must skip that symbol rather than abort the batch.
var ErrNoData = errors.New("no price data")

// ParseReturnPeriod parses a period label such as "1D" or "ytd".
func ParseReturnPeriod(label string) (ReturnPeriod, error) {
	label = strings.ToUpper(strings.TrimSpace(label))
	for _, p := range ReturnPeriods {
		if string(p) == label {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown return period %q", label)
}

// sessions back from the current price for the fixed windows. The reference
// for "1W" is the close 5 trading sessions back, hence index -6, and "1M"
// is 21 sessions back.
const (
	dailyIndex   = -2
	weeklyIndex  = -6
	monthlyIndex = -22
	yearlySpan   = 252 // sessions in roughly one trading year
)

// Return computes the percentage return of the series over the given period,
// evaluated at instant now (only YTD depends on it).
//
// Short histories never fail: 1D on a single point yields 0%, 1W and 1M fall
// back to the oldest available close, YTD falls back to the oldest close when
// the series does not reach back to January 1, and 1Y yields 0% when less
// than a full trading year is available. A zero reference price also yields
// 0% instead of dividing by zero.
//
// The only errors are ErrNoData on an empty series and an explicit error for
// an unknown period label, which indicates a caller bug.
func (s *PriceSeries) Return(period ReturnPeriod, now time.Time) (Percent, error) {
	if s.IsEmpty() {
		return 0, fmt.Errorf("%s: %w", s.Symbol, ErrNoData)
	}
	_, current := s.Current()

	var ref float64
	switch period {
	case Daily:
		if s.Len() < 2 {
			ref = current
		} else {
			_, ref = s.At(dailyIndex)
		}
	case Weekly:
		// At clamps to the oldest point when the series is shorter.
		_, ref = s.At(weeklyIndex)
	case Monthly:
		_, ref = s.At(monthlyIndex)
	case Yearly:
		if s.Len() < yearlySpan {
			ref = current
		} else {
			_, ref = s.Oldest()
		}
	case YTD:
		jan1 := NewDate(now.Year(), time.January, 1)
		if _, v, ok := s.Since(jan1); ok {
			ref = v
		} else {
			_, ref = s.Oldest()
		}
	default:
		return 0, fmt.Errorf("unknown return period %q", period)
	}

	return change(current, ref), nil
}

// change returns the percentage change from ref to current, with the
// zero-denominator guard.
func change(current, ref float64) Percent {
	if ref == 0 {
		return 0
	}
	return Percent((current - ref) / ref * 100)
}

// ReturnSet holds the current price of a symbol together with its return
// over every fixed period.
type ReturnSet struct {
	Symbol  string
	Date    Date    // date of the current close
	Current float64 // current close
	Change  float64 // absolute change since the previous session

	byPeriod map[ReturnPeriod]Percent
}

// Get returns the percentage return for a period.
func (r *ReturnSet) Get(period ReturnPeriod) Percent { return r.byPeriod[period] }

// Returns computes the full ReturnSet for the series, evaluated at now.
// It returns ErrNoData on an empty series.
func (s *PriceSeries) Returns(now time.Time) (*ReturnSet, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", s.Symbol, ErrNoData)
	}
	day, current := s.Current()
	set := &ReturnSet{
		Symbol:   s.Symbol,
		Date:     day,
		Current:  current,
		byPeriod: make(map[ReturnPeriod]Percent, len(ReturnPeriods)),
	}
	if s.Len() >= 2 {
		_, prev := s.At(dailyIndex)
		set.Change = current - prev
	}
	for _, p := range ReturnPeriods {
		pct, err := s.Return(p, now)
		if err != nil {
			return nil, err
		}
		set.byPeriod[p] = pct
	}
	return set, nil
}
