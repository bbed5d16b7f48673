package marketbot

import (
	"time"

	"github.com/hyoukjoo/marketbot/date"
)

// Date is re-exported so that callers do not need to import the date package
// for the common cases.
type Date = date.Date

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date { return date.New(year, month, day) }

// Today returns the current date.
func Today() Date { return date.Today() }

// ParseDate parses a Date from a string.
func ParseDate(str string) (Date, error) { return date.Parse(str) }
