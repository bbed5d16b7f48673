package marketbot

import "fmt"

// Percent is a signed percentage. The engine never rounds it; rounding
// belongs to the presentation layer.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString always carries the sign, the way the bot prints returns.
func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", float64(p))
}

// Emoji returns the marker the bot prefixes to a quote line: red for a
// loss, blue otherwise.
func (p Percent) Emoji() string {
	if p < 0 {
		return "🔴"
	}
	return "🔵"
}
