package renderer

import (
	"fmt"
	"strings"

	"github.com/hyoukjoo/marketbot"
)

// Price formats a raw quote in its currency, with the currency's own
// grouping and fraction rules (so KRW prints without decimals).
func Price(value float64, currency string) string {
	return marketbot.M(value, currency).String()
}

// Signed formats a raw change with an explicit sign.
func Signed(value float64) string {
	return fmt.Sprintf("%+.2f", value)
}

// Comma formats an index level with thousands separators and two decimals,
// the way the bot always printed them.
func Comma(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}
	return sign + intPart + frac
}

// quoteLine is the "일: x% | 주: y% | 월: z%" style summary of a return set.
func quoteLine(set *marketbot.ReturnSet) (periods, yearly string) {
	periods = fmt.Sprintf("일: %s | 주: %s | 월: %s",
		set.Get(marketbot.Daily).SignedString(),
		set.Get(marketbot.Weekly).SignedString(),
		set.Get(marketbot.Monthly).SignedString())
	yearly = fmt.Sprintf("YTD: %s | 년: %s",
		set.Get(marketbot.YTD).SignedString(),
		set.Get(marketbot.Yearly).SignedString())
	return periods, yearly
}
