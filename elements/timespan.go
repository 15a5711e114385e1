package elements

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

// ErrInvalidTimespan is returned when a text is not a timespan.
var ErrInvalidTimespan = errors.New("invalid timespan")

// maxMillis is the largest millisecond count a time.Duration holds.
var maxMillis = decimal.NewFromInt(math.MaxInt64 / int64(time.Millisecond))

var timeUnits = map[string]time.Duration{
	"tick":   50 * time.Millisecond,
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
}

// ParseTimespan parses texts such as "3 seconds", "a minute", "1.5 hours" or
// "1 minute and 30 seconds".
func ParseTimespan(text string) (time.Duration, error) {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return 0, fmt.Errorf("%w: empty text", ErrInvalidTimespan)
	}

	var total time.Duration

	for _, part := range cmn.SplitValues(text) {
		d, err := parseTimespanPart(part)
		if err != nil {
			return 0, fmt.Errorf("%w: '%s'", err, text)
		}

		if d > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: '%s' is too long", ErrInvalidTimespan, text)
		}

		total += d
	}

	return total, nil
}

func parseTimespanPart(part string) (time.Duration, error) {
	fields := strings.Fields(part)
	if len(fields) != 2 {
		return 0, ErrInvalidTimespan
	}

	var amount decimal.Decimal

	switch fields[0] {
	case "a", "an", "one":
		amount = decimal.NewFromInt(1)
	default:
		parsed, err := decimal.NewFromString(fields[0])
		if err != nil || parsed.IsNegative() {
			return 0, ErrInvalidTimespan
		}

		amount = parsed
	}

	unit, ok := timeUnits[strings.TrimSuffix(fields[1], "s")]
	if !ok {
		return 0, ErrInvalidTimespan
	}

	millis := amount.Mul(decimal.NewFromInt(unit.Milliseconds())).Round(0)
	if millis.GreaterThan(maxMillis) {
		return 0, ErrInvalidTimespan
	}

	return time.Duration(millis.IntPart()) * time.Millisecond, nil
}
