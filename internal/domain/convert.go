package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber coerces stored text to a float. Blank, non-numeric, NaN and
// infinite values are reported as missing.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatNumber renders v as stored text, rounded to places decimal places with
// trailing zeros dropped.
func FormatNumber(v float64, places int32) string {
	return decimal.NewFromFloat(v).Round(places).String()
}

// Round2 rounds v half away from zero to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
