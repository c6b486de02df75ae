package entity

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Money is a parsed price: the currency symbol that prefixed it and its amount.
type Money struct {
	Symbol string
	Amount float64
}

// ParsePrice reads "¥1,280" or "$120.00". It reports false when no amount remains
// after stripping the symbol.
func ParsePrice(value string) (Money, bool) {
	value = strings.TrimSpace(value)
	idx := strings.IndexFunc(value, func(r rune) bool {
		return unicode.IsDigit(r) || r == '-' || r == '.'
	})
	if idx < 0 {
		return Money{}, false
	}

	symbol := strings.TrimSpace(value[:idx])
	number := strings.ReplaceAll(value[idx:], ",", "")
	amount, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, false
	}

	return Money{Symbol: symbol, Amount: amount}, true
}

// PriceAmount is ParsePrice without the symbol.
func PriceAmount(value string) (float64, bool) {
	m, ok := ParsePrice(value)
	return m.Amount, ok
}

func (m Money) Add(other Money) Money {
	return Money{Symbol: m.Symbol, Amount: m.Amount + other.Amount}
}

// String drops a zero fractional part: ¥2660, $120.50.
func (m Money) String() string {
	if m.Amount == math.Trunc(m.Amount) {
		return m.Symbol + strconv.FormatInt(int64(m.Amount), 10)
	}
	return m.Symbol + strconv.FormatFloat(m.Amount, 'f', 2, 64)
}

func FormatPrice(symbol string, amount float64) string {
	return Money{Symbol: symbol, Amount: amount}.String()
}
