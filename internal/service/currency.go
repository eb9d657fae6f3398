package service

import (
	"strconv"
	"strings"
)

// SanitizeCurrency keeps only digits, commas and dots, the way the price field
// filters keystrokes.
func SanitizeCurrency(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			return r
		}
		return -1
	}, s)
}

// ParseCurrency reads a Brazilian-formatted amount: dots group thousands and the
// comma is the decimal separator, so "1.234,56" is 1234.56. Empty or
// unparseable input is 0.
func ParseCurrency(s string) float64 {
	s = SanitizeCurrency(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatCurrency renders v with two decimals and a decimal comma, without
// thousands grouping.
func FormatCurrency(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}
