package utils

import (
	"strconv"
	"strings"
	"unicode"
)

var feeReplacer = strings.NewReplacer("₹", "", ",", "")

// ParseFee reads a fee label the way dashboard totals do: drop the rupee sign and
// thousands separators, then take the leading digits. Anything else reads as 0.
//
//	ParseFee("₹25,000 - ₹50,000") == 25000
//	ParseFee("Under ₹10,000") == 0
func ParseFee(label string) int {
	s := strings.TrimSpace(feeReplacer.Replace(label))
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// FirstAmount returns the first numeric token of a fee label after dropping the
// rupee sign and separators. ok is false when the label holds no digits.
//
//	FirstAmount("Under ₹10,000") == 10000
//	FirstAmount("₹50,000 - ₹1,00,000") == 50000
func FirstAmount(label string) (int, bool) {
	s := feeReplacer.Replace(label)
	start := strings.IndexFunc(s, unicode.IsDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
