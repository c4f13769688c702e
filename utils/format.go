package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders a value with exactly two decimals and en-IN digit
// grouping (12,34,567.89). Zero and missing values render as "0.00".
func FormatCurrency(value float64) string {
	if value == 0 {
		return "0.00"
	}

	sign := ""
	if value < 0 {
		sign = "-"
	}

	s := strconv.FormatFloat(math.Abs(value), 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	return sign + groupIndian(parts[0]) + "." + parts[1]
}

// Indian grouping: last block of 3 digits, then blocks of 2
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	groups := []string{digits[len(digits)-3:]}
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		groups = append(groups, rest[len(rest)-2:])
		rest = rest[:len(rest)-2]
	}
	groups = append(groups, rest)

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(",")
		}
	}
	return b.String()
}

// FormatPhoneNumber puts a single space after the 5th digit of a 10-digit
// number. Anything else comes back unmodified.
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}

	var cleaned strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			cleaned.WriteRune(r)
		}
	}

	digits := cleaned.String()
	if len(digits) == 10 {
		return digits[:5] + " " + digits[5:]
	}
	return phone
}

func Capitalize(str string) string {
	if str == "" {
		return ""
	}
	words := strings.Fields(strings.ToLower(str))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
