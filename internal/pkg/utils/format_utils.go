package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatTokenAmount converts a smallest-unit quantity to a human-readable
// string with a fixed 4-decimal scale and thousands separators.
// Example: raw=1500000000, decimals=9 => "1.5000"
func FormatTokenAmount(raw uint64, decimals int) string {
	value := float64(raw) / math.Pow10(decimals)
	return groupThousands(strconv.FormatFloat(value, 'f', 4, 64))
}

// FormatUSD renders a USD value as a currency string with thousands
// separators and 2 decimals. Example: 1234.5 => "$1,234.50"
func FormatUSD(value float64) string {
	return "$" + groupThousands(strconv.FormatFloat(value, 'f', 2, 64))
}

// groupThousands inserts comma separators into the integer part of an
// already-formatted decimal string.
func groupThousands(s string) string {
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
