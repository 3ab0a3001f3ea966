package form

import (
	"errors"
	"strconv"
	"strings"
)

// LeadingFloat parses the longest numeric prefix of a raw field value, the
// way browsers read numbers typed into free-text inputs: "12.5kg" is 12.5,
// "kg" is not a number.
func LeadingFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	end := scanSign(s, 0)
	mantissa := end
	end = scanDigits(s, end)
	digits := end - mantissa
	if end < len(s) && s[end] == '.' {
		frac := scanDigits(s, end+1)
		digits += frac - end - 1
		end = frac
	}
	if digits == 0 {
		return 0, false
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := scanSign(s, end+1)
		if expEnd := scanDigits(s, exp); expEnd > exp {
			end = expEnd
		}
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// LeadingInt parses the longest integer prefix of a raw field value: "45min"
// is 45, "min" is not a number.  Values out of range are clamped to the
// largest or smallest int.
func LeadingInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	start := scanSign(s, 0)
	end := scanDigits(s, start)
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

func scanSign(s string, i int) int {
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		return i + 1
	}
	return i
}

func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
