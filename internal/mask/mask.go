// Package mask implements the keystroke masks for postal code and phone fields.
package mask

import "strings"

// Digits drops everything but ASCII digits.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// PostalCode formats a CEP as 00000-000.
func PostalCode(raw string) string {
	value := Digits(raw)
	if len(value) > 5 {
		value = value[:5] + "-" + cut(value, 5, 8)
	}
	return value
}

// Phone formats a Brazilian phone as (00) 00000-0000.
func Phone(raw string) string {
	value := Digits(raw)
	if value == "" {
		return ""
	}

	value = "(" + value
	if len(value) > 3 {
		value = value[:3] + ") " + value[3:]
	}
	if len(value) > 10 {
		value = value[:10] + "-" + cut(value, 10, 14)
	}
	return value
}

// ContactPhone formats a number shared as a Telegram contact, which carries the
// 55 country code in front of the area code.
func ContactPhone(raw string) string {
	digits := Digits(raw)
	if strings.HasPrefix(digits, "55") && (len(digits) == 12 || len(digits) == 13) {
		digits = digits[2:]
	}
	return Phone(digits)
}

func cut(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
