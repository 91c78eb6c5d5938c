package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const tatweel = 'ـ'

// placeholderRunes are the blank-slot markers the plate editor renders for
// untouched positions. They must never survive into a submitted plate.
const placeholderRunes = "_*٭"

// stripMarks removes combining marks (Arabic diacritics included) and
// recomposes to NFC.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Clean normalizes a string for comparison: NFC, no diacritics, no tatweel,
// collapsed whitespace.
func Clean(s string) string {
	s, _, _ = transform.String(stripMarks, s)
	s = strings.Map(func(r rune) rune {
		if r == tatweel {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// IsArabicName reports whether s is a usable name component: non-empty and
// made of Arabic-script characters and spaces only. Digits and Latin letters
// are rejected, matching the per-field editor which refuses them at input
// time.
func IsArabicName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if !unicode.Is(unicode.Arabic, r) {
			return false
		}
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Digits converts Arabic-Indic and Extended Arabic-Indic digits to their
// ASCII equivalents, leaving every other rune untouched.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		}
		return r
	}, s)
}

// Phone normalizes a phone number to the fixed 10-digit "05"-prefixed local
// format. Separators are stripped and the international prefix is folded
// down. ok is false when the result does not fit the format.
func Phone(s string) (string, bool) {
	s = Digits(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
			// separator, dropped
		default:
			return "", false
		}
	}
	digits := b.String()
	switch {
	case strings.HasPrefix(digits, "009665"):
		digits = "05" + digits[6:]
	case strings.HasPrefix(digits, "9665"):
		digits = "05" + digits[4:]
	case strings.HasPrefix(digits, "005"):
		digits = digits[1:]
	}
	if len(digits) != 10 || !strings.HasPrefix(digits, "05") {
		return "", false
	}
	return digits, true
}

// Plate normalizes a plate number: separators removed, Latin letters
// uppercased, Eastern digits folded. ok is false when a placeholder character
// remains, the length is not 7 or 8, or a rune is not a letter or digit.
func Plate(s string) (string, bool) {
	s = Digits(Clean(s))
	s = strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", ""))
	if strings.ContainsAny(s, placeholderRunes) {
		return "", false
	}
	n := 0
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", false
		}
		n++
	}
	if n != 7 && n != 8 {
		return "", false
	}
	return s, true
}
