package entity

import (
	"time"

	"golang.org/x/text/language"
)

func isValidTimezone(tz string) bool {
	_, err := time.LoadLocation(tz)
	return err == nil
}

// isValidLanguage accepts a lowercase 2-letter ISO-639-1 code, a 3-letter
// ISO-639-3 code, or a 4-11 character locale tag (spec §4.3), delegating
// the actual tag grammar to golang.org/x/text/language rather than hand-
// rolling a BCP-47 parser.
func isValidLanguage(code string) bool {
	n := len(code)
	if n != 2 && n != 3 && (n < 4 || n > 11) {
		return false
	}
	_, err := language.Parse(code)
	return err == nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
