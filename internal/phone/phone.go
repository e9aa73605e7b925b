// Package phone canonicalizes Brazilian phone numbers for matching and
// dispatch. Upstream phone fields are free-form (punctuation, optional
// country code, optional mobile 9-prefix), so every comparison in the
// system goes through this package first.
package phone

import "strings"

const (
	countryCode = "55"

	// Valid national lengths: area code (2) + landline (8) or mobile (9).
	landlineLen = 10
	mobileLen   = 11

	// SuffixLen is the number of trailing digits used for correlation.
	// Eight digits tolerate formatting noise without matching unrelated
	// numbers.
	SuffixLen = 8
)

// Digits strips everything but decimal digits from raw.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize returns the canonical national form of raw: digits only, no
// country code, with the mobile 9-prefix inserted when the local part is
// a mobile number. Inputs representing the same national number in any
// supported format normalize identically. Unrecognized shapes come back
// digit-stripped but otherwise untouched.
func Normalize(raw string) string {
	digits := Digits(raw)

	if strings.HasPrefix(digits, countryCode) {
		rest := digits[len(countryCode):]
		if len(rest) == landlineLen || len(rest) == mobileLen {
			digits = rest
		}
	}

	// A 10-digit number whose local part starts with 6-9 is a mobile
	// missing the 9-prefix.
	if len(digits) == landlineLen && digits[2] >= '6' && digits[2] <= '9' {
		digits = digits[:2] + "9" + digits[2:]
	}

	return digits
}

// ForDispatch returns the number the broker expects: country code plus
// the canonical national form.
func ForDispatch(raw string) string {
	normalized := Normalize(raw)
	if normalized == "" {
		return ""
	}
	return countryCode + normalized
}

// Suffix returns the trailing SuffixLen digits of raw, the correlation
// key for matching inbound senders to patient records. Numbers shorter
// than SuffixLen return all their digits.
func Suffix(raw string) string {
	digits := Digits(raw)
	if len(digits) <= SuffixLen {
		return digits
	}
	return digits[len(digits)-SuffixLen:]
}
