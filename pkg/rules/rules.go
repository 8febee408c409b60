// Package rules holds the validation predicates of the registration form.
// Every rule is a pure function of the value it checks; callers pass explicit
// snapshots rather than live control state.
package rules

import (
	"regexp"
	"strings"
)

// Pattern sources, exported for contract generators that need to describe the
// same constraints. The email pattern is deliberately narrow: a dotted local
// part, a single domain label and a literal .com suffix.
const (
	EmailPattern      = `^[A-Za-z0-9.-]+@[A-Za-z0-9-]+\.com$`
	CardNumberPattern = `^(?:[0-9]{13}|[0-9]{16})$`
	ZipPattern        = `^[0-9]{5}$`
	CVVPattern        = `^[0-9]{3}$`
)

var (
	emailPattern = regexp.MustCompile(EmailPattern)
	cardPattern  = regexp.MustCompile(CardNumberPattern)
	zipPattern   = regexp.MustCompile(ZipPattern)
	cvvPattern   = regexp.MustCompile(CVVPattern)
)

// Name accepts any value that is not blank.
func Name(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Email reports whether value has the local@domain.com shape.
func Email(value string) bool {
	return emailPattern.MatchString(value)
}

// Activities holds when at least one activity is checked.
func Activities(checked int) bool {
	return checked >= 1
}

// ExpiryOption holds when a real option, not the placeholder at index 0, is
// selected.
func ExpiryOption(selectedIndex int) bool {
	return selectedIndex > 0
}

// CardNumber accepts exactly 13 or exactly 16 digits with no separators.
func CardNumber(value string) bool {
	return cardPattern.MatchString(value)
}

// Zip accepts exactly five digits.
func Zip(value string) bool {
	return zipPattern.MatchString(value)
}

// CVV accepts exactly three digits.
func CVV(value string) bool {
	return cvvPattern.MatchString(value)
}

// EmailOutcome distinguishes why an email value failed.
type EmailOutcome int

const (
	EmailValid EmailOutcome = iota
	EmailEmpty
	EmailMalformed
)

// ClassifyEmail reports whether value is valid, empty, or present but
// malformed.
func ClassifyEmail(value string) EmailOutcome {
	switch {
	case value == "":
		return EmailEmpty
	case Email(value):
		return EmailValid
	default:
		return EmailMalformed
	}
}
