// Package validation holds the pure field-format rules for usernames,
// passwords and emails. The rules perform no I/O; they return sentinel errors
// from the common package.
package validation

import (
	"strings"

	"github.com/dmitrijs2005/askfm/internal/common"
)

// emailDomains are the only accepted suffixes, compared case-sensitively with
// nothing allowed after the domain.
var emailDomains = []string{"@gmail.com", "@hotmail.com", "@outlook.com", "@yahoo.com"}

// Username reports whether name is a well-formed username: 5 to 25 characters,
// ASCII letters, digits and underscore only.
func Username(name string) error {
	if name == "" {
		return common.ErrEmptyField
	}
	if len(name) < 5 || len(name) > 25 {
		return common.ErrInvalidFormat
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' {
			continue
		}
		return common.ErrInvalidFormat
	}
	return nil
}

// Password reports whether p is a well-formed password: 8 to 30 characters,
// no character restriction.
func Password(p string) error {
	if p == "" {
		return common.ErrEmptyField
	}
	if len(p) < 8 || len(p) > 30 {
		return common.ErrInvalidFormat
	}
	return nil
}

// Email reports whether e is a well-formed address. The '@' must sit at index
// 6 through 30 and everything from the '@' on must equal one of the accepted
// domains exactly.
func Email(e string) error {
	if e == "" {
		return common.ErrEmptyField
	}
	pos := strings.IndexByte(e, '@')
	if pos < 6 || pos > 30 {
		return common.ErrInvalidFormat
	}
	suffix := e[pos:]
	for _, d := range emailDomains {
		if suffix == d {
			return nil
		}
	}
	return common.ErrInvalidFormat
}
