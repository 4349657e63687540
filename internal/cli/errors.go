package cli

import (
	"errors"

	"github.com/dmitrijs2005/askfm/internal/common"
)

// describe maps the core's sentinel errors to the short messages the shell
// shows next to a prompt.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrEmptyField):
		return "Empty field"
	case errors.Is(err, common.ErrInvalidFormat):
		return "Invalid format"
	case errors.Is(err, common.ErrAlreadyExists):
		return "This username already exists"
	case errors.Is(err, common.ErrNotFound):
		return "Not found"
	case errors.Is(err, common.ErrWrongPassword):
		return "Incorrect password"
	case errors.Is(err, common.ErrNotOwner):
		return "Invalid id"
	case errors.Is(err, common.ErrSelfAddressed):
		return "Invalid username"
	case errors.Is(err, common.ErrEmptyAnswer):
		return "Empty answer"
	default:
		return err.Error()
	}
}
