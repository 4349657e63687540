// Package users implements the in-memory user directory: the owner of all
// registered users and of the monotonic user id counter.
package users

import (
	"github.com/dmitrijs2005/askfm/internal/common"
	"github.com/dmitrijs2005/askfm/internal/models"
	"github.com/dmitrijs2005/askfm/internal/validation"
)

// Directory owns the set of registered users. Ids start at 1 and are never
// reused; users are never deleted during a session. The zero value is not
// usable, construct with NewDirectory.
type Directory struct {
	users  []*models.User
	nextID int
}

func NewDirectory() *Directory {
	return &Directory{}
}

// AddUser appends a user with the next id and returns a stable reference to
// it. It performs no validation; callers are expected to run
// ValidateNewUsername and the validation rules first.
func (d *Directory) AddUser(username, password, email string) *models.User {
	d.nextID++
	u := &models.User{
		ID:       d.nextID,
		Username: username,
		Password: password,
		Email:    email,
	}
	d.users = append(d.users, u)
	return u
}

// FindByUsername returns the user with the given name (case-sensitive exact
// match) or ErrNotFound.
func (d *Directory) FindByUsername(name string) (*models.User, error) {
	for _, u := range d.users {
		if u.Username == name {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

// ValidateNewUsername checks a candidate username for sign-up. Existence is
// checked before format, so a well-formed duplicate reports ErrAlreadyExists
// while a malformed new name reports ErrInvalidFormat. The order is
// user-observable and must not change.
func (d *Directory) ValidateNewUsername(name string) error {
	if name == "" {
		return common.ErrEmptyField
	}
	if _, err := d.FindByUsername(name); err == nil {
		return common.ErrAlreadyExists
	}
	return validation.Username(name)
}

// VerifyCredentials checks a login attempt and returns the matching user.
// Passwords are compared in plain text, mirroring the original system.
func (d *Directory) VerifyCredentials(name, password string) (*models.User, error) {
	if name == "" {
		return nil, common.ErrEmptyField
	}
	u, err := d.FindByUsername(name)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, common.ErrEmptyField
	}
	if u.Password != password {
		return nil, common.ErrWrongPassword
	}
	return u, nil
}

// Users returns all registered users in insertion order. The slice is shared;
// callers must not modify it.
func (d *Directory) Users() []*models.User {
	return d.users
}
