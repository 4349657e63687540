// Package models defines the record types shared by the user directory, the
// question store and the persistence codec.
package models

// User is a registered account. The username is unique and immutable once
// created; the password is stored and compared in plain text, mirroring the
// original system. Ids are assigned by the directory and never reused.
type User struct {
	ID       int
	Username string
	Password string
	Email    string
}
