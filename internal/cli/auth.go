package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/askfm/internal/common"
	"github.com/dmitrijs2005/askfm/internal/validation"
)

// logIn prompts for a username until one exists, then for its password until
// it matches. Either prompt can be cancelled with e/E.
func (a *App) logIn(ctx context.Context) {
	username, ok := a.promptLoop("Enter your username:", func(s string) error {
		_, err := a.facade.FindUser(s)
		return err
	})
	if !ok {
		return
	}

	for {
		password, ok := a.promptPassword(nil)
		if !ok {
			return
		}
		user, err := a.facade.LogIn(username, password)
		if err != nil {
			if errors.Is(err, common.ErrWrongPassword) || errors.Is(err, common.ErrEmptyField) {
				fmt.Fprintf(a.out, "%s, try again or enter e/E to cancel.\n", describe(err))
				continue
			}
			a.log.Error(ctx, "login failed", "error", err)
			return
		}
		a.user = user
		a.log.Info(ctx, "user logged in", "username", user.Username)
		return
	}
}

// signUp walks through the three fields, re-prompting each until it
// validates, then registers the account. The username check preserves the
// existence-before-format order users see.
func (a *App) signUp(ctx context.Context) {
	username, ok := a.promptLoop("Enter a username:", a.facade.ValidateNewUsername)
	if !ok {
		return
	}
	password, ok := a.promptPassword(validation.Password)
	if !ok {
		return
	}
	email, ok := a.promptLoop("Enter your email:", validation.Email)
	if !ok {
		return
	}

	if _, err := a.facade.SignUp(username, password, email); err != nil {
		fmt.Fprintf(a.out, "Sign up failed: %s.\n", describe(err))
		a.log.Error(ctx, "sign up failed", "error", err)
		return
	}
	fmt.Fprintln(a.out, "Signed up successfully, you can log in now.")
}

func (a *App) logOut(ctx context.Context) {
	a.facade.LogOut()
	a.log.Info(ctx, "user logged out", "username", a.user.Username)
	a.user = nil
}
