package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/askfm/internal/common"
)

// askQuestion asks the user whether they want a new top-level question or a
// thread reply, then runs the matching flow.
func (a *App) askQuestion(ctx context.Context) {
	choice, err := GetSimpleText(a.reader,
		"New question or thread question to an old one?\nNew question    -> 1\nThread question -> 2", a.out)
	if err != nil {
		return
	}
	switch choice {
	case "1":
		a.askParent(ctx)
	case "2":
		a.askThread(ctx)
	default:
		fmt.Fprintln(a.out, "False input!")
	}
}

func (a *App) askParent(ctx context.Context) {
	receiver, ok := a.promptLoop("Enter the username you want to ask:", func(s string) error {
		u, err := a.facade.FindUser(s)
		if err != nil {
			return err
		}
		if u.ID == a.user.ID {
			return common.ErrSelfAddressed
		}
		return nil
	})
	if !ok {
		return
	}
	text, ok := a.promptLoop("Enter your question:", nonEmpty)
	if !ok {
		return
	}

	id, err := a.facade.AskParentQuestion(a.user, receiver, text)
	if err != nil {
		fmt.Fprintf(a.out, "Could not ask the question: %s.\n", describe(err))
		a.log.Error(ctx, "ask parent failed", "error", err)
		return
	}
	fmt.Fprintf(a.out, "Question (%d) is sent to (%s).\n", id, receiver)
}

func (a *App) askThread(ctx context.Context) {
	idText, ok := a.promptLoop("Enter the parent question's id:", func(s string) error {
		if _, err := strconv.Atoi(s); err != nil {
			return common.ErrInvalidFormat
		}
		return nil
	})
	if !ok {
		return
	}
	parentID, _ := strconv.Atoi(idText)

	text, ok := a.promptLoop("Enter your question:", nonEmpty)
	if !ok {
		return
	}

	id, err := a.facade.AskThreadQuestion(a.user, parentID, text)
	if err != nil {
		fmt.Fprintf(a.out, "Could not ask the question: %s.\n", describe(err))
		a.log.Error(ctx, "ask thread failed", "parent", parentID, "error", err)
		return
	}
	fmt.Fprintf(a.out, "Thread question (%d) is added under question (%d).\n", id, parentID)
}

func nonEmpty(s string) error {
	if s == "" {
		return common.ErrEmptyField
	}
	return nil
}
