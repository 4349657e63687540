package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/askfm/internal/common"
)

// deleteQuestion shows the user's own questions, asks which one to delete and
// deletes it. Deleting a parent takes its whole thread with it.
func (a *App) deleteQuestion(ctx context.Context) {
	a.printQuestionsFromMe()

	idText, ok := a.promptLoop("Enter the id of the question you want to delete:", func(s string) error {
		if _, err := strconv.Atoi(s); err != nil {
			return common.ErrInvalidFormat
		}
		return nil
	})
	if !ok {
		return
	}
	id, _ := strconv.Atoi(idText)

	if err := a.facade.DeleteQuestion(a.user, id); err != nil {
		fmt.Fprintf(a.out, "Could not delete: %s.\n", describe(err))
		a.log.Error(ctx, "delete failed", "id", id, "error", err)
		return
	}
	fmt.Fprintln(a.out, "Question is deleted successfully.")
}
