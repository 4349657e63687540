package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/askfm/internal/common"
)

// answerQuestion shows the incoming questions, asks which one to answer and
// records the answer.
func (a *App) answerQuestion(ctx context.Context) {
	a.printQuestionsToMe()

	idText, ok := a.promptLoop("Enter the id of the question you want to answer:", func(s string) error {
		if _, err := strconv.Atoi(s); err != nil {
			return common.ErrInvalidFormat
		}
		return nil
	})
	if !ok {
		return
	}
	id, _ := strconv.Atoi(idText)

	answer, ok := a.promptLoop("Fine, enter your answer:", nonEmpty)
	if !ok {
		return
	}

	if err := a.facade.AnswerQuestion(a.user, id, answer); err != nil {
		fmt.Fprintf(a.out, "Could not answer: %s.\n", describe(err))
		a.log.Error(ctx, "answer failed", "id", id, "error", err)
		return
	}
	fmt.Fprintln(a.out, "Answer is added.")
}
