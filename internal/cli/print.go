package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/askfm/internal/models"
)

const divider = "----------------------------------------------------------------------"

func (a *App) printQuestionsToMe() {
	fmt.Fprintln(a.out, divider)
	for _, q := range a.facade.QuestionsTo(a.user) {
		a.printQuestion(q, "from", q.Sender.Username)
	}
	fmt.Fprintln(a.out, divider)
}

func (a *App) printQuestionsFromMe() {
	fmt.Fprintln(a.out, divider)
	for _, q := range a.facade.QuestionsFrom(a.user) {
		a.printQuestion(q, "to", q.Receiver.Username)
	}
	fmt.Fprintln(a.out, divider)
}

func (a *App) printQuestion(q *models.Question, direction, name string) {
	fmt.Fprintf(a.out, "\t=> Question(%d) %s (%s)\tQuestion: %s\n\t\t- Answer: %s\n",
		q.ID, direction, name, q.Text, q.Answer)
}

func (a *App) listUsers() {
	fmt.Fprintf(a.out, "\nUsers signed up in this system:\n%s\n", strings.Repeat("-", 35))
	for _, u := range a.facade.ListUsers() {
		fmt.Fprintf(a.out, "Username: %s\tId: %d\nEmail: %s\n%s\n",
			u.Username, u.ID, u.Email, strings.Repeat("-", 35))
	}
}

// printFeed renders every parent question with its threads nested under it,
// parents in ascending id order. A corrupted association map is the one
// condition the shell treats as fatal-looking: it reports and logs it instead
// of rendering a partial feed.
func (a *App) printFeed(ctx context.Context) {
	feed, err := a.facade.Feed()
	if err != nil {
		fmt.Fprintln(a.out, "Data is corrupted.")
		a.log.Error(ctx, "feed failed", "error", err)
		return
	}

	fmt.Fprintf(a.out, "%s\nFeed:\n\n", divider)
	for _, item := range feed {
		p := item.Parent
		fmt.Fprintf(a.out, "\t=> Question(%d) from (%s) to (%s)\tQuestion: %s\n\t\t- Answer: %s\n",
			p.ID, p.Sender.Username, p.Receiver.Username, p.Text, p.Answer)
		for _, t := range item.Threads {
			fmt.Fprintf(a.out, "\t\t=> Thread question(%d) from (%s) to (%s)\tQuestion: %s\n\t\t\t- Answer: %s\n",
				t.ID, t.Sender.Username, t.Receiver.Username, t.Text, t.Answer)
		}
		fmt.Fprintln(a.out)
	}
	fmt.Fprintln(a.out, divider)
}
