package cli

import (
	"context"
	"fmt"
)

// Run starts the two-level menu loop: an outer account menu while nobody is
// logged in, an inner session menu afterwards. It returns when the user picks
// Exit or the input stream ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the ask system, hope you enjoy.")
	fmt.Fprintln(a.out)

	for {
		for !a.isLoggedIn() {
			a.showFirstMenu()
			choice, err := GetSimpleText(a.reader, "", a.out)
			if err != nil {
				return
			}
			switch choice {
			case "1":
				a.logIn(ctx)
			case "2":
				a.signUp(ctx)
			case "3":
				fmt.Fprintln(a.out, "Good bye, see you soon.")
				return
			}
		}
		for a.isLoggedIn() {
			a.showSecondMenu()
			choice, err := GetSimpleText(a.reader, "", a.out)
			if err != nil {
				return
			}
			switch choice {
			case "1":
				a.printQuestionsToMe()
			case "2":
				a.printQuestionsFromMe()
			case "3":
				a.answerQuestion(ctx)
			case "4":
				a.deleteQuestion(ctx)
			case "5":
				a.askQuestion(ctx)
			case "6":
				a.listUsers()
			case "7":
				a.printFeed(ctx)
			case "8":
				a.logOut(ctx)
			}
		}
	}
}

func (a *App) showFirstMenu() {
	fmt.Fprint(a.out, "1- Log In.\n2- Sign Up.\n3- Exit.\n")
}

func (a *App) showSecondMenu() {
	fmt.Fprint(a.out,
		"1- Print questions to me.\n"+
			"2- Print questions from me.\n"+
			"3- Answer question.\n"+
			"4- Delete question.\n"+
			"5- Ask question.\n"+
			"6- List system users.\n"+
			"7- Feed.\n"+
			"8- Log out.\n")
}
