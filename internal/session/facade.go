// Package session exposes the operations the interactive shell drives:
// sign-up, login, asking, answering, deleting and browsing. The facade is
// stateless; the currently logged-in user belongs to the caller and is passed
// into every operation, which keeps the package testable without any
// terminal I/O.
package session

import (
	"github.com/dmitrijs2005/askfm/internal/codec"
	"github.com/dmitrijs2005/askfm/internal/models"
	"github.com/dmitrijs2005/askfm/internal/questions"
	"github.com/dmitrijs2005/askfm/internal/users"
	"github.com/dmitrijs2005/askfm/internal/validation"
)

type Facade struct {
	dir   *users.Directory
	store *questions.Store
	codec *codec.FileCodec
}

func New(dir *users.Directory, store *questions.Store, c *codec.FileCodec) *Facade {
	return &Facade{dir: dir, store: store, codec: c}
}

// ValidateNewUsername checks a candidate username for sign-up without
// registering anything. Interactive flows use it to re-prompt field by field.
func (f *Facade) ValidateNewUsername(name string) error {
	return f.dir.ValidateNewUsername(name)
}

// FindUser resolves a username to its user record.
func (f *Facade) FindUser(name string) (*models.User, error) {
	return f.dir.FindByUsername(name)
}

// SignUp validates the three fields, registers the user and appends one line
// to the user file. Username existence is checked before format, so the
// caller sees ErrAlreadyExists for well-formed duplicates.
func (f *Facade) SignUp(username, password, email string) (*models.User, error) {
	if err := f.dir.ValidateNewUsername(username); err != nil {
		return nil, err
	}
	if err := validation.Password(password); err != nil {
		return nil, err
	}
	if err := validation.Email(email); err != nil {
		return nil, err
	}
	u := f.dir.AddUser(username, password, email)
	if err := f.codec.AppendUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

// LogIn verifies the credentials and returns the user reference the caller
// holds for the rest of the session.
func (f *Facade) LogIn(username, password string) (*models.User, error) {
	return f.dir.VerifyCredentials(username, password)
}

// LogOut ends a session. The facade keeps no session state, so the caller
// drops its user reference; the method exists so every session transition
// goes through the facade.
func (f *Facade) LogOut() {}

// AskParentQuestion posts a new top-level question from sender to the named
// receiver. The new line is appended to the question file; a new parent
// always belongs at the end, so no rewrite is needed.
func (f *Facade) AskParentQuestion(sender *models.User, receiverName, text string) (int, error) {
	receiver, err := f.dir.FindByUsername(receiverName)
	if err != nil {
		return 0, err
	}
	id, err := f.store.AskParent(text, sender, receiver)
	if err != nil {
		return 0, err
	}
	q, err := f.store.Get(id)
	if err != nil {
		return 0, err
	}
	return id, f.codec.AppendParent(q)
}

// AskThreadQuestion posts a follow-up under the given parent. Threads land in
// the middle of the question file, so the whole file is rewritten.
func (f *Facade) AskThreadQuestion(sender *models.User, parentID int, text string) (int, error) {
	id, err := f.store.AskThread(text, sender, parentID)
	if err != nil {
		return 0, err
	}
	return id, f.codec.SaveQuestions(f.store)
}

// DeleteQuestion removes a question the user sent, cascading over threads
// when the question is a parent, then rewrites the question file.
func (f *Facade) DeleteQuestion(user *models.User, id int) error {
	if err := f.store.Delete(id, user); err != nil {
		return err
	}
	return f.codec.SaveQuestions(f.store)
}

// AnswerQuestion records an answer on a question addressed to the user, then
// rewrites the question file.
func (f *Facade) AnswerQuestion(user *models.User, id int, text string) error {
	if err := f.store.Answer(id, user, text); err != nil {
		return err
	}
	return f.codec.SaveQuestions(f.store)
}

// ListUsers returns all registered users in sign-up order.
func (f *Facade) ListUsers() []*models.User {
	return f.dir.Users()
}

// QuestionsTo returns the questions addressed to the user.
func (f *Facade) QuestionsTo(user *models.User) []*models.Question {
	return f.store.QuestionsTo(user)
}

// QuestionsFrom returns the questions the user asked.
func (f *Facade) QuestionsFrom(user *models.User) []*models.Question {
	return f.store.QuestionsFrom(user)
}

// Feed returns every parent question with its threads, parents in ascending
// id order.
func (f *Facade) Feed() ([]questions.FeedItem, error) {
	return f.store.Feed()
}
