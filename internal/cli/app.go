// Package cli implements the interactive menu shell of the ask system. The
// shell is thin plumbing: it prompts, re-prompts and prints, and drives all
// state changes through the session facade.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/askfm/internal/codec"
	"github.com/dmitrijs2005/askfm/internal/config"
	"github.com/dmitrijs2005/askfm/internal/logging"
	"github.com/dmitrijs2005/askfm/internal/models"
	"github.com/dmitrijs2005/askfm/internal/questions"
	"github.com/dmitrijs2005/askfm/internal/session"
	"github.com/dmitrijs2005/askfm/internal/users"
)

// App wires the directory, store, codec and facade together and holds the
// shell's only piece of state: the currently logged-in user.
type App struct {
	config *config.Config
	facade *session.Facade
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	user   *models.User
}

// NewApp loads both data files (compacting them in the process) and returns a
// ready-to-run shell. A file that cannot be opened aborts startup.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	dir := users.NewDirectory()
	store := questions.NewStore()
	c := codec.New(cfg.UserFilePath, cfg.QuestionFilePath, log)
	if err := c.Load(ctx, dir, store); err != nil {
		return nil, err
	}
	log.Info(ctx, "data files loaded", "users", len(dir.Users()))

	return &App{
		config: cfg,
		facade: session.New(dir, store, c),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}
