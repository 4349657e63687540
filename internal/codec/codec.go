// Package codec persists the user directory and question store to two
// line-oriented text files with fields separated by "<>".
//
// Decoding is tolerant: malformed lines are dropped with a warning, never
// fatal. The only fatal condition is a file that cannot be opened. Loading
// immediately rewrites both files in canonical form, so every startup doubles
// as a compaction pass that heals corrupt records out of the files.
//
// File formats:
//
//	users:     username<>password<>email
//	questions: Type<>Sender<>Receiver<>Text<>Answer   (Type is Parent|Thread)
//
// Question ids are not persisted; they are reassigned in file order on load.
// A Thread line belongs to the nearest preceding Parent line.
package codec

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/askfm/internal/common"
	"github.com/dmitrijs2005/askfm/internal/logging"
	"github.com/dmitrijs2005/askfm/internal/models"
	"github.com/dmitrijs2005/askfm/internal/questions"
	"github.com/dmitrijs2005/askfm/internal/users"
	"github.com/dmitrijs2005/askfm/internal/validation"
)

const (
	delimiter = "<>"

	tagParent = "Parent"
	tagThread = "Thread"

	userFieldCount     = 3
	questionFieldCount = 5
)

// FileCodec reads and writes the two data files. It holds paths only; the
// directory and store are passed in by the caller.
type FileCodec struct {
	userPath     string
	questionPath string
	log          logging.Logger
}

func New(userPath, questionPath string, log logging.Logger) *FileCodec {
	return &FileCodec{userPath: userPath, questionPath: questionPath, log: log}
}

// Load reads both data files into dir and store, then rewrites them in
// canonical form. Users are loaded first so question records can resolve
// their sender and receiver names. A file that cannot be opened yields
// ErrDataFileCorruption; a missing file is created empty.
func (c *FileCodec) Load(ctx context.Context, dir *users.Directory, store *questions.Store) error {
	if err := c.loadUsers(ctx, dir); err != nil {
		return err
	}
	if err := c.loadQuestions(ctx, dir, store); err != nil {
		return err
	}
	if err := c.SaveUsers(dir); err != nil {
		return err
	}
	return c.SaveQuestions(store)
}

func (c *FileCodec) loadUsers(ctx context.Context, dir *users.Directory) error {
	f, err := os.OpenFile(c.userPath, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: user file %s: %v", common.ErrDataFileCorruption, c.userPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, delimiter)
		if len(fields) != userFieldCount {
			c.log.Warn(ctx, "dropping malformed user record", "line", lineNo, "fields", len(fields))
			continue
		}
		username, password, email := fields[0], fields[1], fields[2]
		// ValidateNewUsername also rejects duplicates, so a repeated
		// username line is dropped like any other corrupt record.
		if err := dir.ValidateNewUsername(username); err != nil {
			c.log.Warn(ctx, "dropping invalid user record", "line", lineNo, "reason", err)
			continue
		}
		if err := validation.Password(password); err != nil {
			c.log.Warn(ctx, "dropping invalid user record", "line", lineNo, "reason", err)
			continue
		}
		if err := validation.Email(email); err != nil {
			c.log.Warn(ctx, "dropping invalid user record", "line", lineNo, "reason", err)
			continue
		}
		dir.AddUser(username, password, email)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: user file %s: %v", common.ErrDataFileCorruption, c.userPath, err)
	}
	return nil
}

func (c *FileCodec) loadQuestions(ctx context.Context, dir *users.Directory, store *questions.Store) error {
	f, err := os.OpenFile(c.questionPath, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: question file %s: %v", common.ErrDataFileCorruption, c.questionPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	lastParentID := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, delimiter)
		if len(fields) != questionFieldCount {
			c.log.Warn(ctx, "dropping malformed question record", "line", lineNo, "fields", len(fields))
			continue
		}
		tag, senderName, receiverName, text, answer := fields[0], fields[1], fields[2], fields[3], fields[4]
		if tag != tagParent && tag != tagThread {
			c.log.Warn(ctx, "dropping question record with unknown tag", "line", lineNo, "tag", tag)
			continue
		}
		if senderName == receiverName {
			c.log.Warn(ctx, "dropping self-addressed question record", "line", lineNo)
			continue
		}
		sender, err := dir.FindByUsername(senderName)
		if err != nil {
			c.log.Warn(ctx, "dropping question record with unknown sender", "line", lineNo, "sender", senderName)
			continue
		}
		receiver, err := dir.FindByUsername(receiverName)
		if err != nil {
			c.log.Warn(ctx, "dropping question record with unknown receiver", "line", lineNo, "receiver", receiverName)
			continue
		}
		if tag == tagParent {
			lastParentID = store.RestoreParent(text, answer, sender, receiver)
			continue
		}
		// A thread belongs to the nearest preceding parent line. A thread
		// before any parent has nothing to attach to and is dropped.
		if lastParentID == 0 {
			c.log.Warn(ctx, "dropping thread record with no preceding parent", "line", lineNo)
			continue
		}
		if _, err := store.RestoreThread(lastParentID, text, answer, sender, receiver); err != nil {
			c.log.Warn(ctx, "dropping thread record", "line", lineNo, "reason", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: question file %s: %v", common.ErrDataFileCorruption, c.questionPath, err)
	}
	return nil
}

// SaveUsers rewrites the whole user file from the directory.
func (c *FileCodec) SaveUsers(dir *users.Directory) error {
	lines := make([]string, 0, len(dir.Users()))
	for _, u := range dir.Users() {
		lines = append(lines, encodeUser(u))
	}
	return c.rewrite(c.userPath, lines)
}

// SaveQuestions rewrites the whole question file from the store's
// association map, parents in ascending id order, each followed by its
// threads. Store corruption surfaces as an error rather than a partial file.
func (c *FileCodec) SaveQuestions(store *questions.Store) error {
	feed, err := store.Feed()
	if err != nil {
		return err
	}
	var lines []string
	for _, item := range feed {
		lines = append(lines, encodeQuestion(tagParent, item.Parent))
		for _, thread := range item.Threads {
			lines = append(lines, encodeQuestion(tagThread, thread))
		}
	}
	return c.rewrite(c.questionPath, lines)
}

// AppendUser adds a single user line to the user file. New sign-ups are the
// only user mutation, so the user file never needs a rewrite outside
// compaction.
func (c *FileCodec) AppendUser(u *models.User) error {
	return c.append(c.userPath, encodeUser(u))
}

// AppendParent adds a single parent-question line to the question file. A
// new parent always sorts last (its id is the highest yet), so an append
// keeps the file in canonical order. Threads, answers and deletes change
// interior lines and go through SaveQuestions instead.
func (c *FileCodec) AppendParent(q *models.Question) error {
	return c.append(c.questionPath, encodeQuestion(tagParent, q))
}

func (c *FileCodec) rewrite(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrDataFileCorruption, path, err)
	}
	return writeLines(f, lines)
}

func (c *FileCodec) append(path string, line string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrDataFileCorruption, path, err)
	}
	return writeLines(f, []string{line})
}

func writeLines(f *os.File, lines []string) error {
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeUser(u *models.User) string {
	return strings.Join([]string{u.Username, u.Password, u.Email}, delimiter)
}

func encodeQuestion(tag string, q *models.Question) string {
	return strings.Join([]string{tag, q.Sender.Username, q.Receiver.Username, q.Text, q.Answer}, delimiter)
}
