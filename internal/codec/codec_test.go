package codec

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/askfm/internal/common"
	"github.com/dmitrijs2005/askfm/internal/logging"
	"github.com/dmitrijs2005/askfm/internal/models"
	"github.com/dmitrijs2005/askfm/internal/questions"
	"github.com/dmitrijs2005/askfm/internal/users"
)

func newTestCodec(t *testing.T) (*FileCodec, string, string) {
	t.Helper()
	dir := t.TempDir()
	userPath := filepath.Join(dir, "users.txt")
	questionPath := filepath.Join(dir, "questions.txt")
	return New(userPath, questionPath, logging.NewDiscard()), userPath, questionPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestLoadCreatesMissingFiles(t *testing.T) {
	c, userPath, questionPath := newTestCodec(t)
	dir := users.NewDirectory()
	store := questions.NewStore()

	require.NoError(t, c.Load(context.Background(), dir, store))

	assert.FileExists(t, userPath)
	assert.FileExists(t, questionPath)
	assert.Empty(t, dir.Users())
}

func TestLoadFatalWhenFileUnopenable(t *testing.T) {
	c, userPath, _ := newTestCodec(t)
	// A directory in place of the user file makes it unopenable.
	require.NoError(t, os.Mkdir(userPath, 0o755))

	err := c.Load(context.Background(), users.NewDirectory(), questions.NewStore())
	assert.ErrorIs(t, err, common.ErrDataFileCorruption)
}

func TestLoadUsersDropsMalformedAndCompacts(t *testing.T) {
	c, userPath, _ := newTestCodec(t)
	writeFile(t, userPath,
		"alice_01<>password1<>aliceaa@gmail.com\n"+
			"broken<>record<>with<>four\n"+ // wrong field count
			"bob<>password2<>bobbbbb@gmail.com\n"+ // username too short
			"carol_77<>short<>carol77@gmail.com\n"+ // password too short
			"dave_123<>password4<>dave@x.com\n"+ // bad email
			"alice_01<>password5<>aliceab@gmail.com\n"+ // duplicate username
			"\n"+
			"erin_999<>password6<>erin999@yahoo.com\n")

	dir := users.NewDirectory()
	require.NoError(t, c.Load(context.Background(), dir, questions.NewStore()))

	require.Len(t, dir.Users(), 2)
	assert.Equal(t, "alice_01", dir.Users()[0].Username)
	assert.Equal(t, "erin_999", dir.Users()[1].Username)

	// Compaction rewrote the file with only the surviving records.
	want := "alice_01<>password1<>aliceaa@gmail.com\nerin_999<>password6<>erin999@yahoo.com\n"
	assert.Equal(t, want, readFile(t, userPath))
}

func TestLoadQuestions(t *testing.T) {
	c, userPath, questionPath := newTestCodec(t)
	writeFile(t, userPath,
		"alice_01<>password1<>aliceaa@gmail.com\n"+
			"robert_b<>password2<>robertb@gmail.com\n"+
			"carol_77<>password3<>carol77@yahoo.com\n")
	writeFile(t, questionPath,
		"Thread<>carol_77<>robert_b<>orphan thread?<>Not answered\n"+ // before any parent: dropped
			"Parent<>alice_01<>robert_b<>how are you?<>fine\n"+
			"Thread<>carol_77<>robert_b<>me too?<>Not answered\n"+
			"Question<>alice_01<>robert_b<>bad tag<>x\n"+
			"Parent<>alice_01<>alice_01<>self question<>x\n"+ // sender == receiver: dropped
			"Parent<>ghost_99<>robert_b<>unknown sender<>x\n"+
			"Parent<>carol_77<>alice_01<>lunch?<>Not answered\n"+
			"Parent<>too<>few\n")

	dir := users.NewDirectory()
	store := questions.NewStore()
	require.NoError(t, c.Load(context.Background(), dir, store))

	feed, err := store.Feed()
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// Ids restart from 1 in file order on every load.
	assert.Equal(t, 1, feed[0].Parent.ID)
	assert.Equal(t, "how are you?", feed[0].Parent.Text)
	assert.Equal(t, "fine", feed[0].Parent.Answer)
	require.Len(t, feed[0].Threads, 1)
	assert.Equal(t, 2, feed[0].Threads[0].ID)
	assert.Equal(t, "carol_77", feed[0].Threads[0].Sender.Username)
	assert.Equal(t, "robert_b", feed[0].Threads[0].Receiver.Username)

	assert.Equal(t, 3, feed[1].Parent.ID)
	assert.Equal(t, "lunch?", feed[1].Parent.Text)
	assert.Empty(t, feed[1].Threads)

	// Compaction rewrote the question file without the dropped records.
	want := "Parent<>alice_01<>robert_b<>how are you?<>fine\n" +
		"Thread<>carol_77<>robert_b<>me too?<>Not answered\n" +
		"Parent<>carol_77<>alice_01<>lunch?<>Not answered\n"
	assert.Equal(t, want, readFile(t, questionPath))
}

func TestAppendUserKeepsExistingLines(t *testing.T) {
	c, userPath, _ := newTestCodec(t)
	writeFile(t, userPath, "alice_01<>password1<>aliceaa@gmail.com\n")

	u := &models.User{ID: 2, Username: "robert_b", Password: "password2", Email: "robertb@gmail.com"}
	require.NoError(t, c.AppendUser(u))

	want := "alice_01<>password1<>aliceaa@gmail.com\nrobert_b<>password2<>robertb@gmail.com\n"
	assert.Equal(t, want, readFile(t, userPath))
}

func TestAppendParentKeepsExistingLines(t *testing.T) {
	c, _, questionPath := newTestCodec(t)
	writeFile(t, questionPath, "Parent<>alice_01<>robert_b<>first?<>Not answered\n")

	alice := &models.User{ID: 1, Username: "alice_01"}
	bob := &models.User{ID: 2, Username: "robert_b"}
	q := &models.Question{ID: 2, Text: "second?", Answer: models.NotAnswered, Sender: bob, Receiver: alice}
	require.NoError(t, c.AppendParent(q))

	want := "Parent<>alice_01<>robert_b<>first?<>Not answered\n" +
		"Parent<>robert_b<>alice_01<>second?<>Not answered\n"
	assert.Equal(t, want, readFile(t, questionPath))
}

func TestSaveQuestionsGroupsThreadsUnderParents(t *testing.T) {
	c, _, questionPath := newTestCodec(t)

	alice := &models.User{ID: 1, Username: "alice_01"}
	bob := &models.User{ID: 2, Username: "robert_b"}
	carol := &models.User{ID: 3, Username: "carol_77"}

	store := questions.NewStore()
	p1, err := store.AskParent("first?", alice, bob)
	require.NoError(t, err)
	p2, err := store.AskParent("second?", carol, alice)
	require.NoError(t, err)
	_, err = store.AskThread("on first?", carol, p1)
	require.NoError(t, err)
	_ = p2

	require.NoError(t, c.SaveQuestions(store))

	// The rewrite groups each parent with its threads even though the thread
	// was created after the second parent.
	want := "Parent<>alice_01<>robert_b<>first?<>Not answered\n" +
		"Thread<>carol_77<>robert_b<>on first?<>Not answered\n" +
		"Parent<>carol_77<>alice_01<>second?<>Not answered\n"
	assert.Equal(t, want, readFile(t, questionPath))
}

// Round trip: load, mutate nothing, rewrite, reload. The second load must see
// exactly the first load's state (modulo id reassignment, which is stable for
// identical file order).
func TestRoundTripIsStable(t *testing.T) {
	c, userPath, questionPath := newTestCodec(t)
	writeFile(t, userPath,
		"alice_01<>password1<>aliceaa@gmail.com\nrobert_b<>password2<>robertb@gmail.com\n")
	writeFile(t, questionPath,
		"Parent<>alice_01<>robert_b<>how are you?<>fine\n")

	require.NoError(t, c.Load(context.Background(), users.NewDirectory(), questions.NewStore()))
	first := readFile(t, userPath) + readFile(t, questionPath)

	require.NoError(t, c.Load(context.Background(), users.NewDirectory(), questions.NewStore()))
	second := readFile(t, userPath) + readFile(t, questionPath)

	assert.Equal(t, first, second)
}

// There is no transactional guarantee across the two files: a crash between
// an in-memory mutation and its SaveQuestions call loses the mutation. This
// test documents the gap rather than working around it: the file still holds
// the pre-mutation state until the save runs.
func TestMutationNotVisibleUntilSave(t *testing.T) {
	c, _, questionPath := newTestCodec(t)

	alice := &models.User{ID: 1, Username: "alice_01"}
	bob := &models.User{ID: 2, Username: "robert_b"}

	store := questions.NewStore()
	p, err := store.AskParent("first?", alice, bob)
	require.NoError(t, err)
	require.NoError(t, c.SaveQuestions(store))

	require.NoError(t, store.Answer(p, bob, "an answer"))
	assert.Contains(t, readFile(t, questionPath), "Not answered")

	require.NoError(t, c.SaveQuestions(store))
	assert.Contains(t, readFile(t, questionPath), "an answer")
}
