// Package questions implements the in-memory question store: top-level
// ("parent") questions, follow-up ("thread") questions, and the ordered
// association from a parent to its threads.
package questions

import (
	"fmt"
	"sort"

	"github.com/dmitrijs2005/askfm/internal/common"
	"github.com/dmitrijs2005/askfm/internal/models"
)

// Store owns all question records and the parent/thread association map.
// Parent and thread ids come from one shared counter starting at 1, so ids
// never collide across the two collections and are never reused after a
// delete. Every parent has an entry in byParent from the moment it is
// created, possibly with an empty thread list.
type Store struct {
	parents []*models.Question
	threads []*models.Question

	// byParent maps a parent question id to its thread question ids in
	// insertion order.
	byParent map[int][]int

	nextID int
}

func NewStore() *Store {
	return &Store{byParent: make(map[int][]int)}
}

// FeedItem is one parent question together with its threads in insertion
// order.
type FeedItem struct {
	Parent  *models.Question
	Threads []*models.Question
}

func (s *Store) newID() int {
	s.nextID++
	return s.nextID
}

// Get returns the question with the given id, searching parents first and
// then threads.
func (s *Store) Get(id int) (*models.Question, error) {
	if q := findByID(s.parents, id); q != nil {
		return q, nil
	}
	if q := findByID(s.threads, id); q != nil {
		return q, nil
	}
	return nil, common.ErrNotFound
}

// AskParent creates a new top-level question from sender to receiver and
// returns its id. Self-questions and empty texts are rejected.
func (s *Store) AskParent(text string, sender, receiver *models.User) (int, error) {
	if text == "" {
		return 0, common.ErrEmptyField
	}
	if sender.ID == receiver.ID {
		return 0, common.ErrSelfAddressed
	}
	q := &models.Question{
		ID:       s.newID(),
		Text:     text,
		Answer:   models.NotAnswered,
		Sender:   sender,
		Receiver: receiver,
	}
	s.parents = append(s.parents, q)
	s.byParent[q.ID] = nil
	return q.ID, nil
}

// AskThread creates a follow-up question under the parent with the given id.
// The thread's receiver is copied from the parent. A thread is rejected when
// its sender is the parent's receiver: the person a question was addressed to
// cannot start a thread on their own incoming question. (Any third party can.
// This mirrors the original system verbatim.)
func (s *Store) AskThread(text string, sender *models.User, parentID int) (int, error) {
	if text == "" {
		return 0, common.ErrEmptyField
	}
	parent := findByID(s.parents, parentID)
	if parent == nil {
		return 0, common.ErrNotFound
	}
	if parent.Receiver.ID == sender.ID {
		return 0, common.ErrSelfAddressed
	}
	q := &models.Question{
		ID:       s.newID(),
		Text:     text,
		Answer:   models.NotAnswered,
		Sender:   sender,
		Receiver: parent.Receiver,
	}
	s.threads = append(s.threads, q)
	s.byParent[parentID] = append(s.byParent[parentID], q.ID)
	return q.ID, nil
}

// Delete removes the question with the given id on behalf of sender. Only the
// question's sender may delete it. Deleting a parent cascades: all of its
// threads and its association entry go with it. Deleting a thread strips its
// id from every parent's list; only one list can contain it, but all are
// scanned.
func (s *Store) Delete(id int, sender *models.User) error {
	q, err := s.Get(id)
	if err != nil {
		return err
	}
	if q.Sender.ID != sender.ID {
		return common.ErrNotOwner
	}
	if threadIDs, ok := s.byParent[id]; ok {
		for _, tid := range threadIDs {
			s.threads = removeByID(s.threads, tid)
		}
		delete(s.byParent, id)
		s.parents = removeByID(s.parents, id)
		return nil
	}
	s.threads = removeByID(s.threads, id)
	for pid, ids := range s.byParent {
		s.byParent[pid] = removeInt(ids, id)
	}
	return nil
}

// Answer records an answer on the question with the given id. Only the
// question's receiver may answer, and the answer must be non-empty.
func (s *Store) Answer(id int, receiver *models.User, text string) error {
	q, err := s.Get(id)
	if err != nil {
		return err
	}
	if q.Receiver.ID != receiver.ID {
		return common.ErrNotOwner
	}
	if text == "" {
		return common.ErrEmptyAnswer
	}
	q.Answer = text
	return nil
}

// QuestionsTo returns every question addressed to user, parents before
// threads, each group in insertion order.
func (s *Store) QuestionsTo(user *models.User) []*models.Question {
	var out []*models.Question
	for _, q := range s.parents {
		if q.Receiver.ID == user.ID {
			out = append(out, q)
		}
	}
	for _, q := range s.threads {
		if q.Receiver.ID == user.ID {
			out = append(out, q)
		}
	}
	return out
}

// QuestionsFrom returns every question asked by user, parents before threads,
// each group in insertion order.
func (s *Store) QuestionsFrom(user *models.User) []*models.Question {
	var out []*models.Question
	for _, q := range s.parents {
		if q.Sender.ID == user.ID {
			out = append(out, q)
		}
	}
	for _, q := range s.threads {
		if q.Sender.ID == user.ID {
			out = append(out, q)
		}
	}
	return out
}

// Feed returns all parent questions in ascending id order, each with its
// threads in insertion order. An association entry referencing a question
// that is missing from its collection is an internal invariant violation and
// yields ErrDataCorruption.
func (s *Store) Feed() ([]FeedItem, error) {
	ids := make([]int, 0, len(s.byParent))
	for id := range s.byParent {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	items := make([]FeedItem, 0, len(ids))
	for _, pid := range ids {
		parent := findByID(s.parents, pid)
		if parent == nil {
			return nil, fmt.Errorf("feed: parent %d missing: %w", pid, common.ErrDataCorruption)
		}
		item := FeedItem{Parent: parent}
		for _, tid := range s.byParent[pid] {
			thread := findByID(s.threads, tid)
			if thread == nil {
				return nil, fmt.Errorf("feed: thread %d of parent %d missing: %w", tid, pid, common.ErrDataCorruption)
			}
			item.Threads = append(item.Threads, thread)
		}
		items = append(items, item)
	}
	return items, nil
}

// RestoreParent re-creates a parent question read from storage, keeping the
// stored answer. Ids are not persisted, so the question gets the next free id
// in file order.
func (s *Store) RestoreParent(text, answer string, sender, receiver *models.User) int {
	q := &models.Question{
		ID:       s.newID(),
		Text:     text,
		Answer:   answer,
		Sender:   sender,
		Receiver: receiver,
	}
	s.parents = append(s.parents, q)
	s.byParent[q.ID] = nil
	return q.ID
}

// RestoreThread re-creates a thread question read from storage under the
// given parent. Unlike AskThread, the receiver comes from the stored record
// and no self-reply rule applies; the original file loader never checked it.
func (s *Store) RestoreThread(parentID int, text, answer string, sender, receiver *models.User) (int, error) {
	if findByID(s.parents, parentID) == nil {
		return 0, common.ErrNotFound
	}
	q := &models.Question{
		ID:       s.newID(),
		Text:     text,
		Answer:   answer,
		Sender:   sender,
		Receiver: receiver,
	}
	s.threads = append(s.threads, q)
	s.byParent[parentID] = append(s.byParent[parentID], q.ID)
	return q.ID, nil
}

func findByID(qs []*models.Question, id int) *models.Question {
	for _, q := range qs {
		if q.ID == id {
			return q
		}
	}
	return nil
}

func removeByID(qs []*models.Question, id int) []*models.Question {
	out := qs[:0]
	for _, q := range qs {
		if q.ID != id {
			out = append(out, q)
		}
	}
	return out
}

func removeInt(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
