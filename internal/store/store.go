// Package store holds the in-session post collection and page cursor.
package store

import (
	"postdeck/internal/domain"
	"postdeck/internal/paging"
)

// Observer receives the freshly derived page view after every completed
// mutation. The view is always consistent: the cursor has already been
// clamped when an observer runs.
type Observer func(page paging.Page[domain.Post])

type subscription struct {
	id int
	fn Observer
}

// Store is the single source of truth for the ordered post collection and
// the 1-based page cursor. All mutations go through it so no reader ever
// observes an out-of-range cursor.
//
// The store is not safe for concurrent use. It is owned by the UI event loop
// and every mutation runs as a discrete turn on that goroutine.
type Store struct {
	posts     []domain.Post
	cursor    int
	observers []subscription
	nextSubID int
}

// New creates an empty store with the cursor on page 1.
func New() *Store {
	return &Store{cursor: 1}
}

// Load replaces the collection wholesale and resets the cursor to page 1.
// It is called once, after the feed resolves; a failed fetch loads an empty
// slice.
func (s *Store) Load(posts []domain.Post) {
	s.posts = make([]domain.Post, len(posts))
	copy(s.posts, posts)
	s.cursor = 1
	s.notify()
}

// Remove deletes the post with the given ID, preserving the order of the
// rest. A missing ID is a silent no-op. Afterwards the cursor is clamped so
// it never points past the new last page.
func (s *Store) Remove(id int) {
	for i, post := range s.posts {
		if post.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			s.cursor = paging.Clamp(s.cursor, len(s.posts))
			break
		}
	}
	s.notify()
}

// GoToPage moves the cursor to page n. Out-of-range requests are clamped
// into [1, TotalPages], never rejected.
func (s *Store) GoToPage(n int) {
	s.cursor = paging.Clamp(n, len(s.posts))
	s.notify()
}

// NextPage advances the cursor by one page; a call on the last page is a no-op.
func (s *Store) NextPage() {
	s.GoToPage(s.cursor + 1)
}

// PrevPage moves the cursor back by one page; a call on the first page is a no-op.
func (s *Store) PrevPage() {
	s.GoToPage(s.cursor - 1)
}

// View derives the current page view from the collection and cursor.
func (s *Store) View() paging.Page[domain.Post] {
	return paging.Paginate(s.posts, s.cursor)
}

// Len returns the number of posts currently in the collection.
func (s *Store) Len() int {
	return len(s.posts)
}

// Cursor returns the current 1-based page cursor.
func (s *Store) Cursor() int {
	return s.cursor
}

// Posts returns a copy of the full ordered collection.
func (s *Store) Posts() []domain.Post {
	posts := make([]domain.Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

// Subscribe registers an observer and returns a function that removes it.
// Observers run synchronously after every completed mutation, including
// no-op removals and boundary navigation: the contract is "read consistent
// state after each completed mutation", not "state changed".
func (s *Store) Subscribe(fn Observer) func() {
	s.nextSubID++
	id := s.nextSubID
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	view := s.View()
	for _, sub := range s.observers {
		sub.fn(view)
	}
}
