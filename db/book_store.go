package db

import (
	"fmt"
	"sync"

	"library/models"
)

// BookStore owns ISBN assignment and book storage. It is safe for concurrent
// use; a single lock makes minting plus insert, and the status
// read-modify-write, atomic.
type BookStore struct {
	mu      sync.RWMutex
	records Backing
	isbnKey int64 // last issued ISBN
}

// NewBookStore builds a store over records. If records already holds books,
// the ISBN counter resumes after the largest key present.
func NewBookStore(records Backing) (*BookStore, error) {
	if records == nil {
		return nil, fmt.Errorf("book store backing must not be nil: %w", ErrInvalidArgument)
	}

	store := &BookStore{records: records}
	records.Range(func(isbn int64, _ models.Book) bool {
		if isbn > store.isbnKey {
			store.isbnKey = isbn
		}
		return true
	})
	return store, nil
}

// Save assigns a new ISBN to book, overwriting any ISBN it carried, and
// stores a copy. The returned pointer is book itself.
func (s *BookStore) Save(book *models.Book) (*models.Book, error) {
	if book == nil {
		return nil, fmt.Errorf("book must not be nil: %w", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.isbnKey++
	isbn := s.isbnKey
	book.Isbn = isbn

	if !s.records.PutIfAbsent(isbn, *book) {
		return nil, fmt.Errorf("isbn %d: %w", isbn, ErrDuplicateISBN)
	}
	return book, nil
}

// GetByID returns a copy of the book stored under isbn, or ErrNotFound.
func (s *BookStore) GetByID(isbn int64) (*models.Book, error) {
	if isbn <= 0 {
		return nil, fmt.Errorf("isbn was %d but expected greater than zero: %w", isbn, ErrInvalidArgument)
	}

	s.mu.RLock()
	book, ok := s.records.Get(isbn)
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("isbn %d: %w", isbn, ErrNotFound)
	}
	return &book, nil
}

// DeleteByID removes the book under isbn and reports whether it existed.
// The ISBN is never handed out again.
func (s *BookStore) DeleteByID(isbn int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.records.Remove(isbn)
}

// UpdateStatusByID sets the status of the stored book. Other fields keep
// their stored values. Returns false without writing if isbn is absent.
func (s *BookStore) UpdateStatusByID(isbn int64, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.records.Get(isbn)
	if !ok {
		return false
	}
	book.Status = status
	return s.records.Replace(isbn, book)
}

func (s *BookStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records.Len()
}

// LastISBN returns the most recently issued ISBN, 0 if none.
func (s *BookStore) LastISBN() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isbnKey
}

// Stats counts stored books and distinct non-empty author names.
func (s *BookStore) Stats() models.LibraryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := make(map[string]struct{})
	books := 0
	s.records.Range(func(_ int64, book models.Book) bool {
		books++
		if book.AuthorName != "" {
			authors[book.AuthorName] = struct{}{}
		}
		return true
	})

	return models.LibraryStats{
		NumberOfBooks:   books,
		NumberOfAuthors: len(authors),
	}
}
