package stubServer

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"rentalfront/model"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Store is an in-memory stand-in for the remote library backend.
// Ids are assigned sequentially from 1.
type Store struct {
	mu         sync.RWMutex
	nextBook   int64
	nextRental int64
	books      map[int64]model.Book
	rentals    []model.Rental
}

func NewStore() *Store {
	return &Store{books: map[int64]model.Book{}}
}

func (s *Store) ListBooks(availableOnly bool) []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(b model.Book) bool { return !availableOnly || b.Available })
}

// Search matches case-insensitive substrings; every non-empty filter must match.
func (s *Store) Search(q model.BookSearch) []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(b model.Book) bool {
		return contains(b.Title, q.Title) && contains(b.Author, q.Author) && contains(b.Genre, q.Genre)
	})
}

func (s *Store) Book(id int64) (model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[id]
	if !ok {
		return model.Book{}, makeErr(ErrNotFound)
	}
	return b.Clone(), nil
}

func (s *Store) CreateBook(b model.Book) model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextBook++
	b.BookID = model.Int64(s.nextBook)
	s.books[s.nextBook] = b
	return b.Clone()
}

// UpdateBook replaces the stored fields; the id always comes from the path.
func (s *Store) UpdateBook(id int64, b model.Book) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return model.Book{}, makeErr(ErrNotFound)
	}
	b.BookID = model.Int64(id)
	s.books[id] = b
	return b.Clone(), nil
}

func (s *Store) DeleteBook(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return makeErr(ErrNotFound)
	}
	delete(s.books, id)
	return nil
}

func (s *Store) ListRentals() []model.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Rental, 0, len(s.rentals))
	for _, r := range s.rentals {
		out = append(out, r.Clone())
	}
	return out
}

// CreateRental snapshots the referenced books into the rental and marks
// them unavailable. Unknown ids fail the whole request.
func (s *Store) CreateRental(req model.CreateRentalReq) (model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[int64]bool{}
	books := make([]model.Book, 0, len(req.BookIDs))
	for _, id := range req.BookIDs {
		if id <= 0 {
			return model.Rental{}, makeErr(ErrBadInput)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		b, ok := s.books[id]
		if !ok {
			return model.Rental{}, makeErr(ErrNotFound)
		}
		books = append(books, b)
	}

	for i := range books {
		id, _ := books[i].ID()
		books[i].Available = false
		s.books[id] = books[i]
	}

	s.nextRental++
	r := model.Rental{
		RentalID:    model.Int64(s.nextRental),
		UserDetails: req.UserDetails,
		RentalDate:  req.RentalDate,
		ReturnDate:  req.ReturnDate,
		Books:       books,
	}
	s.rentals = append(s.rentals, r)
	return r.Clone(), nil
}

func (s *Store) filter(keep func(model.Book) bool) []model.Book {
	out := []model.Book{}
	for _, b := range s.books {
		if keep(b) {
			out = append(out, b.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].BookID < *out[j].BookID })
	return out
}

func contains(field, filter string) bool {
	return filter == "" || strings.Contains(strings.ToLower(field), strings.ToLower(filter))
}
