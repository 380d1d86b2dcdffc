// model/book.go
package model

import "net/url"

// Book is a library book as exchanged with the books endpoint.
// BookID is nil until the server has persisted the book.
type Book struct {
	BookID    *int64 `json:"bookId,omitempty"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Available bool   `json:"available"`
}

// NewDraftBook returns an unsaved book that is available for rental.
func NewDraftBook() Book {
	return Book{Available: true}
}

func (b Book) ID() (int64, bool) {
	if b.BookID == nil {
		return 0, false
	}
	return *b.BookID, true
}

// Clone returns a copy that shares no memory with b.
func (b Book) Clone() Book {
	out := b
	if b.BookID != nil {
		id := *b.BookID
		out.BookID = &id
	}
	return out
}

// BookSearch holds optional search filters. Empty fields are not constraints.
type BookSearch struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// Query encodes only the non-empty filters.
func (s BookSearch) Query() url.Values {
	q := url.Values{}
	if s.Title != "" {
		q.Set("title", s.Title)
	}
	if s.Author != "" {
		q.Set("author", s.Author)
	}
	if s.Genre != "" {
		q.Set("genre", s.Genre)
	}
	return q
}

func Int64(v int64) *int64 { return &v }
