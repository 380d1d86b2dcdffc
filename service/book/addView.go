package booksvc

import (
	"context"
	"sync"

	"rentalfront/model"
	"rentalfront/util/ui"
)

type Creator interface {
	Create(ctx context.Context, b Book) (*Book, error)
}

// AddView holds the draft of a new book.
type AddView struct {
	mu    sync.Mutex
	r     Creator
	rep   ui.Reporter
	nav   ui.Navigator
	draft Book
}

func NewAddView(r Creator, rep ui.Reporter, nav ui.Navigator) *AddView {
	return &AddView{r: r, rep: rep, nav: nav, draft: model.NewDraftBook()}
}

func (v *AddView) Draft() Book {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft.Clone()
}

// SetDraft replaces the form contents. Any id on b is dropped.
func (v *AddView) SetDraft(b Book) {
	b.BookID = nil
	v.mu.Lock()
	v.draft = b
	v.mu.Unlock()
}

// AddBook submits the draft. On failure the draft stays as typed.
func (v *AddView) AddBook(ctx context.Context) (*Book, error) {
	draft := v.Draft()
	created, err := v.r.Create(ctx, draft)
	if err != nil {
		v.rep.Report(err)
		return nil, err
	}

	v.mu.Lock()
	v.draft = model.NewDraftBook()
	v.mu.Unlock()

	v.rep.Notify("Book added successfully")
	v.nav.Navigate(ui.RouteBooks)
	return created, nil
}
