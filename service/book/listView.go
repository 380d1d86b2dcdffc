package booksvc

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"rentalfront/model"
	"rentalfront/util/ui"
)

type Book = model.Book

const DeletePrompt = "Are you sure you want to delete this book?"

type Repo interface {
	ListAll(ctx context.Context) ([]Book, error)
	ListAvailable(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	Search(ctx context.Context, s model.BookSearch) ([]Book, error)
	Create(ctx context.Context, b Book) (*Book, error)
	Update(ctx context.Context, id int64, b Book) (*Book, error)
	Delete(ctx context.Context, id int64) error
}

type ListState struct {
	Books             []Book `json:"books"`
	Selected          *Book  `json:"selected,omitempty"`
	TitleSearch       string `json:"titleSearch"`
	AuthorSearch      string `json:"authorSearch"`
	GenreSearch       string `json:"genreSearch"`
	IDSearch          string `json:"idSearch"`
	ShowOnlyAvailable bool   `json:"showOnlyAvailable"`
	UpdateModalOpen   bool   `json:"updateModalOpen"`
}

// ListView backs the book table: loading, search, lookup by id, edit and delete.
type ListView struct {
	mu  sync.Mutex
	r   Repo
	rep ui.Reporter
	st  ListState
}

func NewListView(r Repo, rep ui.Reporter) *ListView {
	v := &ListView{r: r, rep: rep}
	v.st = initialListState()
	return v
}

func initialListState() ListState {
	return ListState{Books: []Book{}, ShowOnlyAvailable: true}
}

// State returns a snapshot that callers may modify freely.
func (v *ListView) State() ListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.st
	out.Books = cloneBooks(v.st.Books)
	if v.st.Selected != nil {
		sel := v.st.Selected.Clone()
		out.Selected = &sel
	}
	return out
}

// Init resets the view to its defaults and loads the list.
func (v *ListView) Init(ctx context.Context) error {
	v.mu.Lock()
	v.st = initialListState()
	v.mu.Unlock()
	return v.Load(ctx)
}

// Load replaces the list with all books, or only available ones when the
// toggle is on.
func (v *ListView) Load(ctx context.Context) error {
	v.mu.Lock()
	only := v.st.ShowOnlyAvailable
	v.mu.Unlock()
	return v.load(ctx, only)
}

// SetShowOnlyAvailable reloads when the value changes. The toggle is only
// committed together with the list it selects.
func (v *ListView) SetShowOnlyAvailable(ctx context.Context, only bool) error {
	v.mu.Lock()
	changed := v.st.ShowOnlyAvailable != only
	v.mu.Unlock()
	if !changed {
		return nil
	}
	return v.load(ctx, only)
}

func (v *ListView) load(ctx context.Context, only bool) error {
	var (
		books []Book
		err   error
	)
	if only {
		books, err = v.r.ListAvailable(ctx)
	} else {
		books, err = v.r.ListAll(ctx)
	}
	if err != nil {
		return v.fail(err)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.st.ShowOnlyAvailable = only
	v.st.Books = cloneBooks(books)
	return nil
}

func (v *ListView) SetFilters(title, author, genre, id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.st.TitleSearch = title
	v.st.AuthorSearch = author
	v.st.GenreSearch = genre
	v.st.IDSearch = id
}

// Search forwards only the non-empty filters.
func (v *ListView) Search(ctx context.Context) error {
	v.mu.Lock()
	q := model.BookSearch{Title: v.st.TitleSearch, Author: v.st.AuthorSearch, Genre: v.st.GenreSearch}
	v.mu.Unlock()

	books, err := v.r.Search(ctx, q)
	if err != nil {
		return v.fail(err)
	}
	v.setBooks(books)
	return nil
}

// GetByID shows only the book named by IDSearch. A blank or zero id is a no-op.
func (v *ListView) GetByID(ctx context.Context) error {
	v.mu.Lock()
	raw := strings.TrimSpace(v.st.IDSearch)
	v.mu.Unlock()
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err == nil && id == 0 {
		return nil
	}
	if err != nil || id < 0 {
		return v.fail(makeErr(ErrInvalidID))
	}

	b, err := v.r.GetByID(ctx, id)
	if err != nil {
		return v.fail(err)
	}
	v.setBooks([]Book{*b})
	return nil
}

func (v *ListView) ResetSearch(ctx context.Context) error {
	v.SetFilters("", "", "", "")
	return v.Load(ctx)
}

// Select takes a private copy of the displayed book for editing and
// opens the update modal.
func (v *ListView) Select(id int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, b := range v.st.Books {
		if bid, ok := b.ID(); ok && bid == id {
			sel := b.Clone()
			v.st.Selected = &sel
			v.st.UpdateModalOpen = true
			return nil
		}
	}
	err := makeErr(ErrUnknownBook)
	v.rep.Report(err)
	return err
}

// EditSelected overwrites the draft's editable fields. The id never changes.
func (v *ListView) EditSelected(b Book) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.st.Selected == nil {
		err := makeErr(ErrNoSelection)
		v.rep.Report(err)
		return err
	}
	v.st.Selected.Title = b.Title
	v.st.Selected.Author = b.Author
	v.st.Selected.Genre = b.Genre
	v.st.Selected.Available = b.Available
	return nil
}

func (v *ListView) CancelEdit() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.st.Selected = nil
	v.st.UpdateModalOpen = false
}

// SaveUpdate sends the draft. Without a persisted selection nothing is sent.
func (v *ListView) SaveUpdate(ctx context.Context) error {
	v.mu.Lock()
	var draft Book
	var id int64
	ok := v.st.Selected != nil
	if ok {
		draft = v.st.Selected.Clone()
		id, ok = draft.ID()
	}
	v.mu.Unlock()
	if !ok {
		return v.fail(makeErr(ErrNoSelection))
	}

	if _, err := v.r.Update(ctx, id, draft); err != nil {
		return v.fail(err)
	}

	v.mu.Lock()
	v.st.Selected = nil
	v.st.UpdateModalOpen = false
	v.mu.Unlock()
	return v.Load(ctx)
}

// DeleteBook removes a book once the user confirms. Declining is not an error.
func (v *ListView) DeleteBook(ctx context.Context, id int64, c ui.Confirmer) error {
	if c == nil || !c.Confirm(DeletePrompt) {
		return nil
	}
	if err := v.r.Delete(ctx, id); err != nil {
		return v.fail(err)
	}
	return v.Load(ctx)
}

func (v *ListView) setBooks(books []Book) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.st.Books = cloneBooks(books)
}

func (v *ListView) fail(err error) error {
	v.rep.Report(err)
	return err
}

func cloneBooks(in []Book) []Book {
	out := make([]Book, len(in))
	for i, b := range in {
		out[i] = b.Clone()
	}
	return out
}
