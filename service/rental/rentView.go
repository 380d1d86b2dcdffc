package rentalsvc

import (
	"context"
	"sort"
	"sync"

	"rentalfront/model"
	"rentalfront/util/ui"
)

type BookLister interface {
	ListAvailable(ctx context.Context) ([]model.Book, error)
}

type Creator interface {
	Create(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error)
}

type RentState struct {
	AvailableBooks []model.Book `json:"availableBooks"`
	SelectedIDs    []int64      `json:"selectedBookIds"`
	UserDetails    string       `json:"userDetails"`
	RentalDate     string       `json:"rentalDate"`
	ReturnDate     string       `json:"returnDate"`
}

// RentView collects a set of available books and the renter's details.
type RentView struct {
	mu        sync.Mutex
	books     BookLister
	rentals   Creator
	rep       ui.Reporter
	nav       ui.Navigator
	available []model.Book
	selected  map[int64]struct{}
	user      string
	from, to  string
}

func NewRentView(books BookLister, rentals Creator, rep ui.Reporter, nav ui.Navigator) *RentView {
	return &RentView{books: books, rentals: rentals, rep: rep, nav: nav, selected: map[int64]struct{}{}}
}

// Init clears the form and loads the books that can be rented.
func (v *RentView) Init(ctx context.Context) error {
	v.mu.Lock()
	v.reset()
	v.mu.Unlock()

	books, err := v.books.ListAvailable(ctx)
	if err != nil {
		v.rep.Report(err)
		return err
	}
	v.mu.Lock()
	v.available = books
	v.mu.Unlock()
	return nil
}

// ToggleSelection adds id when absent and removes it when present.
func (v *RentView) ToggleSelection(id int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.selected[id]; ok {
		delete(v.selected, id)
		return
	}
	v.selected[id] = struct{}{}
}

func (v *RentView) IsSelected(id int64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.selected[id]
	return ok
}

func (v *RentView) SetDetails(userDetails, rentalDate, returnDate string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.user, v.from, v.to = userDetails, rentalDate, returnDate
}

func (v *RentView) State() RentState {
	v.mu.Lock()
	defer v.mu.Unlock()
	books := make([]model.Book, len(v.available))
	for i, b := range v.available {
		books[i] = b.Clone()
	}
	return RentState{
		AvailableBooks: books,
		SelectedIDs:    v.selectedIDs(),
		UserDetails:    v.user,
		RentalDate:     v.from,
		ReturnDate:     v.to,
	}
}

// RentBooks submits the whole selection as one rental. An empty selection
// is sent as is; the server decides whether that is acceptable.
func (v *RentView) RentBooks(ctx context.Context) (*model.Rental, error) {
	v.mu.Lock()
	req := model.CreateRentalReq{
		UserDetails: v.user,
		RentalDate:  v.from,
		ReturnDate:  v.to,
		BookIDs:     v.selectedIDs(),
	}
	v.mu.Unlock()

	out, err := v.rentals.Create(ctx, req)
	if err != nil {
		v.rep.Report(err)
		return nil, err
	}

	v.mu.Lock()
	v.reset()
	v.mu.Unlock()

	v.rep.Notify("Books rented successfully")
	v.nav.Navigate(ui.RouteRentalHistory)
	return out, nil
}

// callers hold mu
func (v *RentView) selectedIDs() []int64 {
	ids := make([]int64, 0, len(v.selected))
	for id := range v.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (v *RentView) reset() {
	v.selected = map[int64]struct{}{}
	v.user, v.from, v.to = "", "", ""
}
