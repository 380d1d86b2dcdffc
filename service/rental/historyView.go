package rentalsvc

import (
	"context"
	"sync"

	"rentalfront/model"
	"rentalfront/util/ui"
)

type Lister interface {
	ListAll(ctx context.Context) ([]model.Rental, error)
}

// HistoryView is the read-only list of all rentals.
type HistoryView struct {
	mu      sync.Mutex
	r       Lister
	rep     ui.Reporter
	rentals []model.Rental
}

func NewHistoryView(r Lister, rep ui.Reporter) *HistoryView {
	return &HistoryView{r: r, rep: rep, rentals: []model.Rental{}}
}

func (v *HistoryView) Init(ctx context.Context) error {
	rentals, err := v.r.ListAll(ctx)
	if err != nil {
		v.rep.Report(err)
		return err
	}
	v.mu.Lock()
	v.rentals = rentals
	v.mu.Unlock()
	return nil
}

func (v *HistoryView) Rentals() []model.Rental {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]model.Rental, len(v.rentals))
	for i, r := range v.rentals {
		out[i] = r.Clone()
	}
	return out
}
