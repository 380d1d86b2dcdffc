// repository/rental/repo.go
package rentalrepo

import (
	"context"
	"net/http"

	"rentalfront/model"
	"rentalfront/util/httpx"
)

type Repo struct{ api *httpx.Client }

func New(api *httpx.Client) *Repo { return &Repo{api: api} }

// ListAll returns every rental with its nested books.
func (r *Repo) ListAll(ctx context.Context) ([]model.Rental, error) {
	var out []model.Rental
	if err := r.api.Do(ctx, http.MethodGet, "/rentals", nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Rental{}
	}
	return out, nil
}

func (r *Repo) Create(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error) {
	if req.BookIDs == nil {
		req.BookIDs = []int64{}
	}
	var out model.Rental
	if err := r.api.Do(ctx, http.MethodPost, "/rentals", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
