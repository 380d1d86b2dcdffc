// model/rental.go
package model

type Rental struct {
	RentalID    *int64 `json:"rentalId,omitempty"`
	UserDetails string `json:"userDetails"`
	RentalDate  string `json:"rentalDate"`
	ReturnDate  string `json:"returnDate"`
	Books       []Book `json:"books"`
}

// CreateRentalReq is the body of POST /rentals.
type CreateRentalReq struct {
	UserDetails string  `json:"userDetails"`
	RentalDate  string  `json:"rentalDate"`
	ReturnDate  string  `json:"returnDate"`
	BookIDs     []int64 `json:"bookIds"`
}

// Clone returns a copy that shares no memory with r.
func (r Rental) Clone() Rental {
	out := r
	if r.RentalID != nil {
		id := *r.RentalID
		out.RentalID = &id
	}
	if r.Books != nil {
		out.Books = make([]Book, len(r.Books))
		for i, b := range r.Books {
			out.Books[i] = b.Clone()
		}
	}
	return out
}
