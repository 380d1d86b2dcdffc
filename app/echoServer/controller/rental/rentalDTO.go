package rental

type DetailsReq struct {
	UserDetails string `json:"userDetails"`
	RentalDate  string `json:"rentalDate"`
	ReturnDate  string `json:"returnDate"`
}
