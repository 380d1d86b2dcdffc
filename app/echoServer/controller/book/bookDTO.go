package book

type BookForm struct {
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Genre     string `json:"genre" validate:"required"`
	Available bool   `json:"available"`
}

type FiltersReq struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	ID     string `json:"id"`
}

type AvailabilityReq struct {
	ShowOnlyAvailable *bool `json:"showOnlyAvailable" validate:"required"`
}
