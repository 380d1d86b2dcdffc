// Package stubServer serves an in-memory copy of the library REST API.
// It backs the test suite and local runs without a real backend.
package stubServer

import (
	"log/slog"
	"net/http"
	"strconv"

	"rentalfront/app/echoServer/validation"
	"rentalfront/model"

	"github.com/labstack/echo/v4"
)

type BookReq struct {
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Genre     string `json:"genre" validate:"required"`
	Available bool   `json:"available"`
}

type Handler struct {
	Store *Store
	Log   *slog.Logger
}

// New returns an echo instance serving the API under prefix (e.g. "/api").
func New(store *Store, log *slog.Logger, prefix string) *echo.Echo {
	if log == nil {
		log = slog.Default()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()

	h := &Handler{Store: store, Log: log}
	h.Register(e.Group(prefix))
	return e
}

func (h *Handler) Register(g *echo.Group) {
	g.GET("/books", h.ListBooks)
	g.GET("/books/available", h.ListAvailable)
	g.GET("/books/search", h.Search)
	g.GET("/books/:id", h.GetBook)
	g.POST("/books", h.CreateBook)
	g.PUT("/books/:id", h.UpdateBook)
	g.DELETE("/books/:id", h.DeleteBook)

	g.GET("/rentals", h.ListRentals)
	g.POST("/rentals", h.CreateRental)
}

// GET /books
func (h *Handler) ListBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListBooks(false))
}

// GET /books/available
func (h *Handler) ListAvailable(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListBooks(true))
}

// GET /books/search?title=&author=&genre=
func (h *Handler) Search(c echo.Context) error {
	q := model.BookSearch{
		Title:  c.QueryParam("title"),
		Author: c.QueryParam("author"),
		Genre:  c.QueryParam("genre"),
	}
	return c.JSON(http.StatusOK, h.Store.Search(q))
}

// GET /books/:id
func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	b, err := h.Store.Book(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// POST /books
func (h *Handler) CreateBook(c echo.Context) error {
	req, err := bindBook(c)
	if err != nil {
		return err
	}
	b := h.Store.CreateBook(req)
	return c.JSON(http.StatusCreated, b)
}

// PUT /books/:id
func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	req, err := bindBook(c)
	if err != nil {
		return err
	}
	b, err := h.Store.UpdateBook(id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// DELETE /books/:id
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Store.DeleteBook(id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /rentals
func (h *Handler) ListRentals(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListRentals())
}

// POST /rentals
func (h *Handler) CreateRental(c echo.Context) error {
	var req model.CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	r, err := h.Store.CreateRental(req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) fail(c echo.Context, err error) error {
	switch Code(err) {
	case ErrNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case ErrBadInput:
		return echo.NewHTTPError(http.StatusBadRequest, "bad input")
	default:
		h.Log.Error("stub api error", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func bindBook(c echo.Context) (model.Book, error) {
	var req BookReq
	if err := c.Bind(&req); err != nil {
		return model.Book{}, echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if err := c.Validate(&req); err != nil {
		return model.Book{}, echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}
	return model.Book{Title: req.Title, Author: req.Author, Genre: req.Genre, Available: req.Available}, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
