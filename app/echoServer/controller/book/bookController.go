package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"rentalfront/app/echoServer/controller"
	"rentalfront/app/echoServer/validation"
	"rentalfront/model"
	booksvc "rentalfront/service/book"
	"rentalfront/util/ui"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	List *booksvc.ListView
	Add  *booksvc.AddView
	Rep  ui.Reporter
	Nav  *ui.Redirect
	Log  *slog.Logger
}

// POST /ui/books/open
func (h *Controller) Open(c echo.Context) error {
	if err := h.List.Init(c.Request().Context()); err != nil {
		return controller.Fail(err)
	}
	return h.state(c)
}

// GET /ui/books
func (h *Controller) State(c echo.Context) error { return h.state(c) }

// PUT /ui/books/available
func (h *Controller) SetAvailable(c echo.Context) error {
	var req AvailabilityReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	if err := h.List.SetShowOnlyAvailable(c.Request().Context(), *req.ShowOnlyAvailable); err != nil {
		return controller.Fail(err)
	}
	return h.state(c)
}

// PUT /ui/books/filters
func (h *Controller) SetFilters(c echo.Context) error {
	var req FiltersReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	h.List.SetFilters(req.Title, req.Author, req.Genre, req.ID)
	return h.state(c)
}

// POST /ui/books/search
func (h *Controller) Search(c echo.Context) error {
	if err := h.List.Search(c.Request().Context()); err != nil {
		return controller.Fail(err)
	}
	return h.state(c)
}

// POST /ui/books/lookup
func (h *Controller) Lookup(c echo.Context) error {
	if err := h.List.GetByID(c.Request().Context()); err != nil {
		return controller.Fail(err)
	}
	return h.state(c)
}

// POST /ui/books/reset
func (h *Controller) Reset(c echo.Context) error {
	if err := h.List.ResetSearch(c.Request().Context()); err != nil {
		return controller.Fail(err)
	}
	return h.state(c)
}

// POST /ui/books/:id/select
func (h *Controller) Select(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.List.Select(id); err != nil {
		return controller.Fail(err)
	}
	return h.state(c)
}

// PUT /ui/books/selected
func (h *Controller) Edit(c echo.Context) error {
	var req BookForm
	if err := h.bind(c, &req); err != nil {
		return err
	}
	if err := h.List.EditSelected(req.book()); err != nil {
		return controller.Fail(err)
	}
	return h.state(c)
}

// DELETE /ui/books/selected
func (h *Controller) Cancel(c echo.Context) error {
	h.List.CancelEdit()
	return h.state(c)
}

// POST /ui/books/selected/save
func (h *Controller) Save(c echo.Context) error {
	if err := h.List.SaveUpdate(c.Request().Context()); err != nil {
		return controller.Fail(err)
	}
	return h.state(c)
}

// DELETE /ui/books/:id?confirm=true
func (h *Controller) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	confirm := ui.ConfirmFunc(func(string) bool {
		ok, _ := strconv.ParseBool(c.QueryParam("confirm"))
		return ok
	})
	if err := h.List.DeleteBook(c.Request().Context(), id, confirm); err != nil {
		return controller.Fail(err)
	}
	return h.state(c)
}

// GET /ui/add-book
func (h *Controller) Draft(c echo.Context) error {
	return controller.Render(c, http.StatusOK, h.Add.Draft(), h.Nav)
}

// PUT /ui/add-book
func (h *Controller) SetDraft(c echo.Context) error {
	var req BookForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	h.Add.SetDraft(req.book())
	return controller.Render(c, http.StatusOK, h.Add.Draft(), h.Nav)
}

// POST /ui/add-book/submit
func (h *Controller) Submit(c echo.Context) error {
	d := h.Add.Draft()
	form := BookForm{Title: d.Title, Author: d.Author, Genre: d.Genre, Available: d.Available}
	if err := c.Validate(&form); err != nil {
		return h.invalid(c, err)
	}
	created, err := h.Add.AddBook(c.Request().Context())
	if err != nil {
		return controller.Fail(err)
	}
	return controller.Render(c, http.StatusCreated, created, h.Nav)
}

func (h *Controller) state(c echo.Context) error {
	return controller.Render(c, http.StatusOK, h.List.State(), h.Nav)
}

func (h *Controller) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		h.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if err := c.Validate(req); err != nil {
		return h.invalid(c, err)
	}
	return nil
}

func (h *Controller) invalid(c echo.Context, err error) error {
	h.Log.Warn("validation failed", "path", c.Path(), "err", err)
	h.Rep.Report(errors.New("please fill in all required fields"))
	return c.JSON(http.StatusBadRequest, echo.Map{
		"message": "validation error",
		"errors":  validation.Fields(err),
	})
}

func (f BookForm) book() model.Book {
	return model.Book{Title: f.Title, Author: f.Author, Genre: f.Genre, Available: f.Available}
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
