package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	"rentalfront/app/echoServer/controller"
	rentalsvc "rentalfront/service/rental"
	"rentalfront/util/ui"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Rent    *rentalsvc.RentView
	History *rentalsvc.HistoryView
	Nav     *ui.Redirect
	Log     *slog.Logger
}

// POST /ui/rent-book/open
func (h *Controller) Open(c echo.Context) error {
	if err := h.Rent.Init(c.Request().Context()); err != nil {
		return controller.Fail(err)
	}
	return h.rentState(c, http.StatusOK)
}

// GET /ui/rent-book
func (h *Controller) State(c echo.Context) error { return h.rentState(c, http.StatusOK) }

// POST /ui/rent-book/toggle/:id
func (h *Controller) Toggle(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	h.Rent.ToggleSelection(id)
	return h.rentState(c, http.StatusOK)
}

// PUT /ui/rent-book/details
func (h *Controller) Details(c echo.Context) error {
	var req DetailsReq
	if err := c.Bind(&req); err != nil {
		h.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	h.Rent.SetDetails(req.UserDetails, req.RentalDate, req.ReturnDate)
	return h.rentState(c, http.StatusOK)
}

// POST /ui/rent-book/submit
func (h *Controller) Submit(c echo.Context) error {
	out, err := h.Rent.RentBooks(c.Request().Context())
	if err != nil {
		return controller.Fail(err)
	}
	return controller.Render(c, http.StatusCreated, out, h.Nav)
}

// POST /ui/rental-history/open
func (h *Controller) OpenHistory(c echo.Context) error {
	if err := h.History.Init(c.Request().Context()); err != nil {
		return controller.Fail(err)
	}
	return controller.Render(c, http.StatusOK, h.History.Rentals(), h.Nav)
}

// GET /ui/rental-history
func (h *Controller) HistoryState(c echo.Context) error {
	return controller.Render(c, http.StatusOK, h.History.Rentals(), h.Nav)
}

func (h *Controller) rentState(c echo.Context, status int) error {
	return controller.Render(c, status, h.Rent.State(), h.Nav)
}
