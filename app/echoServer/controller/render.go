// Package controller holds helpers shared by the view endpoints.
package controller

import (
	"net/http"

	booksvc "rentalfront/service/book"
	"rentalfront/util/httpx"
	"rentalfront/util/ui"

	"github.com/labstack/echo/v4"
)

// Render writes {"data": ..., "redirect": ...}; redirect is present only
// when a controller asked to navigate.
func Render(c echo.Context, status int, data any, nav *ui.Redirect) error {
	body := echo.Map{"data": data}
	if nav != nil {
		if to, ok := nav.Take(); ok {
			body["redirect"] = to
		}
	}
	return c.JSON(status, body)
}

// Status maps a controller or transport failure to an HTTP status.
func Status(err error) int {
	if booksvc.Code(err) != "" {
		return http.StatusBadRequest
	}
	switch httpx.Code(err) {
	case httpx.ErrNotFound:
		return http.StatusNotFound
	case httpx.ErrTransport, httpx.ErrStatus, httpx.ErrDecode:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Fail turns an already reported failure into an HTTP error response.
func Fail(err error) error {
	return echo.NewHTTPError(Status(err), err.Error())
}
