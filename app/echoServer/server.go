package echoServer

import (
	"log/slog"

	"rentalfront/app/echoServer/validation"

	"github.com/labstack/echo/v4"
)

// New builds the view server with middleware, validation and all routes.
func New(c C, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	RegisterMiddlewares(e, log)
	Register(e, c)
	return e
}
