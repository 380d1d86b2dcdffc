package echoServer

import (
	"net/http"

	"rentalfront/app/echoServer/controller"
	"rentalfront/app/echoServer/controller/book"
	"rentalfront/app/echoServer/controller/rental"
	"rentalfront/util/ui"

	"github.com/labstack/echo/v4"
)

type C struct {
	Book    *book.Controller
	Rental  *rental.Controller
	Notices *ui.Notices
	APIURL  string
}

func Register(e *echo.Echo, c C) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{
			"status": "ok",
			"api":    c.APIURL,
		})
	})

	g := e.Group("/ui")
	g.GET("/notices", func(ctx echo.Context) error {
		return controller.Render(ctx, http.StatusOK, c.Notices.Drain(), nil)
	})

	// Book list
	g.POST("/books/open", c.Book.Open)
	g.GET("/books", c.Book.State)
	g.PUT("/books/available", c.Book.SetAvailable)
	g.PUT("/books/filters", c.Book.SetFilters)
	g.POST("/books/search", c.Book.Search)
	g.POST("/books/lookup", c.Book.Lookup)
	g.POST("/books/reset", c.Book.Reset)
	g.POST("/books/:id/select", c.Book.Select)
	g.PUT("/books/selected", c.Book.Edit)
	g.DELETE("/books/selected", c.Book.Cancel)
	g.POST("/books/selected/save", c.Book.Save)
	g.DELETE("/books/:id", c.Book.Delete)

	// Add book
	g.GET("/add-book", c.Book.Draft)
	g.PUT("/add-book", c.Book.SetDraft)
	g.POST("/add-book/submit", c.Book.Submit)

	// Rent books
	g.POST("/rent-book/open", c.Rental.Open)
	g.GET("/rent-book", c.Rental.State)
	g.POST("/rent-book/toggle/:id", c.Rental.Toggle)
	g.PUT("/rent-book/details", c.Rental.Details)
	g.POST("/rent-book/submit", c.Rental.Submit)

	// History
	g.POST("/rental-history/open", c.Rental.OpenHistory)
	g.GET("/rental-history", c.Rental.HistoryState)
}
