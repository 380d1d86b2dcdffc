// Package main serves the library desk: book listing, book creation,
// rentals and rental history, on top of the remote library REST API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentalfront/app/echoServer"
	bookctrl "rentalfront/app/echoServer/controller/book"
	rentalctrl "rentalfront/app/echoServer/controller/rental"
	"rentalfront/app/stubServer"
	"rentalfront/config"
	bookrepo "rentalfront/repository/book"
	rentalrepo "rentalfront/repository/rental"
	booksvc "rentalfront/service/book"
	rentalsvc "rentalfront/service/rental"
	"rentalfront/util/httpx"
	"rentalfront/util/ui"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var stub *echo.Echo
	if cfg.StubAPIPort != "" {
		stub = stubServer.New(stubServer.NewStore(), log, "/api")
		go func() {
			log.Info("starting stub api", "port", cfg.StubAPIPort)
			if err := stub.Start(":" + cfg.StubAPIPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("stub api stopped", "err", err)
			}
		}()
	}

	// remote api
	api, err := httpx.New(cfg.APIURL, httpx.NewHTTPClient(cfg.APITimeout), log)
	if err != nil {
		log.Error("api client", "err", err)
		os.Exit(1)
	}

	// repos
	br := bookrepo.New(api)
	rr := rentalrepo.New(api)

	// views
	notices := ui.NewNotices(log)
	nav := &ui.Redirect{}
	list := booksvc.NewListView(br, notices)
	add := booksvc.NewAddView(br, notices, nav)
	rent := rentalsvc.NewRentView(br, rr, notices, nav)
	history := rentalsvc.NewHistoryView(rr, notices)

	// controllers
	bookC := &bookctrl.Controller{List: list, Add: add, Rep: notices, Nav: nav, Log: log}
	rentalC := &rentalctrl.Controller{Rent: rent, History: history, Nav: nav, Log: log}

	e := echoServer.New(echoServer.C{
		Book:    bookC,
		Rental:  rentalC,
		Notices: notices,
		APIURL:  api.BaseURL(),
	}, log)

	go func() {
		log.Info("starting server", "port", cfg.Port, "api", api.BaseURL(), "env", cfg.Env)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
	if stub != nil {
		_ = stub.Shutdown(shutdownCtx)
	}
}
