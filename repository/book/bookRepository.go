package bookrepo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"rentalfront/model"
	"rentalfront/util/httpx"
)

type Book = model.Book

// Repo is the client for the remote books endpoint. Every call is one round-trip.
type Repo struct{ api *httpx.Client }

func New(api *httpx.Client) *Repo { return &Repo{api: api} }

func (r *Repo) ListAll(ctx context.Context) ([]Book, error) {
	return r.list(ctx, "/books", nil)
}

func (r *Repo) ListAvailable(ctx context.Context) ([]Book, error) {
	return r.list(ctx, "/books/available", nil)
}

func (r *Repo) Search(ctx context.Context, s model.BookSearch) ([]Book, error) {
	return r.list(ctx, "/books/search", s.Query())
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Book, error) {
	var b Book
	if err := r.api.Do(ctx, http.MethodGet, path(id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) Create(ctx context.Context, b Book) (*Book, error) {
	var out Book
	if err := r.api.Do(ctx, http.MethodPost, "/books", nil, b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) Update(ctx context.Context, id int64, b Book) (*Book, error) {
	var out Book
	if err := r.api.Do(ctx, http.MethodPut, path(id), nil, b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.api.Do(ctx, http.MethodDelete, path(id), nil, nil, nil)
}

func (r *Repo) list(ctx context.Context, p string, q url.Values) ([]Book, error) {
	var out []Book
	if err := r.api.Do(ctx, http.MethodGet, p, q, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Book{}
	}
	return out, nil
}

func path(id int64) string { return "/books/" + strconv.FormatInt(id, 10) }
