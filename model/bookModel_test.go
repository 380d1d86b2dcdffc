package model_test

import (
	"testing"

	"rentalfront/model"

	"github.com/stretchr/testify/require"
)

func TestClone_Independent(t *testing.T) {
	b := model.Book{BookID: model.Int64(3), Title: "Dune", Author: "Herbert", Genre: "SF"}
	c := b.Clone()

	*c.BookID = 9
	c.Title = "Other"

	require.Equal(t, int64(3), *b.BookID)
	require.Equal(t, "Dune", b.Title)
}

func TestID(t *testing.T) {
	_, ok := model.NewDraftBook().ID()
	require.False(t, ok)

	id, ok := model.Book{BookID: model.Int64(7)}.ID()
	require.True(t, ok)
	require.Equal(t, int64(7), id)
}

func TestNewDraftBook_Available(t *testing.T) {
	b := model.NewDraftBook()
	require.True(t, b.Available)
	require.Empty(t, b.Title)
	require.Nil(t, b.BookID)
}

func TestBookSearch_QueryOmitsEmpty(t *testing.T) {
	q := model.BookSearch{Title: "X", Genre: ""}.Query()
	require.Equal(t, "X", q.Get("title"))
	require.False(t, q.Has("author"))
	require.False(t, q.Has("genre"))

	require.Empty(t, model.BookSearch{}.Query().Encode())
}

func TestRentalClone_Independent(t *testing.T) {
	r := model.Rental{
		RentalID: model.Int64(1),
		Books:    []model.Book{{BookID: model.Int64(2), Title: "Dune"}},
	}
	c := r.Clone()

	*c.RentalID = 5
	*c.Books[0].BookID = 9
	c.Books[0].Title = "Other"

	require.Equal(t, int64(1), *r.RentalID)
	require.Equal(t, int64(2), *r.Books[0].BookID)
	require.Equal(t, "Dune", r.Books[0].Title)
}
