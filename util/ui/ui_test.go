package ui_test

import (
	"errors"
	"testing"

	"rentalfront/util/ui"

	"github.com/stretchr/testify/require"
)

func TestNotices_DrainOrderAndReset(t *testing.T) {
	n := ui.NewNotices(nil)
	n.Report(errors.New("boom"))
	n.Notify("Book added successfully")
	n.Report(nil)

	got := n.Drain()
	require.Len(t, got, 2)
	require.Equal(t, ui.LevelError, got[0].Level)
	require.Equal(t, "boom", got[0].Message)
	require.Equal(t, ui.LevelInfo, got[1].Level)

	require.Empty(t, n.Drain())
}

func TestRedirect_Take(t *testing.T) {
	var r ui.Redirect
	_, ok := r.Take()
	require.False(t, ok)

	r.Navigate(ui.RouteBooks)
	to, ok := r.Take()
	require.True(t, ok)
	require.Equal(t, ui.RouteBooks, to)

	_, ok = r.Take()
	require.False(t, ok)
}

func TestAlways(t *testing.T) {
	require.True(t, ui.Always(true).Confirm("?"))
	require.False(t, ui.Always(false).Confirm("?"))
}
