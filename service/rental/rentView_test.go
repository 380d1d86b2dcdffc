package rentalsvc_test

import (
	"context"
	"errors"
	"testing"

	"rentalfront/model"
	rentalsvc "rentalfront/service/rental"
	"rentalfront/util/ui"

	"github.com/stretchr/testify/require"
)

type booksMock struct {
	listAvailableFn func(ctx context.Context) ([]model.Book, error)
}

func (m *booksMock) ListAvailable(ctx context.Context) ([]model.Book, error) {
	return m.listAvailableFn(ctx)
}

type rentalsMock struct {
	createFn func(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error)
	listFn   func(ctx context.Context) ([]model.Rental, error)
	creates  int
}

func (m *rentalsMock) Create(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error) {
	m.creates++
	return m.createFn(ctx, req)
}

func (m *rentalsMock) ListAll(ctx context.Context) ([]model.Rental, error) { return m.listFn(ctx) }

type reporterMock struct {
	errs    []error
	notices []string
}

func (r *reporterMock) Report(err error)  { r.errs = append(r.errs, err) }
func (r *reporterMock) Notify(msg string) { r.notices = append(r.notices, msg) }

var shelf = []model.Book{
	{BookID: model.Int64(1), Title: "Dune", Available: true},
	{BookID: model.Int64(2), Title: "Emma", Available: true},
}

func newRentView(rm *rentalsMock, rep *reporterMock, nav ui.Navigator) *rentalsvc.RentView {
	bm := &booksMock{listAvailableFn: func(ctx context.Context) ([]model.Book, error) { return shelf, nil }}
	return rentalsvc.NewRentView(bm, rm, rep, nav)
}

func TestToggleSelection_TwiceIsNoOp(t *testing.T) {
	v := newRentView(&rentalsMock{}, &reporterMock{}, &ui.Redirect{})
	v.ToggleSelection(3)
	before := v.State().SelectedIDs

	v.ToggleSelection(5)
	require.True(t, v.IsSelected(5))
	v.ToggleSelection(5)
	require.False(t, v.IsSelected(5))

	require.Equal(t, before, v.State().SelectedIDs)
}

func TestInit_LoadsAvailable(t *testing.T) {
	v := newRentView(&rentalsMock{}, &reporterMock{}, &ui.Redirect{})
	require.NoError(t, v.Init(context.Background()))
	require.Equal(t, shelf, v.State().AvailableBooks)
}

func TestInit_Failure(t *testing.T) {
	rep := &reporterMock{}
	bm := &booksMock{listAvailableFn: func(ctx context.Context) ([]model.Book, error) { return nil, errors.New("down") }}
	v := rentalsvc.NewRentView(bm, &rentalsMock{}, rep, &ui.Redirect{})

	require.Error(t, v.Init(context.Background()))
	require.Empty(t, v.State().AvailableBooks)
	require.Len(t, rep.errs, 1)
}

func TestRentBooks_SendsSelection(t *testing.T) {
	var sent model.CreateRentalReq
	rm := &rentalsMock{createFn: func(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error) {
		sent = req
		return &model.Rental{RentalID: model.Int64(1), UserDetails: req.UserDetails}, nil
	}}
	rep := &reporterMock{}
	nav := &ui.Redirect{}
	v := newRentView(rm, rep, nav)

	v.ToggleSelection(2)
	v.ToggleSelection(1)
	v.SetDetails("Ann", "2026-10-01", "2026-10-15")

	out, err := v.RentBooks(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), *out.RentalID)
	require.Equal(t, model.CreateRentalReq{
		UserDetails: "Ann",
		RentalDate:  "2026-10-01",
		ReturnDate:  "2026-10-15",
		BookIDs:     []int64{1, 2},
	}, sent)

	to, ok := nav.Take()
	require.True(t, ok)
	require.Equal(t, ui.RouteRentalHistory, to)
	require.Equal(t, []string{"Books rented successfully"}, rep.notices)

	st := v.State()
	require.Empty(t, st.SelectedIDs)
	require.Empty(t, st.UserDetails)
}

func TestRentBooks_EmptySelectionStillSubmits(t *testing.T) {
	var sent model.CreateRentalReq
	rm := &rentalsMock{createFn: func(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error) {
		sent = req
		return &model.Rental{}, nil
	}}
	v := newRentView(rm, &reporterMock{}, &ui.Redirect{})

	_, err := v.RentBooks(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, rm.creates)
	require.NotNil(t, sent.BookIDs)
	require.Empty(t, sent.BookIDs)
}

func TestRentBooks_FailureKeepsForm(t *testing.T) {
	rm := &rentalsMock{createFn: func(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error) {
		return nil, errors.New("404")
	}}
	rep := &reporterMock{}
	nav := &ui.Redirect{}
	v := newRentView(rm, rep, nav)
	v.ToggleSelection(1)
	v.SetDetails("Ann", "a", "b")

	_, err := v.RentBooks(context.Background())
	require.Error(t, err)
	require.Len(t, rep.errs, 1)
	require.Equal(t, []int64{1}, v.State().SelectedIDs)
	require.Equal(t, "Ann", v.State().UserDetails)
	_, ok := nav.Take()
	require.False(t, ok)
}
