package httpx_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"rentalfront/util/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func newClient(t *testing.T, h http.HandlerFunc) *httpx.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := httpx.New(srv.URL+"/api/", srv.Client(), nil)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := httpx.New("/api", nil, nil)
	require.Error(t, err)
}

func TestDo_EncodesAndDecodes(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/things", r.URL.Path)
		assert.Equal(t, "a", r.URL.Query().Get("q"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"in"}`, string(b))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"out"}`))
	})

	var out payload
	err := c.Do(context.Background(), http.MethodPost, "/things", url.Values{"q": {"a"}}, payload{Name: "in"}, &out)
	require.NoError(t, err)
	require.Equal(t, "out", out.Name)
}

func TestDo_NotFound(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such book", http.StatusNotFound)
	})

	err := c.Do(context.Background(), http.MethodGet, "/books/9", nil, nil, &payload{})
	require.Error(t, err)
	require.True(t, httpx.IsNotFound(err))

	var he *httpx.Error
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusNotFound, he.Status)
}

func TestDo_ServerError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.Do(context.Background(), http.MethodGet, "/books", nil, nil, nil)
	require.Equal(t, httpx.ErrStatus, httpx.Code(err))
}

func TestDo_DecodeError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	err := c.Do(context.Background(), http.MethodGet, "/books", nil, nil, &payload{})
	require.Equal(t, httpx.ErrDecode, httpx.Code(err))
}

func TestDo_EncodeError(t *testing.T) {
	called := false
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	err := c.Do(context.Background(), http.MethodPost, "/books", nil, make(chan int), nil)
	require.Equal(t, httpx.ErrEncode, httpx.Code(err))
	require.False(t, called, "nothing is sent when the body cannot be encoded")
}

func TestDo_EmptyBodyIsNotAnError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Do(context.Background(), http.MethodDelete, "/books/1", nil, nil, &payload{}))
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := httpx.New(base, nil, nil)
	require.NoError(t, err)

	err = c.Do(context.Background(), http.MethodGet, "/books", nil, nil, nil)
	require.Equal(t, httpx.ErrTransport, httpx.Code(err))
}

func TestCode_ForeignError(t *testing.T) {
	require.Equal(t, httpx.ErrCode(""), httpx.Code(io.EOF))
}
