package httpx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client issues JSON requests relative to a fixed base URL.
type Client struct {
	base string
	hc   *http.Client
	log  *slog.Logger
}

func New(baseURL string, hc *http.Client, log *slog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("httpx: base url must be absolute: " + baseURL)
	}
	if hc == nil {
		hc = NewHTTPClient(0)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), hc: hc, log: log}, nil
}

func (c *Client) BaseURL() string { return c.base }

// Do sends one request. in is encoded as the JSON body when non-nil, and a
// 2xx response body is decoded into out when out is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &Error{code: ErrEncode, Method: method, URL: target, Err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &Error{code: ErrTransport, Method: method, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("api request", "method", method, "url", target)
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("api transport failed", "method", method, "url", target, "err", err)
		return &Error{code: ErrTransport, Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		code := ErrStatus
		if resp.StatusCode == http.StatusNotFound {
			code = ErrNotFound
		}
		c.log.Warn("api status", "method", method, "url", target, "status", resp.StatusCode)
		return &Error{
			code:   code,
			Method: method,
			URL:    target,
			Status: resp.StatusCode,
			Err:    errors.New(strings.TrimSpace(string(msg))),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &Error{code: ErrDecode, Method: method, URL: target, Status: resp.StatusCode, Err: err}
	}
	return nil
}
