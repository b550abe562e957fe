package insta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBase      = "https://i.instagram.com/api/v1"
	defaultUserAgent = "Instagram 275.0.0.27.98 Android"
)

type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string

	// sesión activa (token bearer + viewer), seteada por Login/RestoreSession
	token    string
	viewerID string
}

func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: 10 * time.Second},
		baseURL:   defaultBase,
		userAgent: defaultUserAgent,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ViewerID es el pk del usuario logueado (vacío si no hay sesión).
func (c *Client) ViewerID() string { return c.viewerID }

// doJSON: arma URL, agrega auth + user-agent, maneja 401/404 y 429 con
// Retry-After simple. form != nil => POST x-www-form-urlencoded.
func (c *Client) doJSON(ctx context.Context, method, path string, q, form url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, _ := http.NewRequestWithContext(ctx, method, u, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("insta http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests {
		// backoff básico leyendo Retry-After (segundos)
		if ra := res.Header.Get("Retry-After"); ra != "" {
			if sec, _ := strconv.Atoi(ra); sec > 0 {
				select {
				case <-time.After(time.Duration(sec) * time.Second):
				case <-ctx.Done():
					return ctx.Err()
				}
				// un reintento
				return c.doJSON(ctx, method, path, q, form, out)
			}
		}
	}

	if res.StatusCode == http.StatusUnauthorized {
		return ErrLoginRequired
	}
	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
