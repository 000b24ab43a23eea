package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/thoura/internal/version"
)

type thouraTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*thouraTransport)(nil)

func (t *thouraTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, version.UserAgent())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard thoura headers.
func NewTransport() http.RoundTripper {
	return &thouraTransport{base: http.DefaultTransport}
}
