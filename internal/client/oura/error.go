package oura

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	go_json "github.com/goccy/go-json"
)

// ErrUnauthorized matches an *APIError carrying a 401 via errors.Is.
var ErrUnauthorized = errors.New("oura: unauthorized")

// APIError is returned when the server answered with a non-200 status.
// List calls return it alongside an empty, non-nil slice.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("oura api: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// AuthError is returned when no access token could be obtained for a request.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "oura auth: " + e.Err.Error() }

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError is returned when the request never produced a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "oura transport: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is returned when a 200 response body does not hold the expected envelope.
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string { return "oura decode: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsHTTPError reports whether err is a server-side status failure rather than
// a transport, auth or decode failure.
func IsHTTPError(err error) bool {
	return AsAPIError(err) != nil
}

func parseAPIError(resp *http.Response) *APIError {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	var errResp struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Title   string `json:"title"`
		Error   string `json:"error"`
	}

	if err := go_json.Unmarshal(body, &errResp); err != nil {
		msg := string(bytes.TrimSpace(body))
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	msg := firstNonEmpty(errResp.Message, errResp.Detail, errResp.Title, errResp.Error, resp.Status)

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
