package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string              `json:"error"`
	Code    string              `json:"code,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets the status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON renders v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as an ErrorBody. HTTPError keeps its status, key,
// message and details; any other error becomes a generic 500 so internal
// detail never reaches the client.
func JSONError(err error, opts ...JSONOption) Response {
	httpErr := ErrInternalServerError
	if !errors.As(err, &httpErr) {
		httpErr = ErrInternalServerError
	}

	r := &jsonResponse{
		status: httpErr.Code,
		body: ErrorBody{
			Error:   httpErr.PublicMessage(),
			Code:    httpErr.Key,
			Details: httpErr.Details,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type failResponse struct{ err error }

func (f failResponse) Render(http.ResponseWriter, *http.Request) error { return f.err }

// Fail returns a Response that hands err to the configured ErrorHandler
// instead of writing anything itself.
func Fail(err error) Response {
	if err == nil {
		err = ErrNilResponse
	}
	return failResponse{err: err}
}
