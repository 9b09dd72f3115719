package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tboywixxy/yorkshire-global/binder"
	"github.com/tboywixxy/yorkshire-global/handler"
	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

type greetRequest struct {
	Name string `json:"name"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, body io.Reader) handler.ErrorBody {
	t.Helper()
	var eb handler.ErrorBody
	require.NoError(t, json.NewDecoder(body).Decode(&eb))
	return eb
}

func TestWrap(t *testing.T) {
	t.Parallel()

	greet := handler.HandlerFunc[handler.Context, greetRequest](func(ctx handler.Context, req greetRequest) handler.Response {
		if req.Name == "" {
			return handler.Fail(handler.NewHTTPError(http.StatusBadRequest, "name_required", "Name is required."))
		}
		return handler.JSON(map[string]string{"hello": req.Name})
	})

	h := handler.Wrap(greet,
		handler.WithBinder[handler.Context, greetRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, greetRequest](handler.NewErrorHandler(discardLogger())),
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`{"name":"Jane"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		h(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"hello":"Jane"}`, w.Body.String())
	})

	t.Run("handler error", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`{"name":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		h(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		eb := decodeError(t, w.Body)
		assert.Equal(t, "Name is required.", eb.Error)
		assert.Equal(t, "name_required", eb.Code)
	})

	t.Run("binder error", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		h(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeError(t, w.Body).Code)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`name=x`))
		req.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()

		h(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

func TestWrap_DecoratorsOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	trace := func(name string) handler.Decorator[handler.Context, greetRequest] {
		return func(next handler.HandlerFunc[handler.Context, greetRequest]) handler.HandlerFunc[handler.Context, greetRequest] {
			return func(ctx handler.Context, req greetRequest) handler.Response {
				calls = append(calls, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(handler.HandlerFunc[handler.Context, greetRequest](func(ctx handler.Context, req greetRequest) handler.Response {
		calls = append(calls, "handler")
		return handler.JSON(nil)
	}), handler.WithDecorators(trace("outer"), trace("inner")))

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(handler.HandlerFunc[handler.Context, greetRequest](func(ctx handler.Context, req greetRequest) handler.Response {
		return nil
	}))
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "nil response")
}

var errForbidden = handler.NewHTTPError(http.StatusForbidden, "forbidden", "Forbidden.")

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	errDomain := errors.New("smtp: 535 authentication failed")

	tests := []struct {
		name       string
		err        error
		opts       []handler.ErrorHandlerOption
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "unknown error is generic",
			err:        errDomain,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_server_error",
			wantError:  "Server error.",
		},
		{
			name:       "http error",
			err:        errForbidden.WithCause(errDomain),
			wantStatus: http.StatusForbidden,
			wantCode:   "forbidden",
			wantError:  "Forbidden.",
		},
		{
			name:       "body too large",
			err:        binder.ErrBodyTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "request_entity_too_large",
			wantError:  "Request is too large.",
		},
		{
			name: "classifier wins",
			err:  errDomain,
			opts: []handler.ErrorHandlerOption{handler.WithClassifier(func(err error) (handler.HTTPError, bool) {
				if errors.Is(err, errDomain) {
					return handler.NewHTTPError(http.StatusBadGateway, "relay_down", "Relay unavailable."), true
				}
				return handler.HTTPError{}, false
			})},
			wantStatus: http.StatusBadGateway,
			wantCode:   "relay_down",
			wantError:  "Relay unavailable.",
		},
		{
			name: "translated message",
			err:  errForbidden,
			opts: []handler.ErrorHandlerOption{handler.WithTranslator(func(_ context.Context, key, fallback string) string {
				if key == "forbidden" {
					return "Interdit."
				}
				return fallback
			})},
			wantStatus: http.StatusForbidden,
			wantCode:   "forbidden",
			wantError:  "Interdit.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			ctx := handler.NewContext(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

			handler.NewErrorHandler(discardLogger(), tt.opts...)(ctx, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			eb := decodeError(t, w.Body)
			assert.Equal(t, tt.wantCode, eb.Code)
			assert.Equal(t, tt.wantError, eb.Error)
			assert.NotContains(t, eb.Error, "535")
		})
	}
}

func TestNewErrorHandler_ValidationDetails(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{
		{Field: "email", Message: "invalid", TranslationKey: "emailInvalid"},
		{Field: "phone", Message: "too long"},
	}

	w := httptest.NewRecorder()
	ctx := handler.NewContext(w, httptest.NewRequest(http.MethodPost, "/", nil))
	handler.NewErrorHandler(discardLogger())(ctx, verrs)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	eb := decodeError(t, w.Body)
	assert.Equal(t, []string{"emailInvalid"}, eb.Details["email"])
	assert.Equal(t, []string{"too long"}, eb.Details["phone"])
}
