package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tboywixxy/yorkshire-global/binder"
	"github.com/tboywixxy/yorkshire-global/handler"
)

// Submitter is the orchestrator behind the HTTP handler.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// Handler serves POST /api/contact.
type Handler struct {
	svc          Submitter
	bind         handler.Bind
	errorHandler handler.ErrorHandler[handler.Context]
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithBinder replaces the strict JSON binder.
func WithBinder(b handler.Bind) HandlerOption {
	return func(h *Handler) {
		if b != nil {
			h.bind = b
		}
	}
}

// NewHandler creates the POST /contact handler. Requests are bound with
// binder.JSON unless WithBinder replaces it; errorHandler writes every
// failure response.
func NewHandler(svc Submitter, errorHandler handler.ErrorHandler[handler.Context], opts ...HandlerOption) *Handler {
	h := &Handler{
		svc:          svc,
		bind:         binder.JSON(),
		errorHandler: errorHandler,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle implements Mountable.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(h.submit,
		handler.WithBinder[handler.Context, Submission](h.bindPayload),
		handler.WithErrorHandler[handler.Context, Submission](h.errorHandler),
	))

	return r
}

// bindPayload reports every parse failure as ErrInvalidPayload.
func (h *Handler) bindPayload(r *http.Request, v any) error {
	if err := h.bind(r, v); err != nil {
		return errors.Join(ErrInvalidPayload, err)
	}
	return nil
}

func (h *Handler) submit(ctx handler.Context, req Submission) handler.Response {
	if err := h.svc.Submit(ctx, req); err != nil {
		return handler.Fail(err)
	}
	return handler.JSON(SubmitResponse{OK: true})
}
