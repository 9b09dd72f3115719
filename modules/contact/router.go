package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is anything that can be mounted under the API router.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures what the API router mounts. Nil entries are skipped.
type RouterOptions struct {
	Contact     Mountable
	Middlewares []func(http.Handler) http.Handler
}

// Router creates the /api subrouter.
//
// Example:
//
//	svc := contact.NewService(cfg, sender, contact.WithVerifier(verifier))
//	h := contact.NewHandler(svc, contact.NewErrorHandler(log, translator))
//
//	r := chi.NewRouter()
//	r.Mount("/api", contact.Router(contact.RouterOptions{Contact: h}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(opts.Middlewares...)

	if opts.Contact != nil {
		r.Mount("/contact", opts.Contact.Handle())
	}

	return r
}
