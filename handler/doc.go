// Package handler provides type-safe HTTP handlers.
//
// A HandlerFunc receives a Context and a request value that binders have
// already decoded, and returns a Response. Wrap adapts it to net/http:
//
//	submit := func(ctx handler.Context, req contact.Submission) handler.Response {
//		if err := svc.Submit(ctx, req); err != nil {
//			return handler.Fail(err)
//		}
//		return handler.JSON(map[string]bool{"ok": true})
//	}
//
//	r.Post("/api/contact", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, contact.Submission](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, contact.Submission](
//			handler.NewErrorHandler(log, handler.WithClassifier(contact.ClassifyError)),
//		),
//	))
//
// Binding, handler and render errors all reach the ErrorHandler.
// NewErrorHandler renders them as ErrorBody JSON. HTTPError carries the
// status code and client-safe message; anything unrecognised is a 500
// with a generic message, and the cause is only logged.
package handler
