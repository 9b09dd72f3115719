// Package turnstile verifies Cloudflare Turnstile tokens server-side.
//
//	v, err := turnstile.New(cfg)
//	if _, err := v.Verify(ctx, token, clientIP); err != nil {
//	    switch {
//	    case errors.Is(err, turnstile.ErrMissingToken):
//	    case errors.Is(err, turnstile.ErrRejected):
//	    case errors.Is(err, turnstile.ErrUnavailable):
//	    }
//	}
//
// Tokens are single use; Cloudflare rejects a replayed token with the
// timeout-or-duplicate error code. Every call is bounded by the configured
// timeout.
package turnstile
