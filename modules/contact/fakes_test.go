package contact_test

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/tboywixxy/yorkshire-global/pkg/email"
	"github.com/tboywixxy/yorkshire-global/pkg/file"
	"github.com/tboywixxy/yorkshire-global/pkg/turnstile"
)

// recordingSender captures sent messages and can fail the nth send (1-based).
type recordingSender struct {
	mu     sync.Mutex
	sent   []email.SendEmailParams
	failOn int
	err    error
	ctxErr []error
}

func (r *recordingSender) SendEmail(ctx context.Context, p email.SendEmailParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctxErr = append(r.ctxErr, ctx.Err())
	if r.failOn > 0 && len(r.sent)+1 == r.failOn {
		r.failOn = 0
		if r.err == nil {
			return errors.New("smtp: connection reset")
		}
		return r.err
	}
	r.sent = append(r.sent, p)
	return nil
}

func (r *recordingSender) Sent() []email.SendEmailParams {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]email.SendEmailParams(nil), r.sent...)
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(ctx context.Context, token, remoteIP string) (*turnstile.Response, error) {
	args := m.Called(ctx, token, remoteIP)
	resp, _ := args.Get(0).(*turnstile.Response)
	return resp, args.Error(1)
}

type stubAssets struct {
	asset *file.Asset
	err   error
	reads int
}

func (s *stubAssets) Read(context.Context, string) (*file.Asset, error) {
	s.reads++
	if s.err != nil {
		return nil, s.err
	}
	return s.asset, nil
}

func (s *stubAssets) Exists(context.Context, string) bool {
	return s.err == nil
}

var pngLogo = []byte("\x89PNG\r\n\x1a\nfake-logo")
