package templates_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tboywixxy/yorkshire-global/pkg/email/templates"
)

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := templates.Render(context.Background(), templates.Join(
		templates.Text("<b>"),
		nil,
		templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, templ.EscapeString("a & b"))
			return err
		}),
		templates.Text("</b>"),
	))
	require.NoError(t, err)
	assert.Equal(t, "<b>a &amp; b</b>", out)
}

func TestRender_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out, err := templates.Render(context.Background(), templates.Join(
		templates.Text("partial"),
		templ.ComponentFunc(func(context.Context, io.Writer) error { return boom }),
	))
	require.ErrorIs(t, err, boom)
	assert.Empty(t, out)
}
