package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tboywixxy/yorkshire-global/client/contactform"
	"github.com/tboywixxy/yorkshire-global/modules/contact"
)

type submitResult struct {
	State     contactform.State `json:"state"`
	Popup     contactform.Popup `json:"popup"`
	FormError string            `json:"formError,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func newSubmitCmd() *cobra.Command {
	var (
		endpoint string
		lang     string
		token    string
		wait     time.Duration
		timeout  time.Duration
	)
	fields := map[string]*string{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Fill the contact form and post it to a running server",
		Long: `submit drives the client form controller the way the website does:
it fills the fields, waits past the speed gate, validates locally and posts
to --url. The outcome is printed as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opts := []contactform.Option{contactform.WithEndpoint(endpoint)}
			if lang != "" {
				opts = append(opts, contactform.WithLanguage(lang))
			}
			form := contactform.New(&http.Client{Timeout: timeout}, opts...)

			for field, value := range fields {
				if err := form.Set(field, *value); err != nil {
					return err
				}
			}
			form.SetToken(token)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}

			submitErr := form.Submit(ctx)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(submitResult{
				State:     form.State(),
				Popup:     form.Popup(),
				FormError: form.FormError(),
				Errors:    form.Errors(),
			}); err != nil {
				return errors.Join(submitErr, err)
			}
			return submitErr
		},
	}

	f := cmd.Flags()
	f.StringVar(&endpoint, "url", "http://localhost:8080"+contactform.DefaultEndpoint, "contact endpoint")
	f.StringVar(&lang, "lang", "", "language for server messages (en, fr, de, zh)")
	f.StringVar(&token, "token", "", "Turnstile token")
	f.DurationVar(&wait, "wait", contact.DefaultMinElapsed, "time to wait before submitting")
	f.DurationVar(&timeout, "timeout", 30*time.Second, "HTTP client timeout")

	for _, field := range []struct{ name, value, usage string }{
		{contact.FieldFullName, "", "full name"},
		{contact.FieldEmail, "", "email address"},
		{contact.FieldPhone, "", "phone number"},
		{contact.FieldOrganization, "", "organization"},
		{contact.FieldService, contact.ServiceSSDLC, "service key"},
		{contact.FieldMessage, "", "message"},
	} {
		fields[field.name] = f.String(field.name, field.value, field.usage)
	}
	return cmd
}
