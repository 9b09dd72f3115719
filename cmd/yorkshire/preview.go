package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tboywixxy/yorkshire-global/modules/contact"
	"github.com/tboywixxy/yorkshire-global/pkg/config"
	"github.com/tboywixxy/yorkshire-global/pkg/email"
	"github.com/tboywixxy/yorkshire-global/pkg/file"
	"github.com/tboywixxy/yorkshire-global/pkg/logger"
)

func newPreviewCmd() *cobra.Command {
	var (
		out   string
		owner string
		sub   contact.Submission
	)

	cmd := &cobra.Command{
		Use:     "preview",
		Aliases: []string{"p"},
		Short:   "Render the owner and acknowledgment emails to a directory",
		Long: `preview runs a sample submission through the contact service with the
development mail sender, so both emails land in --out as HTML, text and
attachments. CAPTCHA is skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				app    AppConfig
				logCfg logger.Config
				assets file.Config
				cfg    contact.Config
			)
			for _, err := range []error{
				config.Load(&app),
				config.Load(&logCfg),
				config.Load(&assets),
				config.Load(&cfg),
			} {
				if err != nil {
					return err
				}
			}

			log, closer, err := newLogger(app, logCfg, cmd.ErrOrStderr(), cmd.Name())
			if err != nil {
				return err
			}
			defer closer.Close()

			store, err := file.New(cmd.Context(), assets)
			if err != nil {
				return err
			}

			cfg.OwnerEmail = owner
			cfg.CaptchaEnabled = false
			if err := cfg.Validate(); err != nil {
				return err
			}

			svc := contact.NewService(cfg, email.NewDevSender(out, email.WithDevLogger(log)),
				contact.WithAssets(store),
				contact.WithLogger(log),
			)

			sub.StartedAt = time.Now().Add(-time.Minute).UnixMilli()
			if err := svc.Submit(cmd.Context(), sub); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "emails written to %s\n", out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&out, "out", "./tmp/mail", "directory to write the emails to")
	f.StringVar(&owner, "owner", "owner@yorkshireglobal.example", "owner inbox address")
	f.StringVar(&sub.FullName, "name", "Jane Doe", "submitter full name")
	f.StringVar(&sub.Email, "email", "jane@acme.com", "submitter email")
	f.StringVar(&sub.Phone, "phone", "+1 416 555 0123", "submitter phone")
	f.StringVar(&sub.Organization, "organization", "Acme Inc", "submitter organization")
	f.StringVar(&sub.Service, "service", contact.ServiceCybersecurity, "service key")
	f.StringVar(&sub.Message, "message", "We would like a security review of our release process.\nCan we talk next week?", "message body")
	return cmd
}
