package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/tboywixxy/yorkshire-global/modules/contact"
	"github.com/tboywixxy/yorkshire-global/pkg/clientip"
	"github.com/tboywixxy/yorkshire-global/pkg/email"
	"github.com/tboywixxy/yorkshire-global/pkg/environment"
	"github.com/tboywixxy/yorkshire-global/pkg/file"
	"github.com/tboywixxy/yorkshire-global/pkg/httpserver"
	"github.com/tboywixxy/yorkshire-global/pkg/i18n"
	"github.com/tboywixxy/yorkshire-global/pkg/logger"
	"github.com/tboywixxy/yorkshire-global/pkg/requestid"
	"github.com/tboywixxy/yorkshire-global/pkg/turnstile"
)

const readinessTimeout = 3 * time.Second

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the contact API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log, closer, err := newLogger(cfg.App, cfg.Log, cmd.OutOrStdout(), cmd.Name())
			if err != nil {
				return err
			}
			defer closer.Close()
			logger.SetAsDefault(log)

			ctx := cmd.Context()

			sender, err := email.New(cfg.Mail, log)
			if err != nil {
				return err
			}
			assets, err := file.New(ctx, cfg.Assets)
			if err != nil {
				return err
			}
			t, err := contact.NewTranslator(log)
			if err != nil {
				return err
			}

			opts := []contact.Option{
				contact.WithAssets(assets),
				contact.WithLogger(log),
			}
			if cfg.Contact.CaptchaEnabled {
				v, err := turnstile.New(cfg.Turnstile, turnstile.WithLogger(log))
				if err != nil {
					return err
				}
				opts = append(opts, contact.WithVerifier(v))
			} else {
				level := slog.LevelWarn
				if environment.Parse(cfg.App.Env).IsProduction() {
					level = slog.LevelError
				}
				log.Log(ctx, level, "captcha verification is disabled",
					logger.Component("contact"),
					logger.Event("captcha_disabled"),
				)
			}
			svc := contact.NewService(cfg.Contact, sender, opts...)

			router := newRouter(routerDeps{
				log:        log,
				translator: t,
				contact:    contact.NewHandler(svc, contact.NewErrorHandler(log, t)),
				checks:     []httpserver.Check{logoCheck(assets, cfg.Contact.LogoPath)},
			})

			log.InfoContext(ctx, "starting contact api",
				slog.String("addr", cfg.HTTP.Addr),
				slog.String("mail_provider", cfg.Mail.Provider),
				slog.String("asset_storage", cfg.Assets.Backend),
				slog.Bool("captcha", cfg.Contact.CaptchaEnabled),
			)
			return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

type routerDeps struct {
	log        *slog.Logger
	translator *i18n.Translator
	contact    contact.Mountable
	checks     []httpserver.Check
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.New().Middleware,
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, readinessTimeout, d.checks...))

	r.Mount("/api", contact.Router(contact.RouterOptions{
		Contact: d.contact,
		Middlewares: []func(http.Handler) http.Handler{
			i18n.Middleware(d.translator, i18n.DefaultLangExtractor()),
		},
	}))
	return r
}
