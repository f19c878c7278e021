package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "wellness/internal/adapter/http"
	"wellness/internal/app"
)

// ServeCmd runs the JSON API and serves the web UI.
type ServeCmd struct {
	Addr   string `help:"Listen address." default:":8080" env:"ADDR"`
	WebDir string `help:"Static web UI directory." default:"web" env:"WEB_DIR"`

	OIDCIssuer       string `name:"oidc-issuer" help:"OpenID Connect issuer URL; enables SSO." env:"OIDC_ISSUER"`
	OIDCClientID     string `name:"oidc-client-id" env:"OIDC_CLIENT_ID"`
	OIDCClientSecret string `name:"oidc-client-secret" env:"OIDC_CLIENT_SECRET"`
	OIDCRedirectURL  string `name:"oidc-redirect-url" env:"OIDC_REDIRECT_URL"`

	TrustForwardAuth bool `name:"trust-forward-auth" help:"Accept the Remote-User header from an authenticating proxy." env:"TRUST_FORWARD_AUTH"`
}

const sessionSweepInterval = time.Hour

func (c *ServeCmd) Run(g *Globals) error {
	logger := g.logger

	st, err := openStores(g)
	if err != nil {
		return err
	}
	defer func() { _ = st.close() }()

	entrySvc := app.NewEntryService(st.entries)
	authSvc := app.NewAuthService(st.creds, st.sessions)
	srv := adapthttp.New(authSvc, entrySvc, app.NewDashboardService(entrySvc), logger, c.WebDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.OIDCIssuer != "" {
		cfg, err := adapthttp.NewOIDCConfig(ctx, c.OIDCIssuer, c.OIDCClientID, c.OIDCClientSecret, c.OIDCRedirectURL)
		if err != nil {
			return err
		}
		srv.WithOIDC(cfg)
		logger.Info("sso enabled", "issuer", c.OIDCIssuer)
	}
	if c.TrustForwardAuth {
		srv.WithForwardAuth()
		logger.Warn("trusting Remote-User header; run only behind an authenticating proxy")
	}

	go func() {
		t := time.NewTicker(sessionSweepInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := authSvc.PruneSessions(ctx); err != nil {
					logger.Warn("prune sessions", "err", err)
				}
			}
		}
	}()

	httpSrv := &http.Server{
		Addr:              c.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", c.Addr, "store", g.Store)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
