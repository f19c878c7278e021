package adapthttp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gorilla/mux"
	"golang.org/x/oauth2"

	"wellness/internal/app"
)

// OIDCConfig holds the SSO provider settings. The zero value disables SSO.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config oauth2.Config
}

// NewOIDCConfig discovers issuer and prepares the code-flow client.
func NewOIDCConfig(ctx context.Context, issuer, clientID, clientSecret, redirectURL string) (OIDCConfig, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return OIDCConfig{}, fmt.Errorf("oidc discovery: %w", err)
	}
	return OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	authSvc    *app.AuthService
	entries    *app.EntryService
	dashboard  *app.DashboardService
	oidcConfig OIDCConfig
	logger     *log.Logger
	webDir     string

	trustForwardAuth bool

	disableAuth bool
	testUser    string
}

// New creates a Server wired to the given application services.
func New(as *app.AuthService, es *app.EntryService, ds *app.DashboardService, logger *log.Logger, webDir string) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{authSvc: as, entries: es, dashboard: ds, logger: logger, webDir: webDir}
}

// WithOIDC enables SSO login.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// WithForwardAuth accepts the Remote-User header as the caller's identity.
// Only enable it behind a proxy that authenticates users and strips any
// Remote-User header sent by clients.
func (s *Server) WithForwardAuth() *Server {
	s.trustForwardAuth = true
	return s
}

// WithoutAuth treats every request as coming from username. Used by tests.
func (s *Server) WithoutAuth(username string) *Server {
	s.disableAuth = true
	s.testUser = username
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)
	api.HandleFunc("/config", s.handleConfig).Methods(http.MethodGet)

	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", s.handleSignup).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin).Methods(http.MethodGet)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(s.authMiddleware)
	protected.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)
	protected.HandleFunc("/entries", s.handleEntries).Methods(http.MethodGet)
	protected.HandleFunc("/entries/today", s.handleEntryTodayGet).Methods(http.MethodGet)
	protected.HandleFunc("/entries/today", s.handleEntryTodayPut).Methods(http.MethodPut)
	protected.HandleFunc("/recommendations", s.handleRecommendations).Methods(http.MethodGet)
	protected.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	protected.HandleFunc("/correlations", s.handleCorrelations).Methods(http.MethodGet)
	protected.HandleFunc("/trends/rolling", s.handleRolling).Methods(http.MethodGet)
	protected.HandleFunc("/trends/weekly", s.handleWeekly).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)

	if s.webDir != "" {
		r.PathPrefix("/").MatcherFunc(notAPI).Handler(spaFromDisk(s.webDir))
	}

	return withNoCache(s.loggingMiddleware(r))
}

// notAPI keeps the SPA fallback from shadowing 404 and 405 answers under /api.
func notAPI(r *http.Request, _ *mux.RouteMatch) bool {
	return !strings.HasPrefix(r.URL.Path, "/api/")
}
