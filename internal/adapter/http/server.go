// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"github.com/joshtello/caffeine-calculator-app/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	intakes    *app.IntakeService
	estimate   *app.EstimateService
	charts     *app.ChartsService
	drinks     *app.DrinkService
	profiles   *app.ProfileService
	authSvc    *app.AuthService
	oidcConfig OIDCConfig
	webDir     string

	// disableAuth skips session validation (for tests).
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(is *app.IntakeService, es *app.EstimateService, cs *app.ChartsService, ds *app.DrinkService, ps *app.ProfileService, as *app.AuthService, oidcConfig OIDCConfig, webDir string) *Server {
	return &Server{
		intakes:    is,
		estimate:   es,
		charts:     cs,
		drinks:     ds,
		profiles:   ps,
		authSvc:    as,
		oidcConfig: oidcConfig,
		webDir:     webDir,
	}
}

// DisableAuth turns off session validation. Tests only.
func (s *Server) DisableAuth() {
	s.disableAuth = true
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/intakes", s.handleIntakes)
	api.HandleFunc("/intakes/recent", s.handleIntakesRecent)
	api.HandleFunc("/intakes/delete", s.handleIntakeDelete)
	api.HandleFunc("/intakes/undo-last", s.handleIntakeUndoLast)

	api.HandleFunc("/profile", s.handleProfile)

	api.HandleFunc("/drinks/search", s.handleDrinkSearch)
	api.HandleFunc("/drinks/resolve", s.handleDrinkResolve)
	api.HandleFunc("/drinks/custom", s.handleCustomDrink)
	api.HandleFunc("/drinks/custom/delete", s.handleCustomDrinkDelete)

	api.HandleFunc("/estimate", s.handleEstimate)
	api.HandleFunc("/charts/series", s.handleChartsSeries)

	auth := http.NewServeMux()
	auth.HandleFunc("/auth/login", s.handleLogin)
	auth.HandleFunc("/auth/logout", s.handleLogout)
	auth.HandleFunc("/auth/setup", s.handleSetupUser)
	auth.HandleFunc("/auth/config", s.handleConfig)
	auth.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	auth.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	root := http.NewServeMux()
	root.Handle("/api/auth/", http.StripPrefix("/api", auth))
	root.Handle("/api/", http.StripPrefix("/api", s.authMiddleware(api)))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
