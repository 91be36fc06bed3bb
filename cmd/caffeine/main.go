package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "github.com/joshtello/caffeine-calculator-app/internal/adapter/http"
	"github.com/joshtello/caffeine-calculator-app/internal/adapter/postgres"
	"github.com/joshtello/caffeine-calculator-app/internal/app"
)

func main() {
	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Open(connStr)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	sessionRepo := postgres.NewSessionRepo(db)

	intakeSvc := app.NewIntakeService(db)
	estimateSvc := app.NewEstimateService(db, db)
	chartsSvc := app.NewChartsService(db, db)
	drinkSvc := app.NewDrinkService(db, db)
	profileSvc := app.NewProfileService(db)
	authSvc := app.NewAuthService(db, sessionRepo)

	oidcConfig, err := adapthttp.NewOIDCConfig(context.Background(),
		os.Getenv("OIDC_ISSUER"),
		os.Getenv("OIDC_CLIENT_ID"),
		os.Getenv("OIDC_CLIENT_SECRET"),
		os.Getenv("OIDC_REDIRECT_URL"),
	)
	if err != nil {
		log.Fatalf("oidc setup: %v", err)
	}

	h := adapthttp.New(intakeSvc, estimateSvc, chartsSvc, drinkSvc, profileSvc, authSvc, oidcConfig, webDir).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
