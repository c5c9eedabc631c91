// Package server assembles the application: config, storage, stores,
// services, middleware chain and routes.
package server

import (
	"net/http"

	"github.com/boutiklabs/boutik/app/repositories"
	"github.com/boutiklabs/boutik/app/routes"
	"github.com/boutiklabs/boutik/app/services"
	"github.com/boutiklabs/boutik/config"
	"github.com/boutiklabs/boutik/pkg/auth"
	"github.com/boutiklabs/boutik/pkg/logger"
	"github.com/boutiklabs/boutik/pkg/metrics"
	"github.com/boutiklabs/boutik/pkg/middleware"
	"github.com/boutiklabs/boutik/pkg/reqid"
	"github.com/boutiklabs/boutik/pkg/router"
	"github.com/boutiklabs/boutik/pkg/storage"
)

// NewRouter builds the fully wired router. Split from Start so tests can
// run the whole surface under httptest and the CLI can list routes.
func NewRouter() (*router.Router, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	storage.Connect()

	issuer := auth.NewIssuerFromConfig()
	store := repositories.NewProductStore(storage.Default(), config.DataFile())

	deps := routes.Deps{
		Products:   services.NewProductService(store),
		Accounts:   services.NewAccountDirectory(issuer),
		Issuer:     issuer,
		Cart:       repositories.NewRegistry(),
		Wishlist:   repositories.NewRegistry(),
		AdminEmail: config.AdminEmail(),
	}

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(config.RateLimit(), config.RateWindow()),
	)

	if err := routes.RegisterAPI(r, deps); err != nil {
		return nil, err
	}

	return r, nil
}

// Handler builds the full HTTP handler with all dependencies wired.
func Handler() (http.Handler, error) {
	r, err := NewRouter()
	if err != nil {
		return nil, err
	}
	return r.Handler(), nil
}

// Start boots the server on the configured port and blocks.
func Start() error {
	handler, err := Handler()
	if err != nil {
		return err
	}

	addr := ":" + config.AppPort()
	logger.Info("boutik listening", "addr", addr, "data_file", config.DataFile())

	return http.ListenAndServe(addr, handler)
}
