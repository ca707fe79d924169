package app

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgconfig"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkglog"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgrouter"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkguid"
)

const defaultHTTPAddress = ":8080"

// LoadConfig reads the YAML config, binds the Amadeus credentials to their
// conventional environment variables and applies the configured log level.
func LoadConfig(path string) (pkgconfig.Config, error) {
	cfg, err := pkgconfig.NewViper(path, credentialBindings()...)
	if err != nil {
		return nil, err
	}

	if level := cfg.GetString("app.log.level"); level != "" {
		pkglog.SetLevel(level)
	}

	return cfg, nil
}

func credentialBindings() []pkgconfig.Option {
	return []pkgconfig.Option{
		pkgconfig.WithEnvBinding("modules.flight-search.amadeus.client_id", "AMADEUS_CLIENT_ID"),
		pkgconfig.WithEnvBinding("modules.flight-search.amadeus.client_secret", "AMADEUS_CLIENT_SECRET"),
	}
}

func (a *App) initHTTPServer() {
	a.uuid = pkguid.NewUUID()
	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pkgrouter.HeaderRequestID},
	})

	addr := a.config.GetString("app.server.address.http")
	if addr == "" {
		addr = defaultHTTPAddress
	}

	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
