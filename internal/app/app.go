package app

import (
	"context"
	"net/http"

	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgconfig"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgrouter"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkguid"
)

type App struct {
	config     pkgconfig.Config
	uuid       pkguid.StringID
	router     *pkgrouter.Router
	httpServer *http.Server
	closerFn   map[string]func(context.Context) error
}

// New loads the config at configPath and wires every enabled module.
func New(configPath string) (*App, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

func NewWithConfig(cfg pkgconfig.Config) (*App, error) {
	app := &App{config: cfg}
	app.initHTTPServer()
	if err := app.initModules(); err != nil {
		return nil, err
	}
	app.initClosers()
	return app, nil
}

// Handler is the server's root handler, CORS included.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}
