package app

import (
	"fmt"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch"
)

func (a *App) initModules() error {
	if a.config.GetBool("modules.flight-search.enabled") {
		if err := flightsearch.New(flightsearch.Dependency{
			Config: a.config,
			Router: a.router,
		}); err != nil {
			return fmt.Errorf("init module flight-search: %w", err)
		}
	}
	return nil
}
