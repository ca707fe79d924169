package flightsearch

import (
	"errors"
	"net/http"
	"time"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/cache"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/inbound"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/provider"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/usecase"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgconfig"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgrouter"
)

const configPrefix = "modules.flight-search."

var ErrMissingFixture = errors.New("fixture provider enabled without fixture.path")

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	uc, err := NewUsecase(dep.Config)
	if err != nil {
		return err
	}

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

// NewUsecase builds the usecase from config. The CLI uses it directly,
// without a router.
func NewUsecase(cfg pkgconfig.Config) (*usecase.Usecase, error) {
	p, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}

	if rateLimitMs := cfg.GetInt(configPrefix + "provider.rate_limit_ms"); rateLimitMs > 0 {
		p = provider.NewRateLimitedProvider(p, time.Duration(rateLimitMs)*time.Millisecond)
	}

	cacheTTL := 60 * time.Second
	if ttlSeconds := cfg.GetInt(configPrefix + "cache.ttl_seconds"); ttlSeconds > 0 {
		cacheTTL = time.Duration(ttlSeconds) * time.Second
	}

	searchTimeout := 15 * time.Second
	if timeoutMs := cfg.GetInt(configPrefix + "search_timeout_ms"); timeoutMs > 0 {
		searchTimeout = time.Duration(timeoutMs) * time.Millisecond
	}

	return usecase.New(usecase.Dependency{
		Provider:      p,
		Cache:         cache.New(usecase.CloneFlights),
		CacheTTL:      cacheTTL,
		SearchTimeout: searchTimeout,
	}), nil
}

func newProvider(cfg pkgconfig.Config) (provider.Provider, error) {
	var status provider.StatusFunc
	if syntheticStatusEnabled(cfg) {
		status = provider.SyntheticStatus(provider.NewSafeRand())
	}

	if cfg.GetBool(configPrefix + "fixture.enabled") {
		path := cfg.GetString(configPrefix + "fixture.path")
		if path == "" {
			return nil, ErrMissingFixture
		}
		return provider.NewFixtureProvider(path, status), nil
	}

	timeout := 10 * time.Second
	if timeoutMs := cfg.GetInt(configPrefix + "amadeus.timeout_ms"); timeoutMs > 0 {
		timeout = time.Duration(timeoutMs) * time.Millisecond
	}

	return provider.NewAmadeusProvider(provider.AmadeusConfig{
		BaseURL:       cfg.GetString(configPrefix + "amadeus.base_url"),
		ClientID:      cfg.GetString(configPrefix + "amadeus.client_id"),
		ClientSecret:  cfg.GetString(configPrefix + "amadeus.client_secret"),
		Currency:      cfg.GetString(configPrefix + "amadeus.currency"),
		MaxResults:    cfg.GetInt(configPrefix + "amadeus.max_results"),
		LocationLimit: cfg.GetInt(configPrefix + "amadeus.location_limit"),
		HTTPClient:    &http.Client{Timeout: timeout},
		Status:        status,
	}), nil
}

// syntheticStatusEnabled defaults to true when the key is absent.
func syntheticStatusEnabled(cfg pkgconfig.Config) bool {
	key := configPrefix + "synthetic_status"
	if !cfg.IsSet(key) {
		return true
	}
	return cfg.GetBool(key)
}
