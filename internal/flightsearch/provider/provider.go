package provider

import (
	"context"
	"errors"
	"time"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
)

var (
	ErrAuthentication = errors.New("authentication with flight provider failed")
	ErrLookup         = errors.New("location lookup failed")
	ErrSearch         = errors.New("flight search failed")
)

// MinKeywordLength is the shortest keyword that is sent upstream.
const MinKeywordLength = 2

type SearchRequest struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	Passengers    int
}

type Provider interface {
	Name() string
	SearchLocations(ctx context.Context, keyword string) ([]entity.Location, error)
	Search(ctx context.Context, req SearchRequest) ([]entity.Flight, error)
}
