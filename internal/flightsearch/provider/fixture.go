package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
)

// FixtureProvider serves recorded upstream responses from a JSON file with
// "locations" and "flight_offers" members. It runs them through the same
// mapping as AmadeusProvider, which makes it usable without credentials.
type FixtureProvider struct {
	path          string
	locationLimit int
	status        StatusFunc
}

type fixtureFile struct {
	Locations    locationsResponse    `json:"locations"`
	FlightOffers flightOffersResponse `json:"flight_offers"`
}

func NewFixtureProvider(path string, status StatusFunc) *FixtureProvider {
	return &FixtureProvider{path: path, locationLimit: DefaultLocationLimit, status: status}
}

func (f *FixtureProvider) Name() string {
	return "Fixture"
}

func (f *FixtureProvider) SearchLocations(ctx context.Context, keyword string) ([]entity.Location, error) {
	keyword = strings.TrimSpace(keyword)
	if utf8.RuneCountInString(keyword) < MinKeywordLength {
		return []entity.Location{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookup, err)
	}

	data, err := f.load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookup, err)
	}

	needle := strings.ToLower(keyword)
	matched := make([]entity.Location, 0, f.locationLimit)
	for _, loc := range mapLocations(data.Locations) {
		if len(matched) == f.locationLimit {
			break
		}
		if strings.Contains(strings.ToLower(loc.Name), needle) ||
			strings.Contains(strings.ToLower(loc.CityName), needle) ||
			strings.HasPrefix(strings.ToLower(loc.IATACode), needle) {
			matched = append(matched, loc)
		}
	}
	return matched, nil
}

// Search returns the recorded offers whose route matches the request. The
// departure date is not checked because the recording is static.
func (f *FixtureProvider) Search(ctx context.Context, req SearchRequest) ([]entity.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}

	data, err := f.load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}

	mapped, err := mapFlightOffers(data.FlightOffers, f.status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}

	flights := make([]entity.Flight, 0, len(mapped))
	for _, flight := range mapped {
		if !strings.EqualFold(flight.Origin, req.Origin) || !strings.EqualFold(flight.Destination, req.Destination) {
			continue
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

func (f *FixtureProvider) load() (*fixtureFile, error) {
	raw, err := os.ReadFile(filepath.Clean(f.path))
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var data fixtureFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &data, nil
}
