package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/provider"
)

var ErrFlightNotFound = errors.New("flight not found")

type FlightsInput struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	Passengers    int
	Filters       FlightFilters
	Sort          SortOption
}

// FlightFilters narrows a result list. Nil and empty fields do not filter.
// The departure window is [DepartHourFrom, DepartHourTo) on the airport-local
// clock, defaulting to [0, 24).
type FlightFilters struct {
	MaxPrice       *float64
	Stops          *int
	Airlines       []string
	DepartHourFrom *int
	DepartHourTo   *int
	CabinClasses   []string
	Statuses       []string
}

type SortOption struct {
	Field string
	Order string
}

type FlightsOutput struct {
	SearchID       string
	SearchCriteria SearchCriteria
	Metadata       SearchMetadata
	Outcome        Outcome
	Facets         Facets
	PricePoints    []PricePoint
	Flights        []entity.Flight
}

type SearchCriteria struct {
	Origin        string
	Destination   string
	DepartureDate string
	Passengers    int
}

type SearchMetadata struct {
	Provider        string
	TotalResults    int
	FilteredResults int
	SearchTimeMs    int64
	CacheHit        bool
}

// Facets describe the unfiltered result list, for building filter controls.
type Facets struct {
	Airlines []string
	MinPrice float64
	MaxPrice float64
}

// PricePoint is one dot of the price against departure time scatter. Time is
// the departure hour with minutes as a fraction.
type PricePoint struct {
	FlightID      string
	Time          float64
	Price         float64
	Airline       string
	FormattedTime string
}

const (
	defaultFacetMaxPrice = 3000
	hoursInDay           = 24
)

// Flights searches upstream, or reuses a cached result for the same
// criteria, then filters and sorts locally. Upstream failures are returned
// wrapped in provider.ErrSearch.
func (u *Usecase) Flights(ctx context.Context, in FlightsInput) (*FlightsOutput, error) {
	start := time.Now()
	searchID := buildSearchID(in)

	flights, cacheHit := u.cache.Get(searchID)
	if !cacheHit {
		var err error
		flights, err = u.search(ctx, in)
		if err != nil {
			return nil, err
		}
		u.cache.Set(searchID, flights, u.cacheTTL)
	}

	filtered := filterFlights(flights, in.Filters)
	sortFlights(filtered, in.Sort)

	outcome := OutcomeFound
	if len(flights) == 0 {
		outcome = OutcomeEmpty
	}

	return &FlightsOutput{
		SearchID: searchID,
		SearchCriteria: SearchCriteria{
			Origin:        strings.ToUpper(in.Origin),
			Destination:   strings.ToUpper(in.Destination),
			DepartureDate: in.DepartureDate.Format("2006-01-02"),
			Passengers:    in.Passengers,
		},
		Metadata: SearchMetadata{
			Provider:        u.provider.Name(),
			TotalResults:    len(flights),
			FilteredResults: len(filtered),
			SearchTimeMs:    time.Since(start).Milliseconds(),
			CacheHit:        cacheHit,
		},
		Outcome:     outcome,
		Facets:      buildFacets(flights),
		PricePoints: buildPricePoints(filtered),
		Flights:     filtered,
	}, nil
}

// Flight returns one flight of a search that is still cached.
func (u *Usecase) Flight(_ context.Context, searchID, flightID string) (entity.Flight, error) {
	flights, ok := u.cache.Get(searchID)
	if !ok {
		return entity.Flight{}, fmt.Errorf("search %s: %w", searchID, ErrFlightNotFound)
	}
	for _, f := range flights {
		if f.ID == flightID {
			return f, nil
		}
	}
	return entity.Flight{}, fmt.Errorf("flight %s: %w", flightID, ErrFlightNotFound)
}

func (u *Usecase) search(ctx context.Context, in FlightsInput) ([]entity.Flight, error) {
	ctx, cancel := u.withSearchTimeout(ctx)
	defer cancel()

	flights, err := u.provider.Search(ctx, provider.SearchRequest{
		Origin:        in.Origin,
		Destination:   in.Destination,
		DepartureDate: in.DepartureDate,
		Passengers:    in.Passengers,
	})
	if err != nil {
		slog.ErrorContext(ctx, "flight search failed",
			"provider", u.provider.Name(),
			"origin", in.Origin,
			"destination", in.Destination,
			"error", err,
		)
		if !errors.Is(err, provider.ErrSearch) {
			err = fmt.Errorf("%w: %w", provider.ErrSearch, err)
		}
		return nil, err
	}
	return flights, nil
}

func filterFlights(flights []entity.Flight, filters FlightFilters) []entity.Flight {
	airlines := normalizeSet(filters.Airlines)
	cabins := normalizeSet(filters.CabinClasses)
	statuses := normalizeSet(filters.Statuses)

	filtered := make([]entity.Flight, 0, len(flights))
	for _, f := range flights {
		if matchFilter(f, filters, airlines, cabins, statuses) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func matchFilter(f entity.Flight, filters FlightFilters, airlines, cabins, statuses map[string]struct{}) bool {
	if filters.MaxPrice != nil && f.Price.Amount > *filters.MaxPrice {
		return false
	}
	if filters.Stops != nil && f.Stops != *filters.Stops {
		return false
	}
	if !matchSet(airlines, f.Airline, f.AirlineCode) {
		return false
	}
	if !matchSet(cabins, f.CabinClass) {
		return false
	}
	if !matchSet(statuses, f.Status) {
		return false
	}
	return matchDepartureHour(f, filters)
}

func matchSet(set map[string]struct{}, values ...string) bool {
	if len(set) == 0 {
		return true
	}
	for _, v := range values {
		if _, ok := set[strings.ToLower(v)]; ok {
			return true
		}
	}
	return false
}

func matchDepartureHour(f entity.Flight, filters FlightFilters) bool {
	from, to := 0, hoursInDay
	if filters.DepartHourFrom != nil {
		from = *filters.DepartHourFrom
	}
	if filters.DepartHourTo != nil {
		to = *filters.DepartHourTo
	}
	hour := f.DepartureTime.Hour()
	return hour >= from && hour < to
}

func sortFlights(flights []entity.Flight, sortOpt SortOption) {
	field := strings.ToLower(sortOpt.Field)
	order := strings.ToLower(sortOpt.Order)
	if field == "" {
		field = "price"
	}

	less := func(i, j int) bool {
		switch field {
		case "duration":
			return flights[i].DurationMinutes < flights[j].DurationMinutes
		case "departure":
			return flights[i].DepartureTime.Before(flights[j].DepartureTime)
		case "arrival":
			return flights[i].ArrivalTime.Before(flights[j].ArrivalTime)
		case "stops":
			return flights[i].Stops < flights[j].Stops
		default:
			return flights[i].Price.Amount < flights[j].Price.Amount
		}
	}

	if order == "desc" {
		sort.SliceStable(flights, func(i, j int) bool { return less(j, i) })
		return
	}

	sort.SliceStable(flights, less)
}
