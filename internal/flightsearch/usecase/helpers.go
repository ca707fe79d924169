package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
)

// buildSearchID derives a stable id from the upstream criteria only, so
// requests that differ just in filters or sort share one cached result.
func buildSearchID(in FlightsInput) string {
	key := fmt.Sprintf(
		"%s|%s|%s|%d",
		strings.ToUpper(strings.TrimSpace(in.Origin)),
		strings.ToUpper(strings.TrimSpace(in.Destination)),
		in.DepartureDate.Format("2006-01-02"),
		in.Passengers,
	)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}

func normalizeSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		value := strings.ToLower(strings.TrimSpace(v))
		if value == "" {
			continue
		}
		set[value] = struct{}{}
	}
	return set
}

func buildFacets(flights []entity.Flight) Facets {
	if len(flights) == 0 {
		return Facets{Airlines: []string{}, MinPrice: 0, MaxPrice: defaultFacetMaxPrice}
	}

	seen := make(map[string]struct{}, len(flights))
	airlines := make([]string, 0, len(flights))
	minPrice, maxPrice := flights[0].Price.Amount, flights[0].Price.Amount
	for _, f := range flights {
		if _, ok := seen[f.Airline]; !ok {
			seen[f.Airline] = struct{}{}
			airlines = append(airlines, f.Airline)
		}
		minPrice = math.Min(minPrice, f.Price.Amount)
		maxPrice = math.Max(maxPrice, f.Price.Amount)
	}
	sort.Strings(airlines)

	return Facets{Airlines: airlines, MinPrice: minPrice, MaxPrice: maxPrice}
}

func buildPricePoints(flights []entity.Flight) []PricePoint {
	points := make([]PricePoint, 0, len(flights))
	for _, f := range flights {
		points = append(points, PricePoint{
			FlightID:      f.ID,
			Time:          float64(f.DepartureTime.Hour()) + float64(f.DepartureTime.Minute())/60,
			Price:         f.Price.Amount,
			Airline:       f.Airline,
			FormattedTime: f.DepartureTime.Format("15:04"),
		})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time < points[j].Time })
	return points
}

func CloneFlights(flights []entity.Flight) []entity.Flight {
	if flights == nil {
		return nil
	}
	clone := make([]entity.Flight, len(flights))
	for i, f := range flights {
		clone[i] = f.Clone()
	}
	return clone
}
