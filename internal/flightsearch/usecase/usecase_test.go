package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/provider"
)

type fakeProvider struct {
	mu        sync.Mutex
	flights   []entity.Flight
	locations []entity.Location
	err       error
	searches  int
	lookups   int
	lastReq   provider.SearchRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) SearchLocations(_ context.Context, _ string) ([]entity.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	return f.locations, nil
}

func (f *fakeProvider) Search(_ context.Context, req provider.SearchRequest) ([]entity.Flight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return CloneFlights(f.flights), nil
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC)
}

func flight(id, airline string, price float64, stops int, depart time.Time, minutes int, cabin, status string) entity.Flight {
	segments := make([]entity.Segment, stops+1)
	for i := range segments {
		segments[i] = entity.Segment{CarrierCode: airline[:2], Number: id}
	}
	segments[0].Departure = entity.Endpoint{IATACode: "JFK", At: depart}
	segments[len(segments)-1].Arrival = entity.Endpoint{IATACode: "LHR", At: depart.Add(time.Duration(minutes) * time.Minute)}
	return entity.Flight{
		ID:              id,
		Airline:         airline,
		AirlineCode:     airline[:2],
		FlightNumber:    airline[:2] + id,
		Origin:          "JFK",
		Destination:     "LHR",
		DepartureTime:   depart,
		ArrivalTime:     depart.Add(time.Duration(minutes) * time.Minute),
		Price:           entity.Price{Amount: price, Currency: "USD"},
		Stops:           stops,
		DurationMinutes: minutes,
		Segments:        segments,
		CabinClass:      cabin,
		Status:          status,
	}
}

func sampleFlights() []entity.Flight {
	return []entity.Flight{
		flight("1", "BRITISH AIRWAYS", 612.40, 0, at(8, 30), 425, "ECONOMY", "On Time"),
		flight("2", "AMERICAN AIRLINES", 545.10, 0, at(18, 0), 430, "PREMIUM_ECONOMY", "Delayed"),
		flight("3", "DELTA AIR LINES", 489.00, 1, at(6, 0), 870, "BUSINESS", "Scheduled"),
		flight("4", "FI", 399.99, 1, at(20, 40), 610, "ECONOMY", "On Time"),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func ids(flights []entity.Flight) []string {
	out := make([]string, 0, len(flights))
	for _, f := range flights {
		out = append(out, f.ID)
	}
	return out
}
