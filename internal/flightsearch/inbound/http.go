package inbound

import (
	"context"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/usecase"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgrouter"
)

type uc interface {
	Locations(ctx context.Context, keyword string) usecase.LocationsOutput
	Flights(ctx context.Context, in usecase.FlightsInput) (*usecase.FlightsOutput, error)
	Flight(ctx context.Context, searchID, flightID string) (entity.Flight, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/locations", end.Locations)
	r.GET("/flights", end.Flights)
	r.GET("/searches/:search_id/flights/:flight_id", end.Flight)
}
