package inbound

import (
	"context"
	"errors"
	"net/http"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/usecase"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgerror"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgrouter"
)

const msgSearchFailed = "Failed to fetch flights. Please check your inputs or try again."

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Locations(ctx context.Context, r *http.Request) (any, error) {
	out := h.uc.Locations(ctx, r.URL.Query().Get("keyword"))

	locations := make([]LocationResponse, 0, len(out.Locations))
	for _, loc := range out.Locations {
		locations = append(locations, LocationResponse{Name: loc.Name, IATACode: loc.IATACode, CityName: loc.CityName})
	}

	return LocationsResponse{
		Keyword:   out.Keyword,
		Outcome:   string(out.Outcome),
		Reason:    out.Reason,
		Locations: locations,
	}, nil
}

func (h *HTTPEndpoint) Flights(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseFlightsInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Flights(ctx, input)
	if err != nil {
		return nil, pkgerror.Wrap(err, msgSearchFailed, pkgerror.CodeUpstream)
	}

	return FlightsResponse{
		SearchID: output.SearchID,
		SearchCriteria: SearchCriteriaResponse{
			Origin:        output.SearchCriteria.Origin,
			Destination:   output.SearchCriteria.Destination,
			DepartureDate: output.SearchCriteria.DepartureDate,
			Passengers:    output.SearchCriteria.Passengers,
		},
		Metadata: MetadataResponse{
			Provider:        output.Metadata.Provider,
			TotalResults:    output.Metadata.TotalResults,
			FilteredResults: output.Metadata.FilteredResults,
			SearchTimeMs:    output.Metadata.SearchTimeMs,
			CacheHit:        output.Metadata.CacheHit,
		},
		Outcome:     string(output.Outcome),
		Facets:      FacetsResponse(output.Facets),
		PricePoints: mapPricePoints(output.PricePoints),
		Flights:     mapFlightResponses(output.Flights),
	}, nil
}

func (h *HTTPEndpoint) Flight(ctx context.Context, r *http.Request) (any, error) {
	flight, err := h.uc.Flight(ctx, pkgrouter.Param(r, "search_id"), pkgrouter.Param(r, "flight_id"))
	if errors.Is(err, usecase.ErrFlightNotFound) {
		return nil, pkgerror.Wrap(err, "flight not found, search again", pkgerror.CodeNotFound)
	}
	if err != nil {
		return nil, err
	}
	return mapFlightResponse(flight), nil
}
