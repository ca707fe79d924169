package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/provider"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/usecase"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgrouter"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type fakeUsecase struct {
	locations usecase.LocationsOutput
	flights   *usecase.FlightsOutput
	flight    entity.Flight
	err       error
	lastInput usecase.FlightsInput
	lastIDs   [2]string
}

func (f *fakeUsecase) Locations(_ context.Context, _ string) usecase.LocationsOutput {
	return f.locations
}

func (f *fakeUsecase) Flights(_ context.Context, in usecase.FlightsInput) (*usecase.FlightsOutput, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return f.flights, nil
}

func (f *fakeUsecase) Flight(_ context.Context, searchID, flightID string) (entity.Flight, error) {
	f.lastIDs = [2]string{searchID, flightID}
	if f.err != nil {
		return entity.Flight{}, f.err
	}
	return f.flight, nil
}

func sampleFlight() entity.Flight {
	depart := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	arrive := time.Date(2025, 6, 1, 20, 35, 0, 0, time.UTC)
	return entity.Flight{
		ID:            "1",
		Airline:       "BRITISH AIRWAYS",
		AirlineCode:   "BA",
		FlightNumber:  "BA178",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureTime: depart,
		ArrivalTime:   arrive,
		Price:         entity.Price{Amount: 612.4, Currency: "USD"},
		Segments: []entity.Segment{{
			Departure:   entity.Endpoint{IATACode: "JFK", At: depart},
			Arrival:     entity.Endpoint{IATACode: "LHR", At: arrive},
			CarrierCode: "BA",
			Number:      "178",
			Duration:    "PT7H5M",
		}},
		Duration:        "7h 5m",
		DurationMinutes: 425,
		CabinClass:      "ECONOMY",
		Status:          "On Time",
	}
}

func do(t *testing.T, f *fakeUsecase, target string) (int, map[string]any) {
	t.Helper()
	r := pkgrouter.NewRouter(fixedID("req-1"))
	RegisterHTTPEndpoint(r, f)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHTTPEndpoint_Locations(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		f := &fakeUsecase{locations: usecase.LocationsOutput{
			Keyword:   "lon",
			Outcome:   usecase.OutcomeFound,
			Locations: []entity.Location{{Name: "HEATHROW", IATACode: "LHR", CityName: "LONDON"}},
		}}
		code, body := do(t, f, "/locations?keyword=lon")
		assert.Equal(t, http.StatusOK, code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "found", data["outcome"])
		assert.NotContains(t, data, "reason")
		locations := data["locations"].([]any)
		require.Len(t, locations, 1)
		assert.Equal(t, "LHR", locations[0].(map[string]any)["iata_code"])
	})

	t.Run("FailedIsStillOK", func(t *testing.T) {
		f := &fakeUsecase{locations: usecase.LocationsOutput{
			Keyword:   "lon",
			Outcome:   usecase.OutcomeFailed,
			Reason:    "location lookup failed",
			Locations: []entity.Location{},
		}}
		code, body := do(t, f, "/locations?keyword=lon")
		assert.Equal(t, http.StatusOK, code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "failed", data["outcome"])
		assert.Equal(t, "location lookup failed", data["reason"])
		assert.Empty(t, data["locations"])
	})
}

func TestHTTPEndpoint_Flights(t *testing.T) {
	output := &usecase.FlightsOutput{
		SearchID: "abc123",
		SearchCriteria: usecase.SearchCriteria{
			Origin:        "JFK",
			Destination:   "LHR",
			DepartureDate: "2025-06-01",
			Passengers:    2,
		},
		Metadata: usecase.SearchMetadata{Provider: "Amadeus", TotalResults: 1, FilteredResults: 1},
		Outcome:  usecase.OutcomeFound,
		Facets:   usecase.Facets{Airlines: []string{"BRITISH AIRWAYS"}, MinPrice: 612.4, MaxPrice: 612.4},
		PricePoints: []usecase.PricePoint{
			{FlightID: "1", Time: 8.5, Price: 612.4, Airline: "BRITISH AIRWAYS", FormattedTime: "08:30"},
		},
		Flights: []entity.Flight{sampleFlight()},
	}

	t.Run("Success", func(t *testing.T) {
		f := &fakeUsecase{flights: output}
		code, body := do(t, f, "/flights?origin=jfk&destination=lhr&departureDate=2025-06-01&passengers=2"+
			"&max_price=700&stops=0&airlines=BA,DL&depart_from=6&depart_to=12&cabin_classes=ECONOMY&sort=duration&order=desc")
		require.Equal(t, http.StatusOK, code)

		in := f.lastInput
		assert.Equal(t, "jfk", in.Origin)
		assert.Equal(t, "lhr", in.Destination)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), in.DepartureDate)
		assert.Equal(t, 2, in.Passengers)
		require.NotNil(t, in.Filters.MaxPrice)
		assert.InDelta(t, 700.0, *in.Filters.MaxPrice, 0.001)
		require.NotNil(t, in.Filters.Stops)
		assert.Equal(t, 0, *in.Filters.Stops)
		assert.Equal(t, []string{"BA", "DL"}, in.Filters.Airlines)
		assert.Equal(t, 6, *in.Filters.DepartHourFrom)
		assert.Equal(t, 12, *in.Filters.DepartHourTo)
		assert.Equal(t, []string{"ECONOMY"}, in.Filters.CabinClasses)
		assert.Nil(t, in.Filters.Statuses)
		assert.Equal(t, usecase.SortOption{Field: "duration", Order: "desc"}, in.Sort)

		data := body["data"].(map[string]any)
		assert.Equal(t, "abc123", data["search_id"])
		assert.Equal(t, "found", data["outcome"])
		facets := data["facets"].(map[string]any)
		assert.InDelta(t, 612.4, facets["min_price"], 0.001)
		points := data["price_points"].([]any)
		require.Len(t, points, 1)
		assert.Equal(t, "08:30", points[0].(map[string]any)["formatted_time"])

		flights := data["flights"].([]any)
		require.Len(t, flights, 1)
		first := flights[0].(map[string]any)
		assert.Equal(t, "2025-06-01T08:30:00", first["departure_time"])
		assert.Equal(t, "$612.40", first["price"].(map[string]any)["formatted"])
		assert.Equal(t, "7h 5m", first["duration"].(map[string]any)["formatted"])
		assert.Len(t, first["segments"], 1)
	})

	t.Run("DefaultPassengers", func(t *testing.T) {
		f := &fakeUsecase{flights: output}
		code, _ := do(t, f, "/flights?origin=JFK&destination=LHR&date=2025-06-01")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 1, f.lastInput.Passengers)
		assert.Nil(t, f.lastInput.Filters.MaxPrice)
	})

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{name: "MissingOrigin", query: "destination=LHR&departureDate=2025-06-01", errMsg: "origin and destination are required"},
		{name: "MissingDate", query: "origin=JFK&destination=LHR", errMsg: "departureDate is required"},
		{name: "BadDate", query: "origin=JFK&destination=LHR&departureDate=01/06/2025", errMsg: "invalid departureDate"},
		{name: "ZeroPassengers", query: "origin=JFK&destination=LHR&departureDate=2025-06-01&passengers=0", errMsg: "invalid passengers"},
		{name: "BadMaxPrice", query: "origin=JFK&destination=LHR&departureDate=2025-06-01&max_price=cheap", errMsg: "invalid max_price"},
		{name: "BadDepartHour", query: "origin=JFK&destination=LHR&departureDate=2025-06-01&depart_from=25", errMsg: "invalid depart_from"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeUsecase{flights: output}
			code, body := do(t, f, "/flights?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.errMsg, body["message"])
		})
	}

	t.Run("UpstreamFailure", func(t *testing.T) {
		f := &fakeUsecase{err: fmt.Errorf("%w: status 500", provider.ErrSearch)}
		code, body := do(t, f, "/flights?origin=JFK&destination=LHR&departureDate=2025-06-01")
		assert.Equal(t, http.StatusBadGateway, code)
		assert.Equal(t, msgSearchFailed, body["message"])
		assert.Equal(t, "req-1", body["request_id"])
	})
}

func TestHTTPEndpoint_Flight(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		f := &fakeUsecase{flight: sampleFlight()}
		code, body := do(t, f, "/searches/abc123/flights/1")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, [2]string{"abc123", "1"}, f.lastIDs)
		assert.Equal(t, "BA178", body["data"].(map[string]any)["flight_number"])
	})

	t.Run("NotFound", func(t *testing.T) {
		f := &fakeUsecase{err: usecase.ErrFlightNotFound}
		code, body := do(t, f, "/searches/abc123/flights/9")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "flight not found, search again", body["message"])
	})

	t.Run("Unexpected", func(t *testing.T) {
		f := &fakeUsecase{err: errors.New("boom")}
		code, _ := do(t, f, "/searches/abc123/flights/1")
		assert.Equal(t, http.StatusInternalServerError, code)
	})
}
