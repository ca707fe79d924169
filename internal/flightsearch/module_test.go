package flightsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/mocks"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/provider"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/usecase"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgconfig"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgrouter"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func amadeusConfig(api *mocks.AmadeusAPI) pkgconfig.Config {
	return pkgconfig.NewStatic(map[string]any{
		configPrefix + "amadeus.base_url":      api.URL(),
		configPrefix + "amadeus.client_id":     mocks.ClientID,
		configPrefix + "amadeus.client_secret": mocks.ClientSecret,
		configPrefix + "synthetic_status":      true,
	})
}

func jfkToLHR() usecase.FlightsInput {
	return usecase.FlightsInput{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Passengers:    1,
	}
}

func TestNewUsecase_Amadeus(t *testing.T) {
	api := mocks.NewAmadeusAPI()
	t.Cleanup(func() { _ = api.Close() })

	uc, err := NewUsecase(amadeusConfig(api))
	require.NoError(t, err)

	out, err := uc.Flights(context.Background(), jfkToLHR())
	require.NoError(t, err)
	assert.Equal(t, "Amadeus", out.Metadata.Provider)
	require.Len(t, out.Flights, 4)
	for _, f := range out.Flights {
		assert.Contains(t, provider.SyntheticStatuses, f.Status)
	}

	locations := uc.Locations(context.Background(), "lon")
	assert.Equal(t, usecase.OutcomeFound, locations.Outcome)

	// Both calls share one token.
	assert.Equal(t, 1, api.TokenCalls())
}

func TestNewUsecase_SyntheticStatusDisabled(t *testing.T) {
	api := mocks.NewAmadeusAPI()
	t.Cleanup(func() { _ = api.Close() })

	cfg := pkgconfig.NewStatic(map[string]any{
		configPrefix + "amadeus.base_url":      api.URL(),
		configPrefix + "amadeus.client_id":     mocks.ClientID,
		configPrefix + "amadeus.client_secret": mocks.ClientSecret,
		configPrefix + "synthetic_status":      false,
	})
	uc, err := NewUsecase(cfg)
	require.NoError(t, err)

	out, err := uc.Flights(context.Background(), jfkToLHR())
	require.NoError(t, err)
	for _, f := range out.Flights {
		assert.Empty(t, f.Status)
	}
}

func TestSyntheticStatusEnabled(t *testing.T) {
	key := configPrefix + "synthetic_status"

	assert.True(t, syntheticStatusEnabled(pkgconfig.NewStatic(map[string]any{})))
	assert.True(t, syntheticStatusEnabled(pkgconfig.NewStatic(map[string]any{key: true})))
	assert.False(t, syntheticStatusEnabled(pkgconfig.NewStatic(map[string]any{key: false})))
}

func TestNewUsecase_Fixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	body := `{"locations": ` + mocks.LocationsJSON + `, "flight_offers": ` + mocks.FlightOffersJSON + `}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	uc, err := NewUsecase(pkgconfig.NewStatic(map[string]any{
		configPrefix + "fixture.enabled":        true,
		configPrefix + "fixture.path":           path,
		configPrefix + "provider.rate_limit_ms": 1,
	}))
	require.NoError(t, err)

	out, err := uc.Flights(context.Background(), jfkToLHR())
	require.NoError(t, err)
	assert.Equal(t, "Fixture", out.Metadata.Provider)
	assert.Len(t, out.Flights, 4)
}

func TestNewUsecase_FixtureWithoutPath(t *testing.T) {
	_, err := NewUsecase(pkgconfig.NewStatic(map[string]any{
		configPrefix + "fixture.enabled": true,
	}))
	assert.ErrorIs(t, err, ErrMissingFixture)
}

func TestNew_RegistersRoutes(t *testing.T) {
	api := mocks.NewAmadeusAPI()
	t.Cleanup(func() { _ = api.Close() })

	router := pkgrouter.NewRouter(fixedID("req-1"))
	require.NoError(t, New(Dependency{Config: amadeusConfig(api), Router: router}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flights?origin=JFK&destination=LHR&departureDate=2025-06-01", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			SearchID string `json:"search_id"`
			Flights  []struct {
				ID string `json:"id"`
			} `json:"flights"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Flights)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/searches/"+body.Data.SearchID+"/flights/"+body.Data.Flights[0].ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	api.SetOfferStatus(http.StatusInternalServerError)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flights?origin=JFK&destination=CDG&departureDate=2025-06-01", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
