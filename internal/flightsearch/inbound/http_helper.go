package inbound

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/usecase"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgerror"
)

func parseFlightsInput(r *http.Request) (usecase.FlightsInput, error) {
	q := r.URL.Query()

	origin := strings.TrimSpace(q.Get("origin"))
	destination := strings.TrimSpace(q.Get("destination"))
	if origin == "" || destination == "" {
		return usecase.FlightsInput{}, pkgerror.NewBusiness("origin and destination are required", pkgerror.CodeInvalidInput)
	}

	departureDateStr := strings.TrimSpace(firstNotEmpty(q.Get("departureDate"), q.Get("departure_date"), q.Get("date")))
	if departureDateStr == "" {
		return usecase.FlightsInput{}, pkgerror.NewBusiness("departureDate is required", pkgerror.CodeInvalidInput)
	}
	departureDate, err := time.Parse("2006-01-02", departureDateStr)
	if err != nil {
		return usecase.FlightsInput{}, pkgerror.NewBusiness("invalid departureDate", pkgerror.CodeInvalidInput)
	}

	passengers := 1
	if value := strings.TrimSpace(q.Get("passengers")); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return usecase.FlightsInput{}, pkgerror.NewBusiness("invalid passengers", pkgerror.CodeInvalidInput)
		}
		passengers = parsed
	}

	filters, err := parseFlightFilters(q)
	if err != nil {
		return usecase.FlightsInput{}, err
	}

	return usecase.FlightsInput{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departureDate,
		Passengers:    passengers,
		Filters:       filters,
		Sort: usecase.SortOption{
			Field: strings.TrimSpace(q.Get("sort")),
			Order: strings.TrimSpace(q.Get("order")),
		},
	}, nil
}

func parseFlightFilters(q url.Values) (usecase.FlightFilters, error) {
	filters := usecase.FlightFilters{}

	if value := strings.TrimSpace(firstNotEmpty(q.Get("max_price"), q.Get("maxPrice"))); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || parsed < 0 {
			return filters, pkgerror.NewBusiness("invalid max_price", pkgerror.CodeInvalidInput)
		}
		filters.MaxPrice = &parsed
	}
	if err := parseIntFilter(q, "stops", "stop_count", "invalid stops", 0, 10, &filters.Stops); err != nil {
		return filters, err
	}
	if err := parseIntFilter(q, "depart_from", "departFrom", "invalid depart_from", 0, 24, &filters.DepartHourFrom); err != nil {
		return filters, err
	}
	if err := parseIntFilter(q, "depart_to", "departTo", "invalid depart_to", 0, 24, &filters.DepartHourTo); err != nil {
		return filters, err
	}
	filters.Airlines = parseListFilter(q, "airlines", "airline")
	filters.CabinClasses = parseListFilter(q, "cabin_classes", "cabinClasses")
	filters.Statuses = parseListFilter(q, "statuses", "status")

	return filters, nil
}

func parseIntFilter(q url.Values, key, altKey, errMsg string, minValue, maxValue int, target **int) error {
	value := strings.TrimSpace(firstNotEmpty(q.Get(key), q.Get(altKey)))
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < minValue || parsed > maxValue {
		return pkgerror.NewBusiness(errMsg, pkgerror.CodeInvalidInput)
	}
	*target = &parsed
	return nil
}

func parseListFilter(q url.Values, key, altKey string) []string {
	value := strings.TrimSpace(firstNotEmpty(q.Get(key), q.Get(altKey)))
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func firstNotEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func mapFlightResponses(flights []entity.Flight) []FlightResponse {
	resp := make([]FlightResponse, 0, len(flights))
	for _, flight := range flights {
		resp = append(resp, mapFlightResponse(flight))
	}
	return resp
}

func mapFlightResponse(flight entity.Flight) FlightResponse {
	segments := make([]SegmentResponse, 0, len(flight.Segments))
	for _, seg := range flight.Segments {
		segments = append(segments, SegmentResponse{
			Departure:   mapEndpoint(seg.Departure),
			Arrival:     mapEndpoint(seg.Arrival),
			CarrierCode: seg.CarrierCode,
			Number:      seg.Number,
			Duration:    seg.Duration,
		})
	}

	return FlightResponse{
		ID:            flight.ID,
		Airline:       flight.Airline,
		AirlineCode:   flight.AirlineCode,
		FlightNumber:  flight.FlightNumber,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureTime: flight.DepartureTime.Format(entity.LocalDateTimeLayout),
		ArrivalTime:   flight.ArrivalTime.Format(entity.LocalDateTimeLayout),
		Price: PriceResponse{
			Amount:    flight.Price.Amount,
			Currency:  flight.Price.Currency,
			Formatted: formatPrice(flight.Price),
		},
		Stops:      flight.Stops,
		Duration:   DurationResponse{TotalMinutes: flight.DurationMinutes, Formatted: flight.Duration},
		Segments:   segments,
		CabinClass: flight.CabinClass,
		Status:     flight.Status,
	}
}

func mapEndpoint(e entity.Endpoint) EndpointResponse {
	return EndpointResponse{IATACode: e.IATACode, At: e.At.Format(entity.LocalDateTimeLayout)}
}

func mapPricePoints(points []usecase.PricePoint) []PricePointResponse {
	resp := make([]PricePointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, PricePointResponse(p))
	}
	return resp
}

func formatPrice(p entity.Price) string {
	if p.Currency == "USD" {
		return fmt.Sprintf("$%.2f", p.Amount)
	}
	return fmt.Sprintf("%.2f %s", p.Amount, p.Currency)
}
