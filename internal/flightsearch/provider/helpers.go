package provider

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
)

var errMalformedOffer = errors.New("malformed offer")

func mapLocations(resp locationsResponse) []entity.Location {
	locations := make([]entity.Location, 0, len(resp.Data))
	for _, loc := range resp.Data {
		locations = append(locations, entity.Location{
			Name:     loc.Name,
			IATACode: loc.IATACode,
			CityName: loc.Address.CityName,
		})
	}
	return locations
}

// mapFlightOffers converts every offer. The first offer that cannot be
// mapped fails the whole response.
func mapFlightOffers(resp flightOffersResponse, status StatusFunc) ([]entity.Flight, error) {
	flights := make([]entity.Flight, 0, len(resp.Data))
	for _, offer := range resp.Data {
		flight, err := mapFlightOffer(offer, resp.Dictionaries.Carriers, status)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", offer.ID, err)
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

func mapFlightOffer(offer flightOffer, carriers map[string]string, status StatusFunc) (entity.Flight, error) {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return entity.Flight{}, fmt.Errorf("%w: no segments", errMalformedOffer)
	}
	itinerary := offer.Itineraries[0]

	segments := make([]entity.Segment, 0, len(itinerary.Segments))
	for _, seg := range itinerary.Segments {
		departAt, err := parseLocalTime(seg.Departure.At)
		if err != nil {
			return entity.Flight{}, fmt.Errorf("%w: departure time: %w", errMalformedOffer, err)
		}
		arriveAt, err := parseLocalTime(seg.Arrival.At)
		if err != nil {
			return entity.Flight{}, fmt.Errorf("%w: arrival time: %w", errMalformedOffer, err)
		}
		segments = append(segments, entity.Segment{
			Departure:   entity.Endpoint{IATACode: seg.Departure.IATACode, At: departAt},
			Arrival:     entity.Endpoint{IATACode: seg.Arrival.IATACode, At: arriveAt},
			CarrierCode: seg.CarrierCode,
			Number:      seg.Number,
			Duration:    FormatDuration(seg.Duration),
		})
	}

	total, err := strconv.ParseFloat(strings.TrimSpace(offer.Price.Total), 64)
	if err != nil {
		return entity.Flight{}, fmt.Errorf("%w: price: %w", errMalformedOffer, err)
	}

	first, last := segments[0], segments[len(segments)-1]
	airlineCode := first.CarrierCode
	airline := carriers[airlineCode]
	if airline == "" {
		airline = airlineCode
	}

	cabin := entity.DefaultCabinClass
	if len(offer.TravelerPricings) > 0 && len(offer.TravelerPricings[0].FareDetailsBySegment) > 0 {
		if c := offer.TravelerPricings[0].FareDetailsBySegment[0].Cabin; c != "" {
			cabin = c
		}
	}

	var flightStatus string
	if status != nil {
		flightStatus = status()
	}

	return entity.Flight{
		ID:              offer.ID,
		Airline:         airline,
		AirlineCode:     airlineCode,
		FlightNumber:    airlineCode + first.Number,
		Origin:          first.Departure.IATACode,
		Destination:     last.Arrival.IATACode,
		DepartureTime:   first.Departure.At,
		ArrivalTime:     last.Arrival.At,
		Price:           entity.Price{Amount: total, Currency: offer.Price.Currency},
		Stops:           len(segments) - 1,
		Duration:        FormatDuration(itinerary.Duration),
		DurationMinutes: DurationMinutes(itinerary.Duration),
		Segments:        segments,
		CabinClass:      cabin,
		Status:          flightStatus,
	}, nil
}

func parseLocalTime(value string) (time.Time, error) {
	t, err := time.Parse(entity.LocalDateTimeLayout, value)
	if err == nil {
		return t, nil
	}
	// some environments append an offset
	if t, rfcErr := time.Parse(time.RFC3339, value); rfcErr == nil {
		return t, nil
	}
	return time.Time{}, err
}
