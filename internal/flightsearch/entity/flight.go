package entity

import "time"

// LocalDateTimeLayout is the upstream wall-clock format. Instants carry no
// zone offset; they are airport-local times stored in a UTC time.Time.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

const DefaultCabinClass = "ECONOMY"

type Location struct {
	Name     string
	IATACode string
	CityName string
}

type Endpoint struct {
	IATACode string
	At       time.Time
}

type Segment struct {
	Departure   Endpoint
	Arrival     Endpoint
	CarrierCode string
	Number      string
	Duration    string
}

type Price struct {
	Amount   float64
	Currency string
}

// Flight is one offer. Segments are in flown order, Stops is always
// len(Segments)-1 and Origin/Destination are the first departure and the
// last arrival.
type Flight struct {
	ID              string
	Airline         string
	AirlineCode     string
	FlightNumber    string
	Origin          string
	Destination     string
	DepartureTime   time.Time
	ArrivalTime     time.Time
	Price           Price
	Stops           int
	Duration        string
	DurationMinutes int
	Segments        []Segment
	CabinClass      string
	Status          string
}

// Clone copies the segment slice so callers cannot mutate a cached flight.
func (f Flight) Clone() Flight {
	f.Segments = append([]Segment(nil), f.Segments...)
	return f
}
