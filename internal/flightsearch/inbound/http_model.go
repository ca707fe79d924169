package inbound

type LocationsResponse struct {
	Keyword   string             `json:"keyword"`
	Outcome   string             `json:"outcome"`
	Reason    string             `json:"reason,omitempty"`
	Locations []LocationResponse `json:"locations"`
}

type LocationResponse struct {
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
	CityName string `json:"city_name"`
}

type FlightsResponse struct {
	SearchID       string                 `json:"search_id"`
	SearchCriteria SearchCriteriaResponse `json:"search_criteria"`
	Metadata       MetadataResponse       `json:"metadata"`
	Outcome        string                 `json:"outcome"`
	Facets         FacetsResponse         `json:"facets"`
	PricePoints    []PricePointResponse   `json:"price_points"`
	Flights        []FlightResponse       `json:"flights"`
}

type SearchCriteriaResponse struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	Passengers    int    `json:"passengers"`
}

type MetadataResponse struct {
	Provider        string `json:"provider"`
	TotalResults    int    `json:"total_results"`
	FilteredResults int    `json:"filtered_results"`
	SearchTimeMs    int64  `json:"search_time_ms"`
	CacheHit        bool   `json:"cache_hit"`
}

type FacetsResponse struct {
	Airlines []string `json:"airlines"`
	MinPrice float64  `json:"min_price"`
	MaxPrice float64  `json:"max_price"`
}

type PricePointResponse struct {
	FlightID      string  `json:"flight_id"`
	Time          float64 `json:"time"`
	Price         float64 `json:"price"`
	Airline       string  `json:"airline"`
	FormattedTime string  `json:"formatted_time"`
}

type FlightResponse struct {
	ID            string            `json:"id"`
	Airline       string            `json:"airline"`
	AirlineCode   string            `json:"airline_code"`
	FlightNumber  string            `json:"flight_number"`
	Origin        string            `json:"origin"`
	Destination   string            `json:"destination"`
	DepartureTime string            `json:"departure_time"`
	ArrivalTime   string            `json:"arrival_time"`
	Price         PriceResponse     `json:"price"`
	Stops         int               `json:"stops"`
	Duration      DurationResponse  `json:"duration"`
	Segments      []SegmentResponse `json:"segments"`
	CabinClass    string            `json:"cabin_class"`
	Status        string            `json:"status,omitempty"`
}

type PriceResponse struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type DurationResponse struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type SegmentResponse struct {
	Departure   EndpointResponse `json:"departure"`
	Arrival     EndpointResponse `json:"arrival"`
	CarrierCode string           `json:"carrier_code"`
	Number      string           `json:"number"`
	Duration    string           `json:"duration"`
}

type EndpointResponse struct {
	IATACode string `json:"iata_code"`
	At       string `json:"at"`
}
