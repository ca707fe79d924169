package provider

type errorResponse struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
	// oauth2 endpoint shape
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type locationsResponse struct {
	Data []struct {
		SubType  string `json:"subType"`
		Name     string `json:"name"`
		IATACode string `json:"iataCode"`
		Address  struct {
			CityName    string `json:"cityName"`
			CountryCode string `json:"countryCode"`
		} `json:"address"`
	} `json:"data"`
}

type flightOffersResponse struct {
	Data         []flightOffer `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

type flightOffer struct {
	ID          string `json:"id"`
	Itineraries []struct {
		Duration string         `json:"duration"`
		Segments []offerSegment `json:"segments"`
	} `json:"itineraries"`
	Price struct {
		Currency string `json:"currency"`
		Total    string `json:"total"`
	} `json:"price"`
	TravelerPricings []struct {
		FareDetailsBySegment []struct {
			SegmentID string `json:"segmentId"`
			Cabin     string `json:"cabin"`
		} `json:"fareDetailsBySegment"`
	} `json:"travelerPricings"`
}

type offerSegment struct {
	Departure   offerEndpoint `json:"departure"`
	Arrival     offerEndpoint `json:"arrival"`
	CarrierCode string        `json:"carrierCode"`
	Number      string        `json:"number"`
	Duration    string        `json:"duration"`
}

type offerEndpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}
