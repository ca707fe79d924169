package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
)

const (
	DefaultBaseURL       = "https://test.api.amadeus.com"
	DefaultCurrency      = "USD"
	DefaultMaxResults    = 20
	DefaultLocationLimit = 5

	locationsPath    = "/v1/reference-data/locations"
	flightOffersPath = "/v2/shopping/flight-offers"
)

type AmadeusConfig struct {
	BaseURL       string
	ClientID      string
	ClientSecret  string
	Currency      string
	MaxResults    int
	LocationLimit int
	HTTPClient    *http.Client
	// Status fills Flight.Status. Nil leaves it empty.
	Status StatusFunc
	// Tokens overrides the credential cache built from the fields above.
	Tokens *TokenSource
}

type AmadeusProvider struct {
	baseURL       string
	httpClient    *http.Client
	tokens        *TokenSource
	currency      string
	maxResults    int
	locationLimit int
	status        StatusFunc
}

func NewAmadeusProvider(cfg AmadeusConfig) *AmadeusProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.LocationLimit <= 0 {
		cfg.LocationLimit = DefaultLocationLimit
	}
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = NewTokenSource(TokenConfig{
			BaseURL:      cfg.BaseURL,
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			HTTPClient:   cfg.HTTPClient,
		})
	}

	return &AmadeusProvider{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    cfg.HTTPClient,
		tokens:        tokens,
		currency:      cfg.Currency,
		maxResults:    cfg.MaxResults,
		locationLimit: cfg.LocationLimit,
		status:        cfg.Status,
	}
}

func (a *AmadeusProvider) Name() string {
	return "Amadeus"
}

// SearchLocations looks up cities and airports matching keyword. Keywords
// shorter than MinKeywordLength return no results without a request.
func (a *AmadeusProvider) SearchLocations(ctx context.Context, keyword string) ([]entity.Location, error) {
	keyword = strings.TrimSpace(keyword)
	if utf8.RuneCountInString(keyword) < MinKeywordLength {
		return []entity.Location{}, nil
	}

	query := url.Values{
		"keyword":     {keyword},
		"subType":     {"CITY,AIRPORT"},
		"page[limit]": {strconv.Itoa(a.locationLimit)},
	}

	var resp locationsResponse
	if err := a.get(ctx, locationsPath, query, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookup, err)
	}

	return mapLocations(resp), nil
}

// Search returns up to MaxResults one-way offers priced in the configured
// currency. A response without offers yields an empty slice.
func (a *AmadeusProvider) Search(ctx context.Context, req SearchRequest) ([]entity.Flight, error) {
	query := url.Values{
		"originLocationCode":      {strings.ToUpper(req.Origin)},
		"destinationLocationCode": {strings.ToUpper(req.Destination)},
		"departureDate":           {req.DepartureDate.Format("2006-01-02")},
		"adults":                  {strconv.Itoa(req.Passengers)},
		"currencyCode":            {a.currency},
		"max":                     {strconv.Itoa(a.maxResults)},
	}

	var resp flightOffersResponse
	if err := a.get(ctx, flightOffersPath, query, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}

	if len(resp.Data) == 0 {
		return []entity.Flight{}, nil
	}

	flights, err := mapFlightOffers(resp, a.status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}
	return flights, nil
}

func (a *AmadeusProvider) get(ctx context.Context, path string, query url.Values, target any) error {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// the token was revoked before its expiry
		a.tokens.Invalidate()
	}
	if resp.StatusCode != http.StatusOK {
		return decodeErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func decodeErrorResponse(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("status %d: read body: %w", resp.StatusCode, err)
	}

	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var details []string
	for _, item := range e.Errors {
		detail := item.Title
		if item.Detail != "" {
			detail += ": " + item.Detail
		}
		details = append(details, detail)
	}
	if e.ErrorDescription != "" {
		details = append(details, e.ErrorDescription)
	} else if e.Error != "" {
		details = append(details, e.Error)
	}
	if len(details) == 0 {
		return errors.New("status " + strconv.Itoa(resp.StatusCode))
	}
	return fmt.Errorf("status %d: %s", resp.StatusCode, strings.Join(details, "; "))
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
