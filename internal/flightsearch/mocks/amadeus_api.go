package mocks

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
)

const (
	ClientID     = "test-client-id"
	ClientSecret = "test-client-secret"
)

// AmadeusAPI is an in-process stand-in for the Amadeus self-service API
// covering the token, locations and flight-offers endpoints.
type AmadeusAPI struct {
	server *httptest.Server

	tokenCalls     atomic.Int32
	locationCalls  atomic.Int32
	offerCalls     atomic.Int32
	issuedTokens   atomic.Int32
	tokenExpiresIn atomic.Int32

	mu             sync.Mutex
	tokenStatus    int
	locationStatus int
	offerStatus    int
	offers         string
	locations      string
	lastQuery      url.Values
	tokenGate      chan struct{}
}

func amadeusMux(a *AmadeusAPI) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", a.handleToken)
	mux.HandleFunc("/v1/reference-data/locations", a.handleLocations)
	mux.HandleFunc("/v2/shopping/flight-offers", a.handleOffers)
	return mux
}

func NewAmadeusAPI() *AmadeusAPI {
	a := &AmadeusAPI{
		tokenStatus:    http.StatusOK,
		locationStatus: http.StatusOK,
		offerStatus:    http.StatusOK,
		offers:         FlightOffersJSON,
		locations:      LocationsJSON,
	}
	a.tokenExpiresIn.Store(1799)
	a.server = httptest.NewServer(amadeusMux(a))
	return a
}

func (a *AmadeusAPI) URL() string {
	return a.server.URL
}

func (a *AmadeusAPI) Client() *http.Client {
	return a.server.Client()
}

func (a *AmadeusAPI) Close() error {
	a.server.Close()
	return nil
}

func (a *AmadeusAPI) TokenCalls() int { return int(a.tokenCalls.Load()) }
func (a *AmadeusAPI) LocationCalls() int { return int(a.locationCalls.Load()) }
func (a *AmadeusAPI) OfferCalls() int { return int(a.offerCalls.Load()) }

func (a *AmadeusAPI) SetTokenExpiresIn(seconds int) {
	a.tokenExpiresIn.Store(int32(seconds))
}

func (a *AmadeusAPI) SetTokenStatus(code int) {
	a.mu.Lock()
	a.tokenStatus = code
	a.mu.Unlock()
}

func (a *AmadeusAPI) SetLocationStatus(code int) {
	a.mu.Lock()
	a.locationStatus = code
	a.mu.Unlock()
}

func (a *AmadeusAPI) SetOfferStatus(code int) {
	a.mu.Lock()
	a.offerStatus = code
	a.mu.Unlock()
}

func (a *AmadeusAPI) SetOffers(body string) {
	a.mu.Lock()
	a.offers = body
	a.mu.Unlock()
}

// BlockTokens holds every token request until the returned func is called.
func (a *AmadeusAPI) BlockTokens() (release func()) {
	gate := make(chan struct{})
	a.mu.Lock()
	a.tokenGate = gate
	a.mu.Unlock()
	return func() { close(gate) }
}

// LastQuery returns the query string of the most recent data request.
func (a *AmadeusAPI) LastQuery() url.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastQuery
}

func (a *AmadeusAPI) handleToken(w http.ResponseWriter, req *http.Request) {
	a.tokenCalls.Add(1)
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	a.mu.Lock()
	status, gate := a.tokenStatus, a.tokenGate
	a.mu.Unlock()
	if gate != nil {
		<-gate
	}

	if err := req.ParseForm(); err != nil {
		writeOAuthError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if req.PostForm.Get("grant_type") != "client_credentials" {
		writeOAuthError(w, http.StatusBadRequest, "unsupported_grant_type", "Only client_credentials value is allowed")
		return
	}
	if req.PostForm.Get("client_id") != ClientID || req.PostForm.Get("client_secret") != ClientSecret {
		writeOAuthError(w, http.StatusUnauthorized, "invalid_client", "Client credentials are invalid")
		return
	}
	if status != http.StatusOK {
		writeOAuthError(w, status, "server_error", "token service unavailable")
		return
	}

	n := a.issuedTokens.Add(1)
	writeJSON(w, http.StatusOK, map[string]any{
		"type":         "amadeusOAuth2Token",
		"username":     "dev@example.com",
		"access_token": fmt.Sprintf("token-%d", n),
		"token_type":   "Bearer",
		"expires_in":   a.tokenExpiresIn.Load(),
		"state":        "approved",
	})
}

func (a *AmadeusAPI) handleLocations(w http.ResponseWriter, req *http.Request) {
	a.locationCalls.Add(1)
	if !a.authorized(w, req) {
		return
	}
	a.mu.Lock()
	status, body := a.locationStatus, a.locations
	a.lastQuery = req.URL.Query()
	a.mu.Unlock()

	if status != http.StatusOK {
		writeAPIError(w, status, "SYSTEM ERROR HAS OCCURRED")
		return
	}
	writeRaw(w, body)
}

func (a *AmadeusAPI) handleOffers(w http.ResponseWriter, req *http.Request) {
	a.offerCalls.Add(1)
	if !a.authorized(w, req) {
		return
	}
	a.mu.Lock()
	status, body := a.offerStatus, a.offers
	a.lastQuery = req.URL.Query()
	a.mu.Unlock()

	if status != http.StatusOK {
		writeAPIError(w, status, "INVALID DATE")
		return
	}
	writeRaw(w, body)
}

func (a *AmadeusAPI) authorized(w http.ResponseWriter, req *http.Request) bool {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	auth := req.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer token-") {
		writeAPIError(w, http.StatusUnauthorized, "Invalid access token")
		return false
	}
	return true
}

func writeOAuthError(w http.ResponseWriter, code int, id, description string) {
	writeJSON(w, code, map[string]any{
		"error":             id,
		"error_description": description,
		"code":              38187,
		"title":             "Invalid parameters",
	})
}

func writeAPIError(w http.ResponseWriter, code int, title string) {
	writeJSON(w, code, map[string]any{
		"errors": []map[string]any{{"status": code, "code": 141, "title": title}},
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Println(err)
	}
}

func writeRaw(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/vnd.amadeus+json")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // test server
	w.Write([]byte(body))
}
