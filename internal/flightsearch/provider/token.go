package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// TokenSafetyMargin is subtracted from the reported lifetime so a token is
// never presented right before it expires.
const TokenSafetyMargin = 60 * time.Second

const tokenPath = "/v1/security/oauth2/token"

type TokenConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client
	Now          func() time.Time
}

// TokenSource caches a client_credentials bearer token. Concurrent callers
// that find the cache stale share a single exchange.
type TokenSource struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	now          func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time

	group singleflight.Group
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func NewTokenSource(cfg TokenConfig) *TokenSource {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &TokenSource{
		tokenURL:     strings.TrimRight(cfg.BaseURL, "/") + tokenPath,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   httpClient,
		now:          now,
	}
}

// Token returns the cached token while now < expiry, otherwise exchanges the
// client credentials for a new one. Failures are never cached.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	if token, ok := s.cached(); ok {
		return token, nil
	}

	ch := s.group.DoChan("token", func() (any, error) {
		if token, ok := s.cached(); ok {
			return token, nil
		}
		return s.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Invalidate drops the cached token so the next call exchanges again.
func (s *TokenSource) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.expiry = time.Time{}
	s.mu.Unlock()
}

// Expiry reports when the cached token stops being reused.
func (s *TokenSource) Expiry() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiry
}

func (s *TokenSource) cached() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" && s.now().Before(s.expiry) {
		return s.token, true
	}
	return "", false
}

func (s *TokenSource) refresh(ctx context.Context) (string, error) {
	resp, err := s.exchange(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	lifetime := time.Duration(resp.ExpiresIn)*time.Second - TokenSafetyMargin

	s.mu.Lock()
	s.token = resp.AccessToken
	s.expiry = s.now().Add(lifetime)
	s.mu.Unlock()

	return resp.AccessToken, nil
}

func (s *TokenSource) exchange(ctx context.Context) (*tokenResponse, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {s.clientID},
		"client_secret": {s.clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeErrorResponse(resp)
	}

	var t tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if t.AccessToken == "" {
		return nil, errors.New("token response has no access_token")
	}
	return &t, nil
}
