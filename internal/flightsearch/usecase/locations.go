package usecase

import (
	"context"
	"log/slog"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
)

type Outcome string

const (
	OutcomeFound  Outcome = "found"
	OutcomeEmpty  Outcome = "empty"
	OutcomeFailed Outcome = "failed"
)

type LocationsOutput struct {
	Keyword   string
	Outcome   Outcome
	Reason    string
	Locations []entity.Location
}

// Locations never fails. A failed lookup has no locations and
// OutcomeFailed, so callers can tell it apart from a lookup without matches.
func (u *Usecase) Locations(ctx context.Context, keyword string) LocationsOutput {
	out := LocationsOutput{Keyword: keyword, Locations: []entity.Location{}}

	ctx, cancel := u.withSearchTimeout(ctx)
	defer cancel()

	locations, err := u.provider.SearchLocations(ctx, keyword)
	if err != nil {
		slog.WarnContext(ctx, "location lookup failed", "keyword", keyword, "provider", u.provider.Name(), "error", err)
		out.Outcome = OutcomeFailed
		out.Reason = err.Error()
		return out
	}

	if len(locations) == 0 {
		out.Outcome = OutcomeEmpty
		return out
	}

	out.Outcome = OutcomeFound
	out.Locations = locations
	return out
}

func (u *Usecase) withSearchTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.searchTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.searchTimeout)
}
