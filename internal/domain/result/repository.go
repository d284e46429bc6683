package result

import "context"

// Repository persists per-league event results and computes standings.
type Repository interface {
	// ReplaceForEvent swaps the full placement set for one (league, event)
	// in a single transaction; partial result tables are never observable.
	ReplaceForEvent(ctx context.Context, leagueID, eventID string, placements []Placement) error
	ListForEvent(ctx context.Context, leagueID, eventID string) ([]Placement, error)
	// Leaderboard returns one row per member, points descending then
	// username ascending. Members with no scoring picks appear with zero.
	Leaderboard(ctx context.Context, leagueID string) ([]Row, error)
}
