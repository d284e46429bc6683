package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
	"github.com/yldraft/olympic-draft/internal/domain/league"
	"github.com/yldraft/olympic-draft/internal/domain/result"
)

type ResultRepository struct {
	mu         sync.RWMutex
	placements map[string]map[string][]result.Placement
	leagues    *LeagueRepository
	picks      *PickRepository
}

// NewResultRepository stores placements keyed by league then event. The
// league and pick repositories are consulted to compute the leaderboard,
// which in the postgres implementation is one aggregate query.
func NewResultRepository(leagues *LeagueRepository, picks *PickRepository) *ResultRepository {
	return &ResultRepository{
		placements: make(map[string]map[string][]result.Placement),
		leagues:    leagues,
		picks:      picks,
	}
}

func (r *ResultRepository) ReplaceForEvent(_ context.Context, leagueID, eventID string, placements []result.Placement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byEvent, ok := r.placements[leagueID]
	if !ok {
		byEvent = make(map[string][]result.Placement)
		r.placements[leagueID] = byEvent
	}
	out := make([]result.Placement, len(placements))
	copy(out, placements)
	sort.Slice(out, func(i, j int) bool { return out[i].Place < out[j].Place })
	byEvent[eventID] = out

	return nil
}

func (r *ResultRepository) ListForEvent(_ context.Context, leagueID, eventID string) ([]result.Placement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	placements := r.placements[leagueID][eventID]
	out := make([]result.Placement, len(placements))
	copy(out, placements)

	return out, nil
}

func (r *ResultRepository) Leaderboard(ctx context.Context, leagueID string) ([]result.Row, error) {
	members, err := r.leagues.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	picks, err := r.picks.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	pointsByEntry := make(map[string]map[string]int)
	for eventID, placements := range r.placements[leagueID] {
		byKey := make(map[string]int, len(placements))
		for _, p := range placements {
			byKey[p.EntryKey] = result.PointsByPlace[p.Place]
		}
		pointsByEntry[eventID] = byKey
	}
	r.mu.RUnlock()

	rows := make([]result.Row, 0, len(members))
	for _, m := range members {
		rows = append(rows, result.Row{
			UserID:   m.UserID,
			Username: m.Username,
			Points:   scorePicks(m, picks, pointsByEntry),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points == rows[j].Points {
			return rows[i].Username < rows[j].Username
		}
		return rows[i].Points > rows[j].Points
	})

	return rows, nil
}

func scorePicks(m league.Member, picks []draft.Pick, pointsByEntry map[string]map[string]int) int {
	total := 0
	for _, p := range picks {
		if p.UserID != m.UserID {
			continue
		}
		total += pointsByEntry[p.EventID][p.EntryKey]
	}

	return total
}
