package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
)

type PickRepository struct {
	mu    sync.Mutex
	picks map[string][]draft.Pick
}

func NewPickRepository() *PickRepository {
	return &PickRepository{picks: make(map[string][]draft.Pick)}
}

func (r *PickRepository) Create(_ context.Context, pick draft.Pick, turnIndex int) (draft.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	eventCount := 0
	for _, existing := range r.picks[pick.LeagueID] {
		if existing.EventID != pick.EventID {
			continue
		}
		if existing.UserID == pick.UserID {
			return draft.Pick{}, draft.ErrAlreadyPicked
		}
		if existing.EntryKey == pick.EntryKey {
			return draft.Pick{}, draft.ErrEntryTaken
		}
		eventCount++
	}
	if eventCount != turnIndex {
		return draft.Pick{}, draft.ErrNotYourTurn
	}

	pick.PickedAt = time.Now()
	r.picks[pick.LeagueID] = append(r.picks[pick.LeagueID], pick)

	return pick, nil
}

func (r *PickRepository) ListByLeague(_ context.Context, leagueID string) ([]draft.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortedCopy(r.picks[leagueID], nil), nil
}

func (r *PickRepository) ListByEvent(_ context.Context, leagueID, eventID string) ([]draft.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortedCopy(r.picks[leagueID], func(p draft.Pick) bool {
		return p.EventID == eventID
	}), nil
}

func (r *PickRepository) ListByUser(_ context.Context, leagueID, userID string) ([]draft.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortedCopy(r.picks[leagueID], func(p draft.Pick) bool {
		return p.UserID == userID
	}), nil
}

func (r *PickRepository) CreateAuto(_ context.Context, picks []draft.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pick := range picks {
		conflict := false
		for _, existing := range r.picks[pick.LeagueID] {
			if existing.EventID != pick.EventID {
				continue
			}
			if existing.UserID == pick.UserID || existing.EntryKey == pick.EntryKey {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		if pick.PickedAt.IsZero() {
			pick.PickedAt = time.Now()
		}
		r.picks[pick.LeagueID] = append(r.picks[pick.LeagueID], pick)
	}

	return nil
}

func (r *PickRepository) sortedCopy(picks []draft.Pick, keep func(draft.Pick) bool) []draft.Pick {
	out := make([]draft.Pick, 0, len(picks))
	for _, p := range picks {
		if keep == nil || keep(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PickedAt.Before(out[j].PickedAt)
	})

	return out
}
