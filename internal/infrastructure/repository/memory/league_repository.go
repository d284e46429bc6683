package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
)

type memberRecord struct {
	member   league.Member
	leagueID string
}

type LeagueRepository struct {
	mu      sync.RWMutex
	items   map[string]league.League
	byCode  map[string]string
	members map[string][]league.Member
	plans   map[string][]event.PlannedEvent
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	byCode := make(map[string]string, len(leagues))
	for _, l := range leagues {
		items[l.ID] = l
		byCode[l.Code] = l.ID
	}

	return &LeagueRepository{
		items:   items,
		byCode:  byCode,
		members: make(map[string][]league.Member),
		plans:   make(map[string][]event.PlannedEvent),
	}
}

func (r *LeagueRepository) Create(_ context.Context, l league.League, commissioner league.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[l.ID] = l
	r.byCode[l.Code] = l.ID
	if commissioner.JoinedAt.IsZero() {
		commissioner.JoinedAt = l.CreatedAt
	}
	r.members[l.ID] = append(r.members[l.ID], commissioner)

	return nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	return l, ok, nil
}

func (r *LeagueRepository) GetByCode(_ context.Context, code string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[code]
	if !ok {
		return league.League{}, false, nil
	}
	l, ok := r.items[id]
	return l, ok, nil
}

func (r *LeagueRepository) ListByUser(_ context.Context, userID string) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0)
	for leagueID, members := range r.members {
		for _, m := range members {
			if m.UserID == userID {
				out = append(out, r.items[leagueID])
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *LeagueRepository) AddMember(_ context.Context, leagueID string, m league.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.members[leagueID] {
		if existing.UserID == m.UserID {
			return nil
		}
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	r.members[leagueID] = append(r.members[leagueID], m)

	return nil
}

func (r *LeagueRepository) IsMember(_ context.Context, leagueID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members[leagueID] {
		if m.UserID == userID {
			return true, nil
		}
	}

	return false, nil
}

func (r *LeagueRepository) ListMembers(_ context.Context, leagueID string) ([]league.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.members[leagueID]
	out := make([]league.Member, len(members))
	copy(out, members)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.HasPosition() && b.HasPosition():
			return *a.DraftPosition < *b.DraftPosition
		case a.HasPosition():
			return true
		case b.HasPosition():
			return false
		default:
			return a.JoinedAt.Before(b.JoinedAt)
		}
	})

	return out, nil
}

func (r *LeagueRepository) StartDraft(_ context.Context, leagueID string, plan []event.PlannedEvent, positions map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	planCopy := make([]event.PlannedEvent, len(plan))
	copy(planCopy, plan)
	r.plans[leagueID] = planCopy

	members := r.members[leagueID]
	for i := range members {
		if pos, ok := positions[members[i].UserID]; ok {
			p := pos
			members[i].DraftPosition = &p
		}
	}

	l := r.items[leagueID]
	l.Status = league.StatusDrafting
	r.items[leagueID] = l

	return nil
}

func (r *LeagueRepository) UpdateStatus(_ context.Context, leagueID string, status league.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return nil
	}
	l.Status = status
	r.items[leagueID] = l

	return nil
}

func (r *LeagueRepository) HasPlan(_ context.Context, leagueID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.plans[leagueID]) > 0, nil
}

// Plan exposes the stored plan to the in-memory event repository so both
// repositories can share one dataset in dev mode.
func (r *LeagueRepository) Plan(leagueID string) []event.PlannedEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan := r.plans[leagueID]
	out := make([]event.PlannedEvent, len(plan))
	copy(out, plan)
	return out
}
