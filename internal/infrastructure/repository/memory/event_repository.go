package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/yldraft/olympic-draft/internal/domain/event"
)

type EventRepository struct {
	mu      sync.RWMutex
	events  map[string]event.Event
	entries map[string][]event.Entry
	leagues *LeagueRepository
}

// NewEventRepository builds a catalog over the given events and entries.
// The league repository is consulted for planned event rows so both share
// one dataset in dev mode.
func NewEventRepository(events []event.Event, entries []event.Entry, leagues *LeagueRepository) *EventRepository {
	byID := make(map[string]event.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	byEvent := make(map[string][]event.Entry)
	for _, e := range entries {
		byEvent[e.EventID] = append(byEvent[e.EventID], e)
	}

	return &EventRepository{
		events:  byID,
		entries: byEvent,
		leagues: leagues,
	}
}

func (r *EventRepository) ListEvents(_ context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder == out[j].SortOrder {
			return out[i].ID < out[j].ID
		}
		return out[i].SortOrder < out[j].SortOrder
	})

	return out, nil
}

func (r *EventRepository) GetEventByID(_ context.Context, eventID string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[eventID]
	return e, ok, nil
}

func (r *EventRepository) UpsertCatalog(_ context.Context, events []event.Event, entries []event.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range events {
		r.events[e.ID] = e
	}
	for _, entry := range entries {
		existing := r.entries[entry.EventID]
		replaced := false
		for i := range existing {
			if existing[i].Key == entry.Key {
				existing[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, entry)
		}
		r.entries[entry.EventID] = existing
	}

	return nil
}

func (r *EventRepository) ListEntries(_ context.Context, eventID string, query string, limit int) ([]event.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[eventID]
	if !ok {
		return nil, nil
	}

	needle := strings.ToLower(query)
	out := make([]event.Entry, 0)
	for _, entry := range r.entries[eventID] {
		if entry.IsTeam != e.IsTeamEvent {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(entry.Name), needle) &&
			!strings.Contains(strings.ToLower(entry.Key), needle) {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *EventRepository) GetEntry(_ context.Context, eventID, entryKey string) (event.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[eventID]
	if !ok {
		return event.Entry{}, false, nil
	}
	for _, entry := range r.entries[eventID] {
		if entry.Key == entryKey && entry.IsTeam == e.IsTeamEvent {
			return entry, true, nil
		}
	}

	return event.Entry{}, false, nil
}

func (r *EventRepository) CountEntriesByEvent(_ context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int, len(r.events))
	for id, e := range r.events {
		n := 0
		for _, entry := range r.entries[id] {
			if entry.IsTeam == e.IsTeamEvent {
				n++
			}
		}
		counts[id] = n
	}

	return counts, nil
}

func (r *EventRepository) ListPlannedEvents(_ context.Context, leagueID string, mode event.Mode) ([]event.PlannedEvent, error) {
	plan := r.leagues.Plan(leagueID)
	out := make([]event.PlannedEvent, 0, len(plan))
	for _, p := range plan {
		if mode != "" && p.Mode != mode {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })

	return out, nil
}
