package draft

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/yldraft/olympic-draft/internal/domain/event"
)

// EventSelector decides which catalog events a league drafts by hand. The
// business rule has moved between policies before, so the policy is a
// strategy rather than a constant.
type EventSelector interface {
	// Select returns the events to mark draft-mode. entryCounts maps event
	// id to the number of eligible entries in the catalog.
	Select(events []event.Event, entryCounts map[string]int, draftRounds, memberCount int) ([]event.Event, error)
}

// CapacitySelector samples draftRounds events uniformly from the events
// whose entry count strictly exceeds the member count, so every member can
// always receive a unique entry. This is the default policy.
type CapacitySelector struct{}

func (CapacitySelector) Select(events []event.Event, entryCounts map[string]int, draftRounds, memberCount int) ([]event.Event, error) {
	eligible := make([]event.Event, 0, len(events))
	for _, ev := range events {
		if entryCounts[ev.ID] > memberCount {
			eligible = append(eligible, ev)
		}
	}
	if len(eligible) < draftRounds {
		return nil, fmt.Errorf("%w: eligible=%d requested=%d", ErrInsufficientCapacity, len(eligible), draftRounds)
	}

	rand.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	return eligible[:draftRounds], nil
}

// RandomSelector samples draftRounds events uniformly with no capacity
// check; kept for leagues that accept entry collisions going unserved.
type RandomSelector struct{}

func (RandomSelector) Select(events []event.Event, _ map[string]int, draftRounds, _ int) ([]event.Event, error) {
	if len(events) < draftRounds {
		return nil, fmt.Errorf("%w: catalog=%d requested=%d", ErrInsufficientCapacity, len(events), draftRounds)
	}

	sample := append([]event.Event(nil), events...)
	rand.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	return sample[:draftRounds], nil
}

// FirstNSelector takes the first draftRounds events by catalog sort order.
type FirstNSelector struct{}

func (FirstNSelector) Select(events []event.Event, _ map[string]int, draftRounds, _ int) ([]event.Event, error) {
	if len(events) < draftRounds {
		return nil, fmt.Errorf("%w: catalog=%d requested=%d", ErrInsufficientCapacity, len(events), draftRounds)
	}

	ordered := append([]event.Event(nil), events...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortOrder < ordered[j].SortOrder
	})
	return ordered[:draftRounds], nil
}

// GeneratePlan builds the full event plan for a league: the selector's
// events become draft-mode, every other catalog event auto-mode. Plan sort
// order mirrors catalog sort order so the snake sequence is deterministic
// and visible to members before their turn comes up.
//
// Generation is guarded, not idempotent: the caller must reject regeneration
// when plan rows already exist, because a new random selection would change
// turn order for a draft in progress.
func GeneratePlan(leagueID string, catalog []event.Event, entryCounts map[string]int, draftRounds, memberCount int, selector EventSelector) ([]event.PlannedEvent, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("league id is required")
	}
	if draftRounds < 1 {
		return nil, fmt.Errorf("draft rounds must be at least 1")
	}
	if memberCount < 1 {
		return nil, ErrNoMembers
	}
	if selector == nil {
		selector = CapacitySelector{}
	}

	drafted, err := selector.Select(catalog, entryCounts, draftRounds, memberCount)
	if err != nil {
		return nil, err
	}

	draftIDs := make(map[string]struct{}, len(drafted))
	for _, ev := range drafted {
		draftIDs[ev.ID] = struct{}{}
	}

	plan := make([]event.PlannedEvent, 0, len(catalog))
	for _, ev := range catalog {
		mode := event.ModeAuto
		if _, ok := draftIDs[ev.ID]; ok {
			mode = event.ModeDraft
		}
		plan = append(plan, event.PlannedEvent{
			LeagueID:  leagueID,
			EventID:   ev.ID,
			Mode:      mode,
			SortOrder: ev.SortOrder,
		})
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].SortOrder < plan[j].SortOrder
	})
	return plan, nil
}
