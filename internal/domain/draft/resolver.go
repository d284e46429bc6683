package draft

import (
	"fmt"
	"sort"

	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
)

// Resolve derives the current draft state from the roster order, the
// league's draft-mode events in plan order, and the picks committed so far.
//
// It is a pure read: the on-the-clock member depends only on the pick count
// per event, never on wall-clock state, so re-running it with the same
// inputs always yields the same answer. Turn enforcement re-resolves rather
// than caching for exactly that reason.
//
// Snake order: even event index walks the roster forward, odd walks it in
// reverse, so no position gets every earliest pick.
func Resolve(members []league.Member, plannedEvents []event.Event, picks []Pick) (State, error) {
	if len(members) == 0 {
		return State{}, ErrNoMembers
	}
	for _, m := range members {
		if !m.HasPosition() {
			return State{}, fmt.Errorf("%w: member %s has no draft position", ErrDraftNotStarted, m.UserID)
		}
	}
	if len(plannedEvents) == 0 {
		return State{}, ErrNoPlannedEvents
	}

	roster := sortedByPosition(members)
	picksByEvent := groupPicksByEvent(picks)

	for idx, ev := range plannedEvents {
		eventPicks := picksByEvent[ev.ID]
		if len(eventPicks) >= len(roster) {
			continue
		}

		direction := DirectionForward
		order := roster
		if idx%2 == 1 {
			direction = DirectionReverse
			order = reversed(roster)
		}

		return State{
			Event:      ev,
			EventIndex: idx,
			Direction:  direction,
			OnTheClock: order[len(eventPicks)],
			Picks:      eventPicks,
		}, nil
	}

	return State{Complete: true}, nil
}

func sortedByPosition(members []league.Member) []league.Member {
	out := append([]league.Member(nil), members...)
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DraftPosition < *out[j].DraftPosition
	})
	return out
}

func reversed(members []league.Member) []league.Member {
	out := make([]league.Member, 0, len(members))
	for i := len(members) - 1; i >= 0; i-- {
		out = append(out, members[i])
	}
	return out
}

func groupPicksByEvent(picks []Pick) map[string][]Pick {
	out := make(map[string][]Pick, len(picks))
	for _, p := range picks {
		out[p.EventID] = append(out[p.EventID], p)
	}
	for _, eventPicks := range out {
		sort.SliceStable(eventPicks, func(i, j int) bool {
			return eventPicks[i].PickedAt.Before(eventPicks[j].PickedAt)
		})
	}
	return out
}
