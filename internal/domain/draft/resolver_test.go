package draft

import (
	"errors"
	"testing"
	"time"

	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
)

func position(p int) *int {
	return &p
}

func testRoster() []league.Member {
	return []league.Member{
		{UserID: "carol", Username: "carol", DraftPosition: position(3)},
		{UserID: "alice", Username: "alice", DraftPosition: position(1)},
		{UserID: "bob", Username: "bob", DraftPosition: position(2)},
	}
}

func testEvents() []event.Event {
	return []event.Event{
		{ID: "ev-1", Sport: "Swimming", Name: "100m Freestyle", Key: "swim-100", SortOrder: 1},
		{ID: "ev-2", Sport: "Athletics", Name: "100m Sprint", Key: "track-100", SortOrder: 2},
	}
}

func pickAt(eventID, userID string, offset time.Duration) Pick {
	base := time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)
	return Pick{
		LeagueID:  "league-1",
		EventID:   eventID,
		UserID:    userID,
		Username:  userID,
		EntryKey:  "entry-" + userID,
		EntryName: "Entry " + userID,
		PickedAt:  base.Add(offset),
	}
}

func TestResolve_FirstTurnFollowsPositionOrder(t *testing.T) {
	t.Parallel()

	state, err := Resolve(testRoster(), testEvents(), nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if state.Complete {
		t.Fatalf("expected draft in progress")
	}
	if state.Event.ID != "ev-1" || state.EventIndex != 0 {
		t.Fatalf("expected first event on the clock, got %s index %d", state.Event.ID, state.EventIndex)
	}
	if state.Direction != DirectionForward {
		t.Fatalf("expected forward direction, got %s", state.Direction)
	}
	if state.OnTheClock.UserID != "alice" {
		t.Fatalf("expected alice on the clock, got %s", state.OnTheClock.UserID)
	}
}

func TestResolve_OddEventReversesOrder(t *testing.T) {
	t.Parallel()

	picks := []Pick{
		pickAt("ev-1", "alice", 0),
		pickAt("ev-1", "bob", time.Second),
		pickAt("ev-1", "carol", 2*time.Second),
	}

	state, err := Resolve(testRoster(), testEvents(), picks)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if state.Event.ID != "ev-2" || state.EventIndex != 1 {
		t.Fatalf("expected second event, got %s index %d", state.Event.ID, state.EventIndex)
	}
	if state.Direction != DirectionReverse {
		t.Fatalf("expected reverse direction, got %s", state.Direction)
	}
	if state.OnTheClock.UserID != "carol" {
		t.Fatalf("expected carol first in reverse round, got %s", state.OnTheClock.UserID)
	}
}

func TestResolve_MidEventTurn(t *testing.T) {
	t.Parallel()

	picks := []Pick{pickAt("ev-1", "alice", 0)}

	state, err := Resolve(testRoster(), testEvents(), picks)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if state.OnTheClock.UserID != "bob" {
		t.Fatalf("expected bob on the clock, got %s", state.OnTheClock.UserID)
	}
	if len(state.Picks) != 1 || state.Picks[0].UserID != "alice" {
		t.Fatalf("expected alice's pick in state, got %v", state.Picks)
	}
}

func TestResolve_PicksOrderedByCommitTime(t *testing.T) {
	t.Parallel()

	// Deliberately out of order in the input slice.
	picks := []Pick{
		pickAt("ev-1", "bob", time.Second),
		pickAt("ev-1", "alice", 0),
	}

	state, err := Resolve(testRoster(), testEvents(), picks)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if state.Picks[0].UserID != "alice" || state.Picks[1].UserID != "bob" {
		t.Fatalf("expected picks in commit order, got %v", state.Picks)
	}
	if state.OnTheClock.UserID != "carol" {
		t.Fatalf("expected carol on the clock, got %s", state.OnTheClock.UserID)
	}
}

func TestResolve_CompleteWhenAllEventsFull(t *testing.T) {
	t.Parallel()

	picks := []Pick{
		pickAt("ev-1", "alice", 0),
		pickAt("ev-1", "bob", time.Second),
		pickAt("ev-1", "carol", 2*time.Second),
		pickAt("ev-2", "carol", 3*time.Second),
		pickAt("ev-2", "bob", 4*time.Second),
		pickAt("ev-2", "alice", 5*time.Second),
	}

	state, err := Resolve(testRoster(), testEvents(), picks)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if !state.Complete {
		t.Fatalf("expected complete draft, got %+v", state)
	}
	if state.Event.ID != "" || state.OnTheClock.UserID != "" {
		t.Fatalf("expected zero values on complete state, got %+v", state)
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no members", func(t *testing.T) {
		t.Parallel()
		if _, err := Resolve(nil, testEvents(), nil); !errors.Is(err, ErrNoMembers) {
			t.Fatalf("expected ErrNoMembers, got %v", err)
		}
	})

	t.Run("member without position", func(t *testing.T) {
		t.Parallel()
		members := []league.Member{
			{UserID: "alice", DraftPosition: position(1)},
			{UserID: "bob"},
		}
		if _, err := Resolve(members, testEvents(), nil); !errors.Is(err, ErrDraftNotStarted) {
			t.Fatalf("expected ErrDraftNotStarted, got %v", err)
		}
	})

	t.Run("no planned events", func(t *testing.T) {
		t.Parallel()
		if _, err := Resolve(testRoster(), nil, nil); !errors.Is(err, ErrNoPlannedEvents) {
			t.Fatalf("expected ErrNoPlannedEvents, got %v", err)
		}
	})
}
