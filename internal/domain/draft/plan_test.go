package draft

import (
	"errors"
	"testing"

	"github.com/yldraft/olympic-draft/internal/domain/event"
)

func testCatalog() []event.Event {
	return []event.Event{
		{ID: "ev-1", Sport: "Swimming", Name: "100m Freestyle", Key: "swim-100", SortOrder: 1},
		{ID: "ev-2", Sport: "Athletics", Name: "100m Sprint", Key: "track-100", SortOrder: 2},
		{ID: "ev-3", Sport: "Gymnastics", Name: "All-Around", Key: "gym-aa", SortOrder: 3},
		{ID: "ev-4", Sport: "Judo", Name: "73kg", Key: "judo-73", SortOrder: 4},
	}
}

func TestCapacitySelector_RequiresStrictCapacity(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	// Only ev-2 and ev-4 can serve 3 members a unique entry each.
	entryCounts := map[string]int{
		"ev-1": 3,
		"ev-2": 4,
		"ev-3": 2,
		"ev-4": 10,
	}

	selected, err := CapacitySelector{}.Select(catalog, entryCounts, 2, 3)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("expected 2 events, got %d", len(selected))
	}
	for _, ev := range selected {
		if ev.ID != "ev-2" && ev.ID != "ev-4" {
			t.Fatalf("selected undersized event %s", ev.ID)
		}
	}
}

func TestCapacitySelector_InsufficientCapacity(t *testing.T) {
	t.Parallel()

	entryCounts := map[string]int{"ev-1": 4}
	_, err := CapacitySelector{}.Select(testCatalog(), entryCounts, 2, 3)
	if !errors.Is(err, ErrInsufficientCapacity) {
		t.Fatalf("expected ErrInsufficientCapacity, got %v", err)
	}
}

func TestRandomSelector_CatalogTooSmall(t *testing.T) {
	t.Parallel()

	_, err := RandomSelector{}.Select(testCatalog()[:1], nil, 2, 3)
	if !errors.Is(err, ErrInsufficientCapacity) {
		t.Fatalf("expected ErrInsufficientCapacity, got %v", err)
	}
}

func TestFirstNSelector_TakesCatalogOrder(t *testing.T) {
	t.Parallel()

	shuffled := []event.Event{
		{ID: "ev-3", Key: "gym-aa", SortOrder: 3},
		{ID: "ev-1", Key: "swim-100", SortOrder: 1},
		{ID: "ev-2", Key: "track-100", SortOrder: 2},
	}

	selected, err := FirstNSelector{}.Select(shuffled, nil, 2, 3)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(selected) != 2 || selected[0].ID != "ev-1" || selected[1].ID != "ev-2" {
		t.Fatalf("expected first two by sort order, got %v", selected)
	}
}

func TestGeneratePlan_CoversWholeCatalog(t *testing.T) {
	t.Parallel()

	plan, err := GeneratePlan("league-1", testCatalog(), nil, 2, 3, FirstNSelector{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(plan) != 4 {
		t.Fatalf("expected plan row per catalog event, got %d", len(plan))
	}
	wantModes := map[string]event.Mode{
		"ev-1": event.ModeDraft,
		"ev-2": event.ModeDraft,
		"ev-3": event.ModeAuto,
		"ev-4": event.ModeAuto,
	}
	for i, row := range plan {
		if row.LeagueID != "league-1" {
			t.Fatalf("row %d has league %s", i, row.LeagueID)
		}
		if row.SortOrder != i+1 {
			t.Fatalf("expected plan sorted by catalog order, row %d has sort %d", i, row.SortOrder)
		}
		if row.Mode != wantModes[row.EventID] {
			t.Fatalf("event %s mode %s, want %s", row.EventID, row.Mode, wantModes[row.EventID])
		}
	}
}

func TestGeneratePlan_DefaultSelectorChecksCapacity(t *testing.T) {
	t.Parallel()

	entryCounts := map[string]int{"ev-1": 2, "ev-2": 2, "ev-3": 2, "ev-4": 2}
	_, err := GeneratePlan("league-1", testCatalog(), entryCounts, 1, 3, nil)
	if !errors.Is(err, ErrInsufficientCapacity) {
		t.Fatalf("expected ErrInsufficientCapacity, got %v", err)
	}
}

func TestGeneratePlan_Guards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		leagueID    string
		draftRounds int
		memberCount int
	}{
		{name: "missing league id", leagueID: "", draftRounds: 2, memberCount: 3},
		{name: "zero draft rounds", leagueID: "league-1", draftRounds: 0, memberCount: 3},
		{name: "zero members", leagueID: "league-1", draftRounds: 2, memberCount: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := GeneratePlan(tc.leagueID, testCatalog(), nil, tc.draftRounds, tc.memberCount, FirstNSelector{})
			if err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
