package draft

import (
	"errors"
	"testing"

	"github.com/yldraft/olympic-draft/internal/domain/league"
)

func TestAssignDraftOrder_Permutation(t *testing.T) {
	t.Parallel()

	members := []league.Member{
		{UserID: "alice"},
		{UserID: "bob"},
		{UserID: "carol"},
		{UserID: "dave"},
	}

	assignments, err := AssignDraftOrder(members)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	if len(assignments) != len(members) {
		t.Fatalf("expected %d assignments, got %d", len(members), len(assignments))
	}
	seen := make(map[int]string, len(assignments))
	for userID, pos := range assignments {
		if pos < 1 || pos > len(members) {
			t.Fatalf("position %d for %s out of range", pos, userID)
		}
		if other, dup := seen[pos]; dup {
			t.Fatalf("position %d assigned to both %s and %s", pos, other, userID)
		}
		seen[pos] = userID
	}
	for _, m := range members {
		if _, ok := assignments[m.UserID]; !ok {
			t.Fatalf("member %s got no position", m.UserID)
		}
	}
}

func TestAssignDraftOrder_SingleMember(t *testing.T) {
	t.Parallel()

	assignments, err := AssignDraftOrder([]league.Member{{UserID: "alice"}})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if assignments["alice"] != 1 {
		t.Fatalf("expected position 1, got %d", assignments["alice"])
	}
}

func TestAssignDraftOrder_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty roster", func(t *testing.T) {
		t.Parallel()
		if _, err := AssignDraftOrder(nil); !errors.Is(err, ErrNoMembers) {
			t.Fatalf("expected ErrNoMembers, got %v", err)
		}
	})

	t.Run("position already set", func(t *testing.T) {
		t.Parallel()
		members := []league.Member{
			{UserID: "alice", DraftPosition: position(1)},
			{UserID: "bob"},
		}
		if _, err := AssignDraftOrder(members); !errors.Is(err, ErrOrderAlreadyAssigned) {
			t.Fatalf("expected ErrOrderAlreadyAssigned, got %v", err)
		}
	})
}
