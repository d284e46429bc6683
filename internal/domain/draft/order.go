package draft

import (
	"math/rand/v2"

	"github.com/yldraft/olympic-draft/internal/domain/league"
)

// AssignDraftOrder produces a uniform random assignment of positions 1..N to
// the given members, keyed by user id. The permutation comes from a proper
// shuffle over a copied slice so the caller's iteration order cannot bias it.
//
// This is a one-shot operation: it refuses rosters where any position is
// already set, and the league status gate keeps it from running twice, since
// re-shuffling mid-draft would corrupt resolver state.
func AssignDraftOrder(members []league.Member) (map[string]int, error) {
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	for _, m := range members {
		if m.DraftPosition != nil {
			return nil, ErrOrderAlreadyAssigned
		}
	}

	userIDs := make([]string, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}
	rand.Shuffle(len(userIDs), func(i, j int) {
		userIDs[i], userIDs[j] = userIDs[j], userIDs[i]
	})

	out := make(map[string]int, len(userIDs))
	for i, userID := range userIDs {
		out[userID] = i + 1
	}
	return out, nil
}
