package draft

import "context"

// PickRepository persists committed picks. Implementations must enforce the
// per-(league,event,user) and per-(league,event,entry) uniqueness
// invariants and surface violations as ErrAlreadyPicked / ErrEntryTaken.
type PickRepository interface {
	// Create commits one pick atomically. turnIndex is the number of picks
	// the caller observed for the event when it resolved the turn; the
	// insert and a re-count run in the same transaction, and a count that
	// lands anywhere other than turnIndex+1 rolls back with ErrNotYourTurn.
	Create(ctx context.Context, pick Pick, turnIndex int) (Pick, error)

	ListByLeague(ctx context.Context, leagueID string) ([]Pick, error)
	ListByEvent(ctx context.Context, leagueID, eventID string) ([]Pick, error)
	ListByUser(ctx context.Context, leagueID, userID string) ([]Pick, error)

	// CreateAuto inserts system-assigned picks for an auto-mode event,
	// skipping rows that would violate a uniqueness invariant.
	CreateAuto(ctx context.Context, picks []Pick) error
}
