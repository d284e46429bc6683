package draft

import "errors"

var (
	ErrNotAMember      = errors.New("not a member of this league")
	ErrDraftNotActive  = errors.New("draft is not active")
	ErrDraftNotStarted = errors.New("draft order not set")
	ErrDraftComplete   = errors.New("draft is complete")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrInvalidEntry    = errors.New("entry is not draftable for this event")
	ErrAlreadyPicked   = errors.New("user already picked for this event")
	ErrEntryTaken      = errors.New("entry already taken for this event")

	ErrNoMembers            = errors.New("league has no members")
	ErrOrderAlreadyAssigned = errors.New("draft order already assigned")
	ErrInsufficientCapacity = errors.New("not enough draftable events for requested rounds")
	ErrNoPlannedEvents      = errors.New("league has no planned draft events")
)
