package league

import (
	"fmt"
	"time"
)

// Status is the league lifecycle state machine:
// lobby -> drafting -> locked, never backwards.
type Status string

const (
	StatusLobby    Status = "lobby"
	StatusDrafting Status = "drafting"
	StatusLocked   Status = "locked"
)

func ParseStatus(v string) (Status, error) {
	switch Status(v) {
	case StatusLobby, StatusDrafting, StatusLocked:
		return Status(v), nil
	default:
		return "", fmt.Errorf("unknown league status %q", v)
	}
}

// CanTransition reports whether the status machine allows moving to next.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusLobby:
		return next == StatusDrafting
	case StatusDrafting:
		return next == StatusLocked
	default:
		return false
	}
}

// League is one draft group of members sharing an event plan and pick set.
type League struct {
	ID             string
	Code           string
	Name           string
	Status         Status
	CommissionerID string
	DraftRounds    int
	CreatedAt      time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Code == "" {
		return fmt.Errorf("league code is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.DraftRounds < 1 {
		return fmt.Errorf("league draft rounds must be at least 1")
	}
	if _, err := ParseStatus(string(l.Status)); err != nil {
		return err
	}

	return nil
}

// Member is one user in a league. DraftPosition is nil until the draft
// starts; once assigned, positions form a permutation of 1..N.
type Member struct {
	UserID        string
	Username      string
	DraftPosition *int
	JoinedAt      time.Time
}

// HasPosition reports whether the member holds an assigned draft slot.
func (m Member) HasPosition() bool {
	return m.DraftPosition != nil && *m.DraftPosition > 0
}
