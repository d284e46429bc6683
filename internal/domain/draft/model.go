package draft

import (
	"fmt"
	"time"

	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
)

// Direction is the turn order of one snake round.
type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
)

// Pick is one committed draft selection. Picks are append-only; at most one
// exists per (league, event, user) and per (league, event, entry key).
type Pick struct {
	LeagueID  string
	EventID   string
	UserID    string
	Username  string
	EntryKey  string
	EntryName string
	PickedAt  time.Time
}

func (p Pick) Validate() error {
	if p.LeagueID == "" {
		return fmt.Errorf("pick league id is required")
	}
	if p.EventID == "" {
		return fmt.Errorf("pick event id is required")
	}
	if p.UserID == "" {
		return fmt.Errorf("pick user id is required")
	}
	if p.EntryKey == "" {
		return fmt.Errorf("pick entry key is required")
	}
	if p.EntryName == "" {
		return fmt.Errorf("pick entry name is required")
	}

	return nil
}

// State is the resolver output. When Complete is false the remaining fields
// describe the event being drafted and the member on the clock; when true
// they are zero values.
type State struct {
	Complete   bool
	Event      event.Event
	EventIndex int
	Direction  Direction
	OnTheClock league.Member
	// Picks holds the committed picks for the current event in commit order.
	Picks []Pick
}
