package result

import (
	"fmt"
	"time"
)

// MaxPlace is the deepest placement that scores points.
const MaxPlace = 10

// PointsByPlace maps a placement to the points a matching pick earns.
var PointsByPlace = map[int]int{
	1: 10, 2: 9, 3: 8, 4: 7, 5: 6, 6: 5, 7: 4, 8: 3, 9: 2, 10: 1,
}

// Placement is one row of an event result table for a league.
type Placement struct {
	LeagueID  string
	EventID   string
	Place     int
	EntryKey  string
	EntryName string
	CreatedAt time.Time
}

func (p Placement) Validate() error {
	if p.LeagueID == "" {
		return fmt.Errorf("placement league id is required")
	}
	if p.EventID == "" {
		return fmt.Errorf("placement event id is required")
	}
	if p.Place < 1 || p.Place > MaxPlace {
		return fmt.Errorf("placement place must be between 1 and %d", MaxPlace)
	}
	if p.EntryKey == "" {
		return fmt.Errorf("placement entry key is required")
	}
	if p.EntryName == "" {
		return fmt.Errorf("placement entry name is required")
	}

	return nil
}

// Row is one leaderboard line: points summed over a member's picks that
// match a placement by entry key.
type Row struct {
	UserID   string
	Username string
	Points   int
}
