package event

import "fmt"

// Mode says how a planned event gets resolved for a league: drafted by the
// members in snake order, or auto-assigned by the system.
type Mode string

const (
	ModeDraft Mode = "draft"
	ModeAuto  Mode = "auto"
)

func ParseMode(v string) (Mode, error) {
	switch Mode(v) {
	case ModeDraft, ModeAuto:
		return Mode(v), nil
	default:
		return "", fmt.Errorf("unknown event mode %q", v)
	}
}

// Event is immutable catalog reference data for one Olympic event.
type Event struct {
	ID          string
	Sport       string
	Name        string
	Key         string
	IsTeamEvent bool
	SortOrder   int
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.Sport == "" {
		return fmt.Errorf("event sport is required")
	}
	if e.Name == "" {
		return fmt.Errorf("event name is required")
	}
	if e.Key == "" {
		return fmt.Errorf("event key is required")
	}

	return nil
}

// Entry is one draftable unit (athlete, team, or country) for one event.
// Individual events offer only individual entries, team events only teams.
type Entry struct {
	EventID     string
	Key         string
	Name        string
	CountryCode string
	IsTeam      bool
}

func (e Entry) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("entry event id is required")
	}
	if e.Key == "" {
		return fmt.Errorf("entry key is required")
	}
	if e.Name == "" {
		return fmt.Errorf("entry name is required")
	}

	return nil
}

// PlannedEvent is one row of a league's event plan, generated exactly once
// at draft start. SortOrder mirrors the catalog's so the snake sequence is
// deterministic and visible in advance.
type PlannedEvent struct {
	LeagueID  string
	EventID   string
	Mode      Mode
	SortOrder int
}
