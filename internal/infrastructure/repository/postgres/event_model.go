package postgres

import (
	"github.com/yldraft/olympic-draft/internal/domain/event"
)

type eventTableModel struct {
	ID          int64  `db:"id"`
	PublicID    string `db:"public_id"`
	Sport       string `db:"sport"`
	Name        string `db:"name"`
	Key         string `db:"event_key"`
	IsTeamEvent bool   `db:"is_team_event"`
	SortOrder   int    `db:"sort_order"`
}

func (m eventTableModel) toDomain() event.Event {
	return event.Event{
		ID:          m.PublicID,
		Sport:       m.Sport,
		Name:        m.Name,
		Key:         m.Key,
		IsTeamEvent: m.IsTeamEvent,
		SortOrder:   m.SortOrder,
	}
}

type entryTableModel struct {
	EventPublicID string `db:"event_public_id"`
	Key           string `db:"entry_key"`
	Name          string `db:"name"`
	CountryCode   string `db:"country_code"`
	IsTeam        bool   `db:"is_team"`
}

func (m entryTableModel) toDomain() event.Entry {
	return event.Entry{
		EventID:     m.EventPublicID,
		Key:         m.Key,
		Name:        m.Name,
		CountryCode: m.CountryCode,
		IsTeam:      m.IsTeam,
	}
}

type plannedEventTableModel struct {
	LeaguePublicID string `db:"league_public_id"`
	EventPublicID  string `db:"event_public_id"`
	Mode           string `db:"mode"`
	SortOrder      int    `db:"sort_order"`
}

func (m plannedEventTableModel) toDomain() event.PlannedEvent {
	return event.PlannedEvent{
		LeagueID:  m.LeaguePublicID,
		EventID:   m.EventPublicID,
		Mode:      event.Mode(m.Mode),
		SortOrder: m.SortOrder,
	}
}
