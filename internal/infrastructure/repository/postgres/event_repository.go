package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yldraft/olympic-draft/internal/domain/event"
	qb "github.com/yldraft/olympic-draft/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = "id, public_id, sport, name, event_key, is_team_event, sort_order"

func (r *EventRepository) ListEvents(ctx context.Context) ([]event.Event, error) {
	query, args, err := qb.Select(eventColumns).From("events").
		OrderBy("sort_order ASC", "public_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	query, args, err := qb.Select(eventColumns).From("events").
		Where(qb.Eq("public_id", eventID)).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build get event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *EventRepository) UpsertCatalog(ctx context.Context, events []event.Event, entries []event.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for upsert catalog: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertEventQuery = `
INSERT INTO events (public_id, sport, name, event_key, is_team_event, sort_order)
VALUES (:public_id, :sport, :name, :event_key, :is_team_event, :sort_order)
ON CONFLICT (event_key)
DO UPDATE SET
    sport = EXCLUDED.sport,
    name = EXCLUDED.name,
    is_team_event = EXCLUDED.is_team_event,
    sort_order = EXCLUDED.sort_order`
	for _, e := range events {
		upsertSQL, upsertArgs, err := sqlx.Named(upsertEventQuery, map[string]any{
			"public_id":     e.ID,
			"sport":         e.Sport,
			"name":          e.Name,
			"event_key":     e.Key,
			"is_team_event": e.IsTeamEvent,
			"sort_order":    e.SortOrder,
		})
		if err != nil {
			return fmt.Errorf("bind upsert event query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(upsertSQL), upsertArgs...); err != nil {
			return fmt.Errorf("upsert event %s: %w", e.ID, err)
		}
	}

	const upsertEntryQuery = `
INSERT INTO event_entries (event_public_id, entry_key, name, country_code, is_team)
VALUES (:event_public_id, :entry_key, :name, :country_code, :is_team)
ON CONFLICT (event_public_id, entry_key)
DO UPDATE SET
    name = EXCLUDED.name,
    country_code = EXCLUDED.country_code,
    is_team = EXCLUDED.is_team`
	for _, entry := range entries {
		upsertSQL, upsertArgs, err := sqlx.Named(upsertEntryQuery, map[string]any{
			"event_public_id": entry.EventID,
			"entry_key":       entry.Key,
			"name":            entry.Name,
			"country_code":    entry.CountryCode,
			"is_team":         entry.IsTeam,
		})
		if err != nil {
			return fmt.Errorf("bind upsert entry query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(upsertSQL), upsertArgs...); err != nil {
			return fmt.Errorf("upsert entry %s/%s: %w", entry.EventID, entry.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert catalog tx: %w", err)
	}

	return nil
}

func (r *EventRepository) ListEntries(ctx context.Context, eventID string, query string, limit int) ([]event.Entry, error) {
	builder := qb.Select("e.event_public_id", "e.entry_key", "e.name", "e.country_code", "e.is_team").
		From("event_entries e").
		Join("JOIN events ev ON ev.public_id = e.event_public_id").
		Where(
			qb.Eq("e.event_public_id", eventID),
			qb.Eq("e.is_team", qb.Raw("ev.is_team_event")),
		).
		OrderBy("e.name ASC").
		Limit(limit)
	if query != "" {
		pattern := "%" + query + "%"
		builder.Where(qb.Or(
			qb.ILike("e.name", pattern),
			qb.ILike("e.entry_key", pattern),
		))
	}
	listSQL, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list entries query: %w", err)
	}

	var rows []entryTableModel
	if err := r.db.SelectContext(ctx, &rows, listSQL, args...); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	out := make([]event.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *EventRepository) GetEntry(ctx context.Context, eventID, entryKey string) (event.Entry, bool, error) {
	getSQL, args, err := qb.Select("e.event_public_id", "e.entry_key", "e.name", "e.country_code", "e.is_team").
		From("event_entries e").
		Join("JOIN events ev ON ev.public_id = e.event_public_id").
		Where(
			qb.Eq("e.event_public_id", eventID),
			qb.Eq("e.entry_key", entryKey),
			qb.Eq("e.is_team", qb.Raw("ev.is_team_event")),
		).
		ToSQL()
	if err != nil {
		return event.Entry{}, false, fmt.Errorf("build get entry query: %w", err)
	}

	var row entryTableModel
	if err := r.db.GetContext(ctx, &row, getSQL, args...); err != nil {
		if isNotFound(err) {
			return event.Entry{}, false, nil
		}
		return event.Entry{}, false, fmt.Errorf("get entry: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *EventRepository) CountEntriesByEvent(ctx context.Context) (map[string]int, error) {
	const countQuery = `
SELECT ev.public_id AS event_public_id, COUNT(e.entry_key) AS entry_count
FROM events ev
LEFT JOIN event_entries e
  ON e.event_public_id = ev.public_id
 AND e.is_team = ev.is_team_event
GROUP BY ev.public_id`

	var rows []struct {
		EventPublicID string `db:"event_public_id"`
		EntryCount    int    `db:"entry_count"`
	}
	if err := r.db.SelectContext(ctx, &rows, countQuery); err != nil {
		return nil, fmt.Errorf("count entries by event: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.EventPublicID] = row.EntryCount
	}

	return counts, nil
}

func (r *EventRepository) ListPlannedEvents(ctx context.Context, leagueID string, mode event.Mode) ([]event.PlannedEvent, error) {
	builder := qb.Select("league_public_id", "event_public_id", "mode", "sort_order").
		From("league_events").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("sort_order ASC")
	if mode != "" {
		builder.Where(qb.Eq("mode", string(mode)))
	}
	listSQL, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list planned events query: %w", err)
	}

	var rows []plannedEventTableModel
	if err := r.db.SelectContext(ctx, &rows, listSQL, args...); err != nil {
		return nil, fmt.Errorf("list planned events: %w", err)
	}

	out := make([]event.PlannedEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
