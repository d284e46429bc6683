package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yldraft/olympic-draft/internal/domain/result"
	qb "github.com/yldraft/olympic-draft/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

type placementTableModel struct {
	LeaguePublicID string    `db:"league_public_id"`
	EventPublicID  string    `db:"event_public_id"`
	Place          int       `db:"place"`
	EntryKey       string    `db:"entry_key"`
	EntryName      string    `db:"entry_name"`
	CreatedAt      time.Time `db:"created_at"`
}

func (m placementTableModel) toDomain() result.Placement {
	return result.Placement{
		LeagueID:  m.LeaguePublicID,
		EventID:   m.EventPublicID,
		Place:     m.Place,
		EntryKey:  m.EntryKey,
		EntryName: m.EntryName,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ResultRepository) ReplaceForEvent(ctx context.Context, leagueID, eventID string, placements []result.Placement) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for replace event results: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const deleteQuery = `
DELETE FROM league_event_results
WHERE league_public_id = $1
  AND event_public_id = $2`
	if _, err := tx.ExecContext(ctx, deleteQuery, leagueID, eventID); err != nil {
		return fmt.Errorf("delete event results: %w", err)
	}

	if len(placements) > 0 {
		insert := qb.InsertInto("league_event_results").
			Columns("league_public_id", "event_public_id", "place", "entry_key", "entry_name")
		for _, p := range placements {
			insert.Values(leagueID, eventID, p.Place, p.EntryKey, p.EntryName)
		}
		insertSQL, insertArgs, err := insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert event results query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("insert event results: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace event results tx: %w", err)
	}

	return nil
}

func (r *ResultRepository) ListForEvent(ctx context.Context, leagueID, eventID string) ([]result.Placement, error) {
	query, args, err := qb.Select("league_public_id", "event_public_id", "place", "entry_key", "entry_name", "created_at").
		From("league_event_results").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("event_public_id", eventID),
		).
		OrderBy("place ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list event results query: %w", err)
	}

	var rows []placementTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list event results: %w", err)
	}

	out := make([]result.Placement, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ResultRepository) Leaderboard(ctx context.Context, leagueID string) ([]result.Row, error) {
	// Points come from joining each pick to a matching placement within the
	// same event. Members with no scoring picks still get a zero row.
	const leaderboardQuery = `
SELECT m.user_id,
       m.username,
       COALESCE(SUM(CASE res.place
           WHEN 1 THEN 10 WHEN 2 THEN 9 WHEN 3 THEN 8 WHEN 4 THEN 7 WHEN 5 THEN 6
           WHEN 6 THEN 5 WHEN 7 THEN 4 WHEN 8 THEN 3 WHEN 9 THEN 2 WHEN 10 THEN 1
           ELSE 0 END), 0) AS points
FROM league_members m
LEFT JOIN draft_picks p
  ON p.league_public_id = m.league_public_id
 AND p.user_id = m.user_id
LEFT JOIN league_event_results res
  ON res.league_public_id = p.league_public_id
 AND res.event_public_id = p.event_public_id
 AND res.entry_key = p.entry_key
WHERE m.league_public_id = $1
GROUP BY m.user_id, m.username
ORDER BY points DESC, m.username ASC`

	var rows []struct {
		UserID   string `db:"user_id"`
		Username string `db:"username"`
		Points   int    `db:"points"`
	}
	if err := r.db.SelectContext(ctx, &rows, leaderboardQuery, leagueID); err != nil {
		return nil, fmt.Errorf("league leaderboard: %w", err)
	}

	out := make([]result.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, result.Row{UserID: row.UserID, Username: row.Username, Points: row.Points})
	}

	return out, nil
}
