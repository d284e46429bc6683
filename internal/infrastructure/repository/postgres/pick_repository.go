package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
	qb "github.com/yldraft/olympic-draft/internal/platform/querybuilder"
)

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

type pickTableModel struct {
	LeaguePublicID string    `db:"league_public_id"`
	EventPublicID  string    `db:"event_public_id"`
	UserID         string    `db:"user_id"`
	Username       string    `db:"username"`
	EntryKey       string    `db:"entry_key"`
	EntryName      string    `db:"entry_name"`
	PickedAt       time.Time `db:"picked_at"`
}

func (m pickTableModel) toDomain() draft.Pick {
	return draft.Pick{
		LeagueID:  m.LeaguePublicID,
		EventID:   m.EventPublicID,
		UserID:    m.UserID,
		Username:  m.Username,
		EntryKey:  m.EntryKey,
		EntryName: m.EntryName,
		PickedAt:  m.PickedAt,
	}
}

func (r *PickRepository) Create(ctx context.Context, pick draft.Pick, turnIndex int) (draft.Pick, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return draft.Pick{}, fmt.Errorf("begin tx for create pick: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertQuery = `
INSERT INTO draft_picks (league_public_id, event_public_id, user_id, username, entry_key, entry_name)
VALUES (:league_public_id, :event_public_id, :user_id, :username, :entry_key, :entry_name)
RETURNING picked_at`

	insertSQL, insertArgs, err := sqlx.Named(insertQuery, map[string]any{
		"league_public_id": pick.LeagueID,
		"event_public_id":  pick.EventID,
		"user_id":          pick.UserID,
		"username":         pick.Username,
		"entry_key":        pick.EntryKey,
		"entry_name":       pick.EntryName,
	})
	if err != nil {
		return draft.Pick{}, fmt.Errorf("bind create pick query: %w", err)
	}

	var pickedAt time.Time
	if err := tx.GetContext(ctx, &pickedAt, tx.Rebind(insertSQL), insertArgs...); err != nil {
		if mapped, ok := pickConstraintError(err); ok {
			return draft.Pick{}, mapped
		}
		return draft.Pick{}, fmt.Errorf("create pick: %w", err)
	}

	// Re-count inside the transaction. A concurrent commit between the
	// caller's turn resolution and this insert moves the count past
	// turnIndex+1, and the whole pick rolls back.
	const countQuery = `
SELECT COUNT(1)
FROM draft_picks
WHERE league_public_id = $1
  AND event_public_id = $2`
	var count int
	if err := tx.GetContext(ctx, &count, countQuery, pick.LeagueID, pick.EventID); err != nil {
		return draft.Pick{}, fmt.Errorf("recount picks for event: %w", err)
	}
	if count != turnIndex+1 {
		return draft.Pick{}, draft.ErrNotYourTurn
	}

	if err := tx.Commit(); err != nil {
		return draft.Pick{}, fmt.Errorf("commit create pick tx: %w", err)
	}

	pick.PickedAt = pickedAt
	return pick, nil
}

const pickColumns = "league_public_id, event_public_id, user_id, username, entry_key, entry_name, picked_at"

func (r *PickRepository) ListByLeague(ctx context.Context, leagueID string) ([]draft.Pick, error) {
	return r.list(ctx, qb.Eq("league_public_id", leagueID))
}

func (r *PickRepository) ListByEvent(ctx context.Context, leagueID, eventID string) ([]draft.Pick, error) {
	return r.list(ctx,
		qb.Eq("league_public_id", leagueID),
		qb.Eq("event_public_id", eventID),
	)
}

func (r *PickRepository) ListByUser(ctx context.Context, leagueID, userID string) ([]draft.Pick, error) {
	return r.list(ctx,
		qb.Eq("league_public_id", leagueID),
		qb.Eq("user_id", userID),
	)
}

func (r *PickRepository) list(ctx context.Context, conditions ...qb.Condition) ([]draft.Pick, error) {
	query, args, err := qb.Select(pickColumns).From("draft_picks").
		Where(conditions...).
		OrderBy("picked_at ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	out := make([]draft.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PickRepository) CreateAuto(ctx context.Context, picks []draft.Pick) error {
	if len(picks) == 0 {
		return nil
	}

	const insertQuery = `
INSERT INTO draft_picks (league_public_id, event_public_id, user_id, username, entry_key, entry_name)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT DO NOTHING`
	for _, pick := range picks {
		if _, err := r.db.ExecContext(ctx, insertQuery,
			pick.LeagueID, pick.EventID, pick.UserID, pick.Username, pick.EntryKey, pick.EntryName,
		); err != nil {
			return fmt.Errorf("create auto pick %s/%s: %w", pick.EventID, pick.EntryKey, err)
		}
	}

	return nil
}
