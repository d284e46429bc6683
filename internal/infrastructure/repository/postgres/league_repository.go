package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
	qb "github.com/yldraft/olympic-draft/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

const leagueColumns = "id, public_id, code, name, status, commissioner_user_id, draft_rounds, created_at, updated_at"

func (r *LeagueRepository) Create(ctx context.Context, l league.League, commissioner league.Member) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for create league: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertLeagueQuery = `
INSERT INTO leagues (public_id, code, name, status, commissioner_user_id, draft_rounds)
VALUES (:public_id, :code, :name, :status, :commissioner_user_id, :draft_rounds)`

	insertSQL, insertArgs, err := sqlx.Named(insertLeagueQuery, map[string]any{
		"public_id":            l.ID,
		"code":                 l.Code,
		"name":                 l.Name,
		"status":               string(l.Status),
		"commissioner_user_id": l.CommissionerID,
		"draft_rounds":         l.DraftRounds,
	})
	if err != nil {
		return fmt.Errorf("bind create league query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(insertSQL), insertArgs...); err != nil {
		return fmt.Errorf("create league: %w", err)
	}

	const insertMemberQuery = `
INSERT INTO league_members (league_public_id, user_id, username)
VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, insertMemberQuery, l.ID, commissioner.UserID, commissioner.Username); err != nil {
		return fmt.Errorf("add commissioner member: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create league tx: %w", err)
	}

	return nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", leagueID))
}

func (r *LeagueRepository) GetByCode(ctx context.Context, code string) (league.League, bool, error) {
	return r.getOne(ctx, qb.Eq("code", code))
}

func (r *LeagueRepository) getOne(ctx context.Context, cond qb.Condition) (league.League, bool, error) {
	query, args, err := qb.Select(leagueColumns).From("leagues").
		Where(cond).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) ListByUser(ctx context.Context, userID string) ([]league.League, error) {
	query, args, err := qb.Select(prefixColumns("l", leagueColumns)).From("leagues l").
		Join("JOIN league_members m ON m.league_public_id = l.public_id").
		Where(qb.Eq("m.user_id", userID)).
		OrderBy("l.created_at ASC", "l.public_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues by user query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leagues by user: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *LeagueRepository) AddMember(ctx context.Context, leagueID string, m league.Member) error {
	const insertMemberQuery = `
INSERT INTO league_members (league_public_id, user_id, username)
VALUES ($1, $2, $3)
ON CONFLICT ON CONSTRAINT uq_member_per_league DO NOTHING`
	if _, err := r.db.ExecContext(ctx, insertMemberQuery, leagueID, m.UserID, m.Username); err != nil {
		return fmt.Errorf("add league member: %w", err)
	}

	return nil
}

func (r *LeagueRepository) IsMember(ctx context.Context, leagueID, userID string) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("league_members").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("user_id", userID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build is member query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("is member: %w", err)
	}

	return count > 0, nil
}

func (r *LeagueRepository) ListMembers(ctx context.Context, leagueID string) ([]league.Member, error) {
	query, args, err := qb.Select("user_id", "username", "draft_position", "joined_at").
		From("league_members").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("draft_position ASC NULLS LAST", "joined_at ASC", "user_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list members query: %w", err)
	}

	var rows []memberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list league members: %w", err)
	}

	out := make([]league.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *LeagueRepository) StartDraft(ctx context.Context, leagueID string, plan []event.PlannedEvent, positions map[string]int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for start draft: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	planInsert := qb.InsertInto("league_events").
		Columns("league_public_id", "event_public_id", "mode", "sort_order")
	for _, p := range plan {
		planInsert.Values(p.LeagueID, p.EventID, string(p.Mode), p.SortOrder)
	}
	planQuery, planArgs, err := planInsert.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert event plan query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, planQuery, planArgs...); err != nil {
		return fmt.Errorf("insert event plan: %w", err)
	}

	const updatePositionQuery = `
UPDATE league_members
SET draft_position = $1
WHERE league_public_id = $2
  AND user_id = $3
  AND draft_position IS NULL`
	for userID, position := range positions {
		result, err := tx.ExecContext(ctx, updatePositionQuery, position, leagueID, userID)
		if err != nil {
			return fmt.Errorf("assign draft position: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected assign draft position: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("assign draft position: member %s missing or already positioned", userID)
		}
	}

	const updateStatusQuery = `
UPDATE leagues
SET status = $1, updated_at = NOW()
WHERE public_id = $2
  AND status = $3`
	result, err := tx.ExecContext(ctx, updateStatusQuery, string(league.StatusDrafting), leagueID, string(league.StatusLobby))
	if err != nil {
		return fmt.Errorf("transition league to drafting: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected transition league: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transition league to drafting: league %s is not in lobby", leagueID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit start draft tx: %w", err)
	}

	return nil
}

func (r *LeagueRepository) UpdateStatus(ctx context.Context, leagueID string, status league.Status) error {
	const updateQuery = `
UPDATE leagues
SET status = $1, updated_at = NOW()
WHERE public_id = $2`
	result, err := r.db.ExecContext(ctx, updateQuery, string(status), leagueID)
	if err != nil {
		return fmt.Errorf("update league status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update league status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update league status: league %s not found", leagueID)
	}

	return nil
}

func (r *LeagueRepository) HasPlan(ctx context.Context, leagueID string) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("league_events").
		Where(qb.Eq("league_public_id", leagueID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build has plan query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("has plan: %w", err)
	}

	return count > 0, nil
}
