package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
)

const (
	constraintPickUserPerEvent = "uq_pick_user_per_event"
	constraintPickEntryUnique  = "uq_pick_no_dupe_entry"
	constraintLeagueCode       = "uq_league_code"
	constraintMemberUnique     = "uq_member_per_league"
	constraintPlanUnique       = "uq_plan_event_per_league"
)

// prefixColumns rewrites a comma separated column list with a table alias,
// for selects that join.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i := range parts {
		parts[i] = alias + "." + parts[i]
	}

	return strings.Join(parts, ", ")
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// uniqueViolation returns the violated constraint name when err is a
// postgres unique violation, so callers never leak raw driver text.
func uniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return pqErr.Constraint, true
	}

	return "", false
}

// pickConstraintError maps a pick insert unique violation to its domain
// sentinel. The constraints are the final race closer behind the turn gate.
func pickConstraintError(err error) (error, bool) {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return nil, false
	}
	switch constraint {
	case constraintPickUserPerEvent:
		return draft.ErrAlreadyPicked, true
	case constraintPickEntryUnique:
		return draft.ErrEntryTaken, true
	default:
		return nil, false
	}
}
