package postgres

import (
	"database/sql"
	"time"

	"github.com/yldraft/olympic-draft/internal/domain/league"
)

type leagueTableModel struct {
	ID             int64     `db:"id"`
	PublicID       string    `db:"public_id"`
	Code           string    `db:"code"`
	Name           string    `db:"name"`
	Status         string    `db:"status"`
	CommissionerID string    `db:"commissioner_user_id"`
	DraftRounds    int       `db:"draft_rounds"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:             m.PublicID,
		Code:           m.Code,
		Name:           m.Name,
		Status:         league.Status(m.Status),
		CommissionerID: m.CommissionerID,
		DraftRounds:    m.DraftRounds,
		CreatedAt:      m.CreatedAt,
	}
}

type memberTableModel struct {
	UserID        string        `db:"user_id"`
	Username      string        `db:"username"`
	DraftPosition sql.NullInt64 `db:"draft_position"`
	JoinedAt      time.Time     `db:"joined_at"`
}

func (m memberTableModel) toDomain() league.Member {
	member := league.Member{
		UserID:   m.UserID,
		Username: m.Username,
		JoinedAt: m.JoinedAt,
	}
	if m.DraftPosition.Valid {
		pos := int(m.DraftPosition.Int64)
		member.DraftPosition = &pos
	}

	return member
}
