package league

import (
	"context"

	"github.com/yldraft/olympic-draft/internal/domain/event"
)

// Repository describes league and roster persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, l League, commissioner Member) error
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	GetByCode(ctx context.Context, code string) (League, bool, error)
	ListByUser(ctx context.Context, userID string) ([]League, error)

	AddMember(ctx context.Context, leagueID string, m Member) error
	IsMember(ctx context.Context, leagueID, userID string) (bool, error)
	// ListMembers returns members ordered by draft position ascending with
	// unassigned positions last, ties broken by join time.
	ListMembers(ctx context.Context, leagueID string) ([]Member, error)

	// StartDraft atomically persists the generated event plan, the draft
	// position assignment, and the lobby->drafting transition. Callers run
	// the existence precondition checks first; the pick and plan uniqueness
	// constraints are the final guard against a double start.
	StartDraft(ctx context.Context, leagueID string, plan []event.PlannedEvent, positions map[string]int) error
	UpdateStatus(ctx context.Context, leagueID string, status Status) error

	// HasPlan reports whether planned event rows already exist for the
	// league; used as the one-time generation guard.
	HasPlan(ctx context.Context, leagueID string) (bool, error)
}
