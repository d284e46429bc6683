package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
	"github.com/yldraft/olympic-draft/internal/domain/result"
	"github.com/yldraft/olympic-draft/internal/domain/user"
	"github.com/yldraft/olympic-draft/internal/platform/logging"
)

// PlacementInput is one submitted placement row.
type PlacementInput struct {
	Place    int
	EntryKey string
}

type ResultService struct {
	leagueRepo league.Repository
	eventRepo  event.Repository
	resultRepo result.Repository
	logger     *logging.Logger
}

func NewResultService(
	leagueRepo league.Repository,
	eventRepo event.Repository,
	resultRepo result.Repository,
	logger *logging.Logger,
) *ResultService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ResultService{
		leagueRepo: leagueRepo,
		eventRepo:  eventRepo,
		resultRepo: resultRepo,
		logger:     logger,
	}
}

// SubmitResults replaces the placement table for one event. Placements must
// be contiguous from first place, at most ten deep, with no duplicate place
// or entry, and every entry must belong to the event's catalog.
func (s *ResultService) SubmitResults(ctx context.Context, principal user.Principal, leagueID, eventID string, placements []PlacementInput) ([]result.Placement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.SubmitResults")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	eventID = strings.TrimSpace(eventID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if len(placements) == 0 {
		return nil, fmt.Errorf("%w: placements are required", ErrInvalidInput)
	}
	if len(placements) > result.MaxPlace {
		return nil, fmt.Errorf("%w: at most %d placements", ErrInvalidInput, result.MaxPlace)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	if l.CommissionerID != principal.UserID {
		return nil, fmt.Errorf("%w: commissioner only", ErrForbidden)
	}
	if l.Status != league.StatusLocked {
		return nil, fmt.Errorf("%w: results require a locked league", ErrInvalidInput)
	}

	planned, err := s.eventRepo.ListPlannedEvents(ctx, leagueID, "")
	if err != nil {
		return nil, fmt.Errorf("list planned events: %w", err)
	}
	inPlan := false
	for _, p := range planned {
		if p.EventID == eventID {
			inPlan = true
			break
		}
	}
	if !inPlan {
		return nil, fmt.Errorf("%w: event %s is not in the league plan", ErrInvalidInput, eventID)
	}

	seenPlaces := make(map[int]struct{}, len(placements))
	seenEntries := make(map[string]struct{}, len(placements))
	rows := make([]result.Placement, 0, len(placements))
	for _, p := range placements {
		entryKey := strings.TrimSpace(p.EntryKey)
		if _, dup := seenPlaces[p.Place]; dup {
			return nil, fmt.Errorf("%w: duplicate place %d", ErrInvalidInput, p.Place)
		}
		seenPlaces[p.Place] = struct{}{}
		if _, dup := seenEntries[entryKey]; dup {
			return nil, fmt.Errorf("%w: duplicate entry %s", ErrInvalidInput, entryKey)
		}
		seenEntries[entryKey] = struct{}{}

		entry, exists, err := s.eventRepo.GetEntry(ctx, eventID, entryKey)
		if err != nil {
			return nil, fmt.Errorf("get entry: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: entry %s is not in event %s", ErrInvalidInput, entryKey, eventID)
		}

		row := result.Placement{
			LeagueID:  leagueID,
			EventID:   eventID,
			Place:     p.Place,
			EntryKey:  entry.Key,
			EntryName: entry.Name,
		}
		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rows = append(rows, row)
	}

	// Contiguity: places must be exactly 1..len(rows).
	for place := 1; place <= len(rows); place++ {
		if _, ok := seenPlaces[place]; !ok {
			return nil, fmt.Errorf("%w: placements must be contiguous from 1, missing place %d", ErrInvalidInput, place)
		}
	}

	if err := s.resultRepo.ReplaceForEvent(ctx, leagueID, eventID, rows); err != nil {
		return nil, fmt.Errorf("replace event results: %w", err)
	}

	s.logger.InfoContext(ctx, "event results recorded",
		"league_id", leagueID,
		"event_id", eventID,
		"placements", len(rows),
	)

	stored, err := s.resultRepo.ListForEvent(ctx, leagueID, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event results: %w", err)
	}

	return stored, nil
}

func (s *ResultService) ListResults(ctx context.Context, principal user.Principal, leagueID, eventID string) ([]result.Placement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ListResults")
	defer span.End()

	if err := s.requireMember(ctx, principal, leagueID); err != nil {
		return nil, err
	}

	placements, err := s.resultRepo.ListForEvent(ctx, leagueID, strings.TrimSpace(eventID))
	if err != nil {
		return nil, fmt.Errorf("list event results: %w", err)
	}

	return placements, nil
}

func (s *ResultService) Leaderboard(ctx context.Context, principal user.Principal, leagueID string) ([]result.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Leaderboard")
	defer span.End()

	if err := s.requireMember(ctx, principal, leagueID); err != nil {
		return nil, err
	}

	rows, err := s.resultRepo.Leaderboard(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("league leaderboard: %w", err)
	}

	return rows, nil
}

func (s *ResultService) requireMember(ctx context.Context, principal user.Principal, leagueID string) error {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	isMember, err := s.leagueRepo.IsMember(ctx, leagueID, principal.UserID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !isMember {
		return draft.ErrNotAMember
	}

	return nil
}
