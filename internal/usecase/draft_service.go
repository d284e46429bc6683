package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
	"github.com/yldraft/olympic-draft/internal/domain/user"
	"github.com/yldraft/olympic-draft/internal/platform/logging"
)

// SubmitPickInput is the incoming payload for a draft pick.
type SubmitPickInput struct {
	LeagueID string
	EntryKey string
}

type DraftService struct {
	leagueRepo league.Repository
	eventRepo  event.Repository
	pickRepo   draft.PickRepository
	logger     *logging.Logger
}

func NewDraftService(
	leagueRepo league.Repository,
	eventRepo event.Repository,
	pickRepo draft.PickRepository,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DraftService{
		leagueRepo: leagueRepo,
		eventRepo:  eventRepo,
		pickRepo:   pickRepo,
		logger:     logger,
	}
}

// State re-derives the current turn from roster order, plan order, and the
// committed picks. Nothing here is cached; a stale client simply resolves
// the same answer again.
//
// Access is membership-only: a locked league still serves its final board,
// and a lobby league surfaces ErrDraftNotStarted from the resolver.
func (s *DraftService) State(ctx context.Context, principal user.Principal, leagueID string) (draft.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.State")
	defer span.End()

	l, members, err := s.roster(ctx, leagueID)
	if err != nil {
		return draft.State{}, err
	}
	if !memberOf(members, principal.UserID) {
		return draft.State{}, draft.ErrNotAMember
	}

	return s.resolve(ctx, l, members)
}

// SubmitPick runs the acceptance gate in a fixed order: draft active,
// membership, draft not complete, caller on the clock, entry draftable.
// The final word belongs to the pick insert, whose transactional re-count
// and uniqueness constraints close the gap between resolve and commit.
func (s *DraftService) SubmitPick(ctx context.Context, principal user.Principal, input SubmitPickInput) (draft.Pick, draft.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.SubmitPick")
	defer span.End()

	input.EntryKey = strings.TrimSpace(input.EntryKey)
	if input.EntryKey == "" {
		return draft.Pick{}, draft.State{}, fmt.Errorf("%w: entry key is required", ErrInvalidInput)
	}

	l, members, err := s.gate(ctx, principal, input.LeagueID)
	if err != nil {
		return draft.Pick{}, draft.State{}, err
	}

	state, err := s.resolve(ctx, l, members)
	if err != nil {
		return draft.Pick{}, draft.State{}, err
	}
	if state.Complete {
		return draft.Pick{}, draft.State{}, draft.ErrDraftComplete
	}
	if state.OnTheClock.UserID != principal.UserID {
		return draft.Pick{}, draft.State{}, draft.ErrNotYourTurn
	}

	entry, exists, err := s.eventRepo.GetEntry(ctx, state.Event.ID, input.EntryKey)
	if err != nil {
		return draft.Pick{}, draft.State{}, fmt.Errorf("get entry: %w", err)
	}
	if !exists {
		return draft.Pick{}, draft.State{}, fmt.Errorf("%w: entry %s for event %s", draft.ErrInvalidEntry, input.EntryKey, state.Event.ID)
	}

	pick := draft.Pick{
		LeagueID:  l.ID,
		EventID:   state.Event.ID,
		UserID:    principal.UserID,
		Username:  principal.Username,
		EntryKey:  entry.Key,
		EntryName: entry.Name,
	}
	committed, err := s.pickRepo.Create(ctx, pick, len(state.Picks))
	if err != nil {
		return draft.Pick{}, draft.State{}, err
	}

	s.logger.InfoContext(ctx, "pick committed",
		"league_id", l.ID,
		"event_id", state.Event.ID,
		"user_id", principal.UserID,
		"entry_key", entry.Key,
	)

	next, err := s.resolve(ctx, l, members)
	if err != nil {
		return draft.Pick{}, draft.State{}, err
	}

	return committed, next, nil
}

func (s *DraftService) ListUserPicks(ctx context.Context, principal user.Principal, leagueID string) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListUserPicks")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	isMember, err := s.leagueRepo.IsMember(ctx, leagueID, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if !isMember {
		return nil, draft.ErrNotAMember
	}

	picks, err := s.pickRepo.ListByUser(ctx, leagueID, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("list picks by user: %w", err)
	}

	return picks, nil
}

// gate applies the front of the pick acceptance order: the league must
// exist, be drafting, and count the caller among its members.
func (s *DraftService) gate(ctx context.Context, principal user.Principal, leagueID string) (league.League, []league.Member, error) {
	l, members, err := s.roster(ctx, leagueID)
	if err != nil {
		return league.League{}, nil, err
	}
	if l.Status != league.StatusDrafting {
		return league.League{}, nil, draft.ErrDraftNotActive
	}
	if !memberOf(members, principal.UserID) {
		return league.League{}, nil, draft.ErrNotAMember
	}

	return l, members, nil
}

func (s *DraftService) roster(ctx context.Context, leagueID string) (league.League, []league.Member, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	members, err := s.leagueRepo.ListMembers(ctx, l.ID)
	if err != nil {
		return league.League{}, nil, fmt.Errorf("list league members: %w", err)
	}

	return l, members, nil
}

func memberOf(members []league.Member, userID string) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func (s *DraftService) resolve(ctx context.Context, l league.League, members []league.Member) (draft.State, error) {
	planned, err := s.eventRepo.ListPlannedEvents(ctx, l.ID, event.ModeDraft)
	if err != nil {
		return draft.State{}, fmt.Errorf("list planned draft events: %w", err)
	}

	plannedEvents := make([]event.Event, 0, len(planned))
	for _, p := range planned {
		ev, exists, err := s.eventRepo.GetEventByID(ctx, p.EventID)
		if err != nil {
			return draft.State{}, fmt.Errorf("get planned event: %w", err)
		}
		if !exists {
			return draft.State{}, fmt.Errorf("planned event %s missing from catalog", p.EventID)
		}
		plannedEvents = append(plannedEvents, ev)
	}

	picks, err := s.pickRepo.ListByLeague(ctx, l.ID)
	if err != nil {
		return draft.State{}, fmt.Errorf("list picks: %w", err)
	}

	state, err := draft.Resolve(members, plannedEvents, picks)
	if err != nil {
		return draft.State{}, fmt.Errorf("resolve draft state: %w", err)
	}

	return state, nil
}
