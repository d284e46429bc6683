package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
	"github.com/yldraft/olympic-draft/internal/domain/user"
	idgen "github.com/yldraft/olympic-draft/internal/platform/id"
	"github.com/yldraft/olympic-draft/internal/platform/logging"
)

const (
	// MaxDraftRounds is the Olympic event catalog ceiling.
	MaxDraftRounds = 116

	inviteCodePrefix   = "YL-"
	inviteCodeLength   = 6
	inviteCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	inviteCodeRetries  = 5
)

// CreateLeagueInput is the incoming payload for league creation.
type CreateLeagueInput struct {
	Name        string
	DraftRounds int
}

// LeagueDetail is a league with its roster in draft order.
type LeagueDetail struct {
	League  league.League
	Members []league.Member
}

type LeagueService struct {
	leagueRepo league.Repository
	eventRepo  event.Repository
	selector   draft.EventSelector
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewLeagueService(
	leagueRepo league.Repository,
	eventRepo event.Repository,
	selector draft.EventSelector,
	idGen idgen.Generator,
	logger *logging.Logger,
) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	if selector == nil {
		selector = draft.CapacitySelector{}
	}

	return &LeagueService{
		leagueRepo: leagueRepo,
		eventRepo:  eventRepo,
		selector:   selector,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *LeagueService) CreateLeague(ctx context.Context, principal user.Principal, input CreateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return league.League{}, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if input.DraftRounds < 1 || input.DraftRounds > MaxDraftRounds {
		return league.League{}, fmt.Errorf("%w: draft rounds must be between 1 and %d", ErrInvalidInput, MaxDraftRounds)
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}

	now := s.now().UTC()
	l := league.League{
		ID:             leagueID,
		Name:           input.Name,
		Status:         league.StatusLobby,
		CommissionerID: principal.UserID,
		DraftRounds:    input.DraftRounds,
		CreatedAt:      now,
	}

	for attempt := 0; attempt < inviteCodeRetries; attempt++ {
		code, err := newInviteCode()
		if err != nil {
			return league.League{}, fmt.Errorf("generate invite code: %w", err)
		}
		if _, taken, err := s.leagueRepo.GetByCode(ctx, code); err != nil {
			return league.League{}, fmt.Errorf("check invite code: %w", err)
		} else if taken {
			continue
		}
		l.Code = code
		break
	}
	if l.Code == "" {
		return league.League{}, fmt.Errorf("generate invite code: no unique code after %d attempts", inviteCodeRetries)
	}

	if err := l.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	commissioner := league.Member{
		UserID:   principal.UserID,
		Username: principal.Username,
		JoinedAt: now,
	}
	if err := s.leagueRepo.Create(ctx, l, commissioner); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	s.logger.InfoContext(ctx, "league created",
		"league_id", l.ID,
		"commissioner_id", principal.UserID,
		"draft_rounds", l.DraftRounds,
	)

	return l, nil
}

func (s *LeagueService) JoinByCode(ctx context.Context, principal user.Principal, code string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.JoinByCode")
	defer span.End()

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return league.League{}, fmt.Errorf("%w: invite code is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByCode(ctx, code)
	if err != nil {
		return league.League{}, fmt.Errorf("get league by code: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: no league for code %s", ErrNotFound, code)
	}
	if l.Status != league.StatusLobby {
		return league.League{}, fmt.Errorf("%w: league %s is no longer accepting members", ErrInvalidInput, l.ID)
	}

	member := league.Member{
		UserID:   principal.UserID,
		Username: principal.Username,
		JoinedAt: s.now().UTC(),
	}
	if err := s.leagueRepo.AddMember(ctx, l.ID, member); err != nil {
		return league.League{}, fmt.Errorf("add league member: %w", err)
	}

	return l, nil
}

func (s *LeagueService) ListMine(ctx context.Context, principal user.Principal) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListMine")
	defer span.End()

	leagues, err := s.leagueRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("list leagues by user: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetDetail(ctx context.Context, principal user.Principal, leagueID string) (LeagueDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetDetail")
	defer span.End()

	l, members, err := s.requireMembership(ctx, principal, leagueID)
	if err != nil {
		return LeagueDetail{}, err
	}

	return LeagueDetail{League: l, Members: members}, nil
}

// StartDraft generates the event plan, assigns the draft order, and moves
// the league to drafting, all in one repository transaction. Plan existence
// and null positions are the one-shot guards.
func (s *LeagueService) StartDraft(ctx context.Context, principal user.Principal, leagueID string) (LeagueDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.StartDraft")
	defer span.End()

	l, err := s.requireCommissioner(ctx, principal, leagueID)
	if err != nil {
		return LeagueDetail{}, err
	}
	if l.Status != league.StatusLobby {
		return LeagueDetail{}, fmt.Errorf("%w: league %s already started", ErrInvalidInput, l.ID)
	}

	hasPlan, err := s.leagueRepo.HasPlan(ctx, l.ID)
	if err != nil {
		return LeagueDetail{}, fmt.Errorf("check existing plan: %w", err)
	}
	if hasPlan {
		return LeagueDetail{}, fmt.Errorf("%w: draft plan already generated for league %s", ErrInvalidInput, l.ID)
	}

	members, err := s.leagueRepo.ListMembers(ctx, l.ID)
	if err != nil {
		return LeagueDetail{}, fmt.Errorf("list league members: %w", err)
	}

	positions, err := draft.AssignDraftOrder(members)
	if err != nil {
		return LeagueDetail{}, fmt.Errorf("assign draft order: %w", err)
	}

	catalog, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return LeagueDetail{}, fmt.Errorf("list catalog events: %w", err)
	}
	entryCounts, err := s.eventRepo.CountEntriesByEvent(ctx)
	if err != nil {
		return LeagueDetail{}, fmt.Errorf("count catalog entries: %w", err)
	}

	plan, err := draft.GeneratePlan(l.ID, catalog, entryCounts, l.DraftRounds, len(members), s.selector)
	if err != nil {
		return LeagueDetail{}, fmt.Errorf("generate event plan: %w", err)
	}

	if err := s.leagueRepo.StartDraft(ctx, l.ID, plan, positions); err != nil {
		return LeagueDetail{}, fmt.Errorf("start draft: %w", err)
	}

	s.logger.InfoContext(ctx, "draft started",
		"league_id", l.ID,
		"member_count", len(members),
		"planned_events", len(plan),
	)

	started, _, err := s.leagueRepo.GetByID(ctx, l.ID)
	if err != nil {
		return LeagueDetail{}, fmt.Errorf("reload league: %w", err)
	}
	orderedMembers, err := s.leagueRepo.ListMembers(ctx, l.ID)
	if err != nil {
		return LeagueDetail{}, fmt.Errorf("list league members: %w", err)
	}

	return LeagueDetail{League: started, Members: orderedMembers}, nil
}

func (s *LeagueService) Lock(ctx context.Context, principal user.Principal, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Lock")
	defer span.End()

	l, err := s.requireCommissioner(ctx, principal, leagueID)
	if err != nil {
		return league.League{}, err
	}
	if !l.Status.CanTransition(league.StatusLocked) {
		return league.League{}, fmt.Errorf("%w: league %s cannot lock from status %s", ErrInvalidInput, l.ID, l.Status)
	}

	if err := s.leagueRepo.UpdateStatus(ctx, l.ID, league.StatusLocked); err != nil {
		return league.League{}, fmt.Errorf("lock league: %w", err)
	}
	l.Status = league.StatusLocked

	s.logger.InfoContext(ctx, "league locked", "league_id", l.ID)

	return l, nil
}

func (s *LeagueService) requireMembership(ctx context.Context, principal user.Principal, leagueID string) (league.League, []league.Member, error) {
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
	for _, m := range members {
		if m.UserID == principal.UserID {
			return l, members, nil
		}
	}

	return league.League{}, nil, draft.ErrNotAMember
}

func (s *LeagueService) requireCommissioner(ctx context.Context, principal user.Principal, leagueID string) (league.League, error) {
	l, _, err := s.requireMembership(ctx, principal, leagueID)
	if err != nil {
		return league.League{}, err
	}
	if l.CommissionerID != principal.UserID {
		return league.League{}, fmt.Errorf("%w: commissioner only", ErrForbidden)
	}

	return l, nil
}

func newInviteCode() (string, error) {
	code, err := idgen.NewShortCode(inviteCodeAlphabet, inviteCodeLength)
	if err != nil {
		return "", err
	}

	return inviteCodePrefix + code, nil
}
