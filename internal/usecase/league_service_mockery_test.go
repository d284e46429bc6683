package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/yldraft/olympic-draft/internal/domain/league"
	"github.com/yldraft/olympic-draft/internal/infrastructure/repository/memory"
	leaguemock "github.com/yldraft/olympic-draft/internal/mocks/domain/league"
	idgen "github.com/yldraft/olympic-draft/internal/platform/id"
	"github.com/yldraft/olympic-draft/internal/platform/logging"
)

func TestLeagueService_ListMine_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	eventRepo := memory.NewEventRepository(nil, nil, memory.NewLeagueRepository(nil))

	service := NewLeagueService(leagueRepo, eventRepo, nil, idgen.NewRandomGenerator(), logging.NewNop())
	expected := []league.League{
		{ID: "league-1", Code: "YL-AAAAAA", Name: "Office Olympians", Status: league.StatusLobby},
		{ID: "league-2", Code: "YL-BBBBBB", Name: "Family Draft", Status: league.StatusDrafting},
	}

	leagueRepo.
		On("ListByUser", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), alice.UserID).
		Return(expected, nil).
		Once()

	got, err := service.ListMine(ctx, alice)
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected league count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].ID != expected[0].ID {
		t.Fatalf("unexpected league id: got=%s want=%s", got[0].ID, expected[0].ID)
	}
}

func TestLeagueService_GetDetail_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	eventRepo := memory.NewEventRepository(nil, nil, memory.NewLeagueRepository(nil))

	service := NewLeagueService(leagueRepo, eventRepo, nil, idgen.NewRandomGenerator(), logging.NewNop())

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "missing-league").
		Return(league.League{}, false, nil).
		Once()

	_, err := service.GetDetail(ctx, alice, "missing-league")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_Lock_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	eventRepo := memory.NewEventRepository(nil, nil, memory.NewLeagueRepository(nil))

	service := NewLeagueService(leagueRepo, eventRepo, nil, idgen.NewRandomGenerator(), logging.NewNop())
	drafting := league.League{
		ID:             "league-1",
		Code:           "YL-AAAAAA",
		Name:           "Office Olympians",
		Status:         league.StatusDrafting,
		CommissionerID: alice.UserID,
		DraftRounds:    2,
	}
	repoErr := errors.New("connection reset")

	leagueRepo.
		On("GetByID", mock.Anything, "league-1").
		Return(drafting, true, nil).
		Once()
	leagueRepo.
		On("ListMembers", mock.Anything, "league-1").
		Return([]league.Member{{UserID: alice.UserID, Username: alice.Username}}, nil).
		Once()
	leagueRepo.
		On("UpdateStatus", mock.Anything, "league-1", league.StatusLocked).
		Return(repoErr).
		Once()

	_, err := service.Lock(ctx, alice, "league-1")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
