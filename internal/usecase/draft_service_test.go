package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
	"github.com/yldraft/olympic-draft/internal/domain/user"
	"github.com/yldraft/olympic-draft/internal/infrastructure/repository/memory"
	"github.com/yldraft/olympic-draft/internal/platform/logging"
)

var (
	alice = user.Principal{UserID: "user-alice", Username: "alice"}
	bob   = user.Principal{UserID: "user-bob", Username: "bob"}
	carol = user.Principal{UserID: "user-carol", Username: "carol"}
	dave  = user.Principal{UserID: "user-dave", Username: "dave"}
)

type draftFixture struct {
	leagueRepo *memory.LeagueRepository
	eventRepo  *memory.EventRepository
	pickRepo   *memory.PickRepository
	service    *DraftService
}

// newDraftFixture builds a three-member league mid-draft with a two-event
// plan: 100m sprint first, then the gymnastics all-around. Alice drafts
// first, then bob, then carol.
func newDraftFixture(t *testing.T, started bool) draftFixture {
	t.Helper()

	leagueRepo := memory.NewLeagueRepository(nil)
	eventRepo := memory.NewEventRepository(memory.SeedEvents(), memory.SeedEntries(), leagueRepo)
	pickRepo := memory.NewPickRepository()

	now := time.Date(2026, 7, 20, 9, 0, 0, 0, time.UTC)
	l := league.League{
		ID:             "league-1",
		Code:           "YL-TEST01",
		Name:           "Office Olympians",
		Status:         league.StatusLobby,
		CommissionerID: alice.UserID,
		DraftRounds:    2,
		CreatedAt:      now,
	}
	if err := leagueRepo.Create(t.Context(), l, league.Member{UserID: alice.UserID, Username: alice.Username, JoinedAt: now}); err != nil {
		t.Fatalf("create league: %v", err)
	}
	for i, p := range []user.Principal{bob, carol} {
		member := league.Member{UserID: p.UserID, Username: p.Username, JoinedAt: now.Add(time.Duration(i+1) * time.Minute)}
		if err := leagueRepo.AddMember(t.Context(), l.ID, member); err != nil {
			t.Fatalf("add member %s: %v", p.UserID, err)
		}
	}

	if started {
		plan := []event.PlannedEvent{
			{LeagueID: l.ID, EventID: memory.EventIDTrack100m, Mode: event.ModeDraft, SortOrder: 3},
			{LeagueID: l.ID, EventID: memory.EventIDGymAllAround, Mode: event.ModeDraft, SortOrder: 5},
			{LeagueID: l.ID, EventID: memory.EventIDBasketball, Mode: event.ModeAuto, SortOrder: 7},
		}
		positions := map[string]int{alice.UserID: 1, bob.UserID: 2, carol.UserID: 3}
		if err := leagueRepo.StartDraft(t.Context(), l.ID, plan, positions); err != nil {
			t.Fatalf("start draft: %v", err)
		}
	}

	return draftFixture{
		leagueRepo: leagueRepo,
		eventRepo:  eventRepo,
		pickRepo:   pickRepo,
		service:    NewDraftService(leagueRepo, eventRepo, pickRepo, logging.NewNop()),
	}
}

func TestDraftService_State_InitialTurn(t *testing.T) {
	t.Parallel()
	fx := newDraftFixture(t, true)

	state, err := fx.service.State(t.Context(), bob, "league-1")
	if err != nil {
		t.Fatalf("state failed: %v", err)
	}
	if state.Complete {
		t.Fatalf("expected in-progress draft")
	}
	if state.Event.ID != memory.EventIDTrack100m {
		t.Fatalf("expected first event %s, got %s", memory.EventIDTrack100m, state.Event.ID)
	}
	if state.EventIndex != 0 || state.Direction != draft.DirectionForward {
		t.Fatalf("expected forward round 0, got index=%d direction=%s", state.EventIndex, state.Direction)
	}
	if state.OnTheClock.UserID != alice.UserID {
		t.Fatalf("expected alice on the clock, got %s", state.OnTheClock.UserID)
	}
}

func TestDraftService_State_ReadableAfterLock(t *testing.T) {
	t.Parallel()
	fx := newDraftFixture(t, true)
	ctx := t.Context()

	// Fill both draft events, then lock the league.
	picks := []struct {
		who   user.Principal
		entry string
	}{
		{alice, "noah-lyles"}, {bob, "fred-kerley"}, {carol, "akani-simbine"},
		{carol, "daiki-hashimoto"}, {bob, "zhang-boheng"}, {alice, "fred-richard"},
	}
	for _, p := range picks {
		if _, _, err := fx.service.SubmitPick(ctx, p.who, SubmitPickInput{LeagueID: "league-1", EntryKey: p.entry}); err != nil {
			t.Fatalf("%s pick %s failed: %v", p.who.Username, p.entry, err)
		}
	}
	if err := fx.leagueRepo.UpdateStatus(ctx, "league-1", league.StatusLocked); err != nil {
		t.Fatalf("lock league: %v", err)
	}

	state, err := fx.service.State(ctx, bob, "league-1")
	if err != nil {
		t.Fatalf("state after lock failed: %v", err)
	}
	if !state.Complete {
		t.Fatalf("expected completed board, got %+v", state)
	}

	// Pick submission stays closed and membership still gates reads.
	if _, _, err := fx.service.SubmitPick(ctx, alice, SubmitPickInput{LeagueID: "league-1", EntryKey: "jake-jarman"}); !errors.Is(err, draft.ErrDraftNotActive) {
		t.Fatalf("expected ErrDraftNotActive, got %v", err)
	}
	if _, err := fx.service.State(ctx, dave, "league-1"); !errors.Is(err, draft.ErrNotAMember) {
		t.Fatalf("expected ErrNotAMember, got %v", err)
	}
}

func TestDraftService_State_LobbyLeague(t *testing.T) {
	t.Parallel()
	fx := newDraftFixture(t, false)

	_, err := fx.service.State(t.Context(), alice, "league-1")
	if !errors.Is(err, draft.ErrDraftNotStarted) {
		t.Fatalf("expected ErrDraftNotStarted, got %v", err)
	}
}

func TestDraftService_SubmitPick_SnakeOrder(t *testing.T) {
	t.Parallel()
	fx := newDraftFixture(t, true)
	ctx := t.Context()

	// Round 0 runs forward: alice, bob, carol.
	pick, state, err := fx.service.SubmitPick(ctx, alice, SubmitPickInput{LeagueID: "league-1", EntryKey: "noah-lyles"})
	if err != nil {
		t.Fatalf("alice pick failed: %v", err)
	}
	if pick.EntryName != "Noah Lyles" {
		t.Fatalf("expected catalog entry name, got %q", pick.EntryName)
	}
	if state.OnTheClock.UserID != bob.UserID {
		t.Fatalf("expected bob next, got %s", state.OnTheClock.UserID)
	}

	if _, state, err = fx.service.SubmitPick(ctx, bob, SubmitPickInput{LeagueID: "league-1", EntryKey: "fred-kerley"}); err != nil {
		t.Fatalf("bob pick failed: %v", err)
	}
	if state.OnTheClock.UserID != carol.UserID {
		t.Fatalf("expected carol next, got %s", state.OnTheClock.UserID)
	}

	// Round 1 runs in reverse, so carol stays on the clock.
	if _, state, err = fx.service.SubmitPick(ctx, carol, SubmitPickInput{LeagueID: "league-1", EntryKey: "akani-simbine"}); err != nil {
		t.Fatalf("carol pick failed: %v", err)
	}
	if state.EventIndex != 1 || state.Direction != draft.DirectionReverse {
		t.Fatalf("expected reverse round 1, got index=%d direction=%s", state.EventIndex, state.Direction)
	}
	if state.Event.ID != memory.EventIDGymAllAround {
		t.Fatalf("expected second event %s, got %s", memory.EventIDGymAllAround, state.Event.ID)
	}
	if state.OnTheClock.UserID != carol.UserID {
		t.Fatalf("expected carol to open the reverse round, got %s", state.OnTheClock.UserID)
	}

	if _, state, err = fx.service.SubmitPick(ctx, carol, SubmitPickInput{LeagueID: "league-1", EntryKey: "daiki-hashimoto"}); err != nil {
		t.Fatalf("carol second pick failed: %v", err)
	}
	if state.OnTheClock.UserID != bob.UserID {
		t.Fatalf("expected bob next in reverse round, got %s", state.OnTheClock.UserID)
	}
	if _, _, err = fx.service.SubmitPick(ctx, bob, SubmitPickInput{LeagueID: "league-1", EntryKey: "zhang-boheng"}); err != nil {
		t.Fatalf("bob second pick failed: %v", err)
	}
	_, state, err = fx.service.SubmitPick(ctx, alice, SubmitPickInput{LeagueID: "league-1", EntryKey: "fred-richard"})
	if err != nil {
		t.Fatalf("alice second pick failed: %v", err)
	}
	if !state.Complete {
		t.Fatalf("expected complete draft after both events filled")
	}

	// Every further submission is rejected.
	if _, _, err := fx.service.SubmitPick(ctx, alice, SubmitPickInput{LeagueID: "league-1", EntryKey: "jake-jarman"}); !errors.Is(err, draft.ErrDraftComplete) {
		t.Fatalf("expected ErrDraftComplete, got %v", err)
	}
}

func TestDraftService_SubmitPick_GateOrder(t *testing.T) {
	t.Parallel()

	t.Run("draft not active", func(t *testing.T) {
		t.Parallel()
		fx := newDraftFixture(t, false)
		_, _, err := fx.service.SubmitPick(t.Context(), alice, SubmitPickInput{LeagueID: "league-1", EntryKey: "noah-lyles"})
		if !errors.Is(err, draft.ErrDraftNotActive) {
			t.Fatalf("expected ErrDraftNotActive, got %v", err)
		}
	})

	t.Run("not a member", func(t *testing.T) {
		t.Parallel()
		fx := newDraftFixture(t, true)
		_, _, err := fx.service.SubmitPick(t.Context(), dave, SubmitPickInput{LeagueID: "league-1", EntryKey: "noah-lyles"})
		if !errors.Is(err, draft.ErrNotAMember) {
			t.Fatalf("expected ErrNotAMember, got %v", err)
		}
	})

	t.Run("not your turn", func(t *testing.T) {
		t.Parallel()
		fx := newDraftFixture(t, true)
		_, _, err := fx.service.SubmitPick(t.Context(), bob, SubmitPickInput{LeagueID: "league-1", EntryKey: "noah-lyles"})
		if !errors.Is(err, draft.ErrNotYourTurn) {
			t.Fatalf("expected ErrNotYourTurn, got %v", err)
		}
	})

	t.Run("entry from another event", func(t *testing.T) {
		t.Parallel()
		fx := newDraftFixture(t, true)
		_, _, err := fx.service.SubmitPick(t.Context(), alice, SubmitPickInput{LeagueID: "league-1", EntryKey: "pan-zhanle"})
		if !errors.Is(err, draft.ErrInvalidEntry) {
			t.Fatalf("expected ErrInvalidEntry, got %v", err)
		}
	})

	t.Run("unknown league", func(t *testing.T) {
		t.Parallel()
		fx := newDraftFixture(t, true)
		_, _, err := fx.service.SubmitPick(t.Context(), alice, SubmitPickInput{LeagueID: "league-404", EntryKey: "noah-lyles"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDraftService_ListUserPicks(t *testing.T) {
	t.Parallel()
	fx := newDraftFixture(t, true)
	ctx := t.Context()

	if _, _, err := fx.service.SubmitPick(ctx, alice, SubmitPickInput{LeagueID: "league-1", EntryKey: "noah-lyles"}); err != nil {
		t.Fatalf("pick failed: %v", err)
	}

	picks, err := fx.service.ListUserPicks(ctx, alice, "league-1")
	if err != nil {
		t.Fatalf("list picks failed: %v", err)
	}
	if len(picks) != 1 || picks[0].EntryKey != "noah-lyles" {
		t.Fatalf("unexpected picks: %+v", picks)
	}

	if _, err := fx.service.ListUserPicks(ctx, dave, "league-1"); !errors.Is(err, draft.ErrNotAMember) {
		t.Fatalf("expected ErrNotAMember, got %v", err)
	}
}
