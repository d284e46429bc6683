package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/domain/league"
	"github.com/yldraft/olympic-draft/internal/platform/logging"
)

const defaultAutoAssignWorkers = 4

// AutoAssignResult reports one auto-assignment run.
type AutoAssignResult struct {
	AssignedEvents int
	SkippedEvents  int
	Picks          int
}

// AutoAssignService hands out entries for auto-mode planned events: one
// random unique entry per member per event, best effort. Events whose
// catalog cannot cover the roster are skipped rather than failed.
type AutoAssignService struct {
	leagueRepo league.Repository
	eventRepo  event.Repository
	pickRepo   draft.PickRepository
	logger     *logging.Logger
	workers    int
}

func NewAutoAssignService(
	leagueRepo league.Repository,
	eventRepo event.Repository,
	pickRepo draft.PickRepository,
	logger *logging.Logger,
	workers int,
) *AutoAssignService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = defaultAutoAssignWorkers
	}

	return &AutoAssignService{
		leagueRepo: leagueRepo,
		eventRepo:  eventRepo,
		pickRepo:   pickRepo,
		logger:     logger,
		workers:    workers,
	}
}

// AssignAutoEvents processes every auto-mode planned event for the league
// on a worker pool. Re-runs are safe: CreateAuto skips rows that already
// exist.
func (s *AutoAssignService) AssignAutoEvents(ctx context.Context, leagueID string) (AutoAssignResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AutoAssignService.AssignAutoEvents")
	defer span.End()

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return AutoAssignResult{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return AutoAssignResult{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	if l.Status == league.StatusLobby {
		return AutoAssignResult{}, draft.ErrDraftNotActive
	}

	members, err := s.leagueRepo.ListMembers(ctx, l.ID)
	if err != nil {
		return AutoAssignResult{}, fmt.Errorf("list league members: %w", err)
	}
	if len(members) == 0 {
		return AutoAssignResult{}, draft.ErrNoMembers
	}

	planned, err := s.eventRepo.ListPlannedEvents(ctx, l.ID, event.ModeAuto)
	if err != nil {
		return AutoAssignResult{}, fmt.Errorf("list auto planned events: %w", err)
	}
	if len(planned) == 0 {
		return AutoAssignResult{}, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return AutoAssignResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var assigned, skipped, pickCount atomic.Int32
	errs := make(chan error, len(planned))

	var workers sync.WaitGroup
	for _, p := range planned {
		p := p
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			picks, err := s.assignEvent(ctx, l.ID, p.EventID, members)
			if err != nil {
				errs <- fmt.Errorf("assign event %s: %w", p.EventID, err)
				return
			}
			if picks == 0 {
				skipped.Add(1)
				return
			}
			assigned.Add(1)
			pickCount.Add(int32(picks))
		}); err != nil {
			workers.Done()
			return AutoAssignResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(errs)
	if err, ok := <-errs; ok {
		return AutoAssignResult{}, err
	}

	result := AutoAssignResult{
		AssignedEvents: int(assigned.Load()),
		SkippedEvents:  int(skipped.Load()),
		Picks:          int(pickCount.Load()),
	}

	s.logger.InfoContext(ctx, "auto events assigned",
		"league_id", l.ID,
		"assigned_events", result.AssignedEvents,
		"skipped_events", result.SkippedEvents,
		"picks", result.Picks,
	)

	return result, nil
}

func (s *AutoAssignService) assignEvent(ctx context.Context, leagueID, eventID string, members []league.Member) (int, error) {
	existing, err := s.pickRepo.ListByEvent(ctx, leagueID, eventID)
	if err != nil {
		return 0, fmt.Errorf("list event picks: %w", err)
	}
	takenUsers := make(map[string]struct{}, len(existing))
	takenEntries := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		takenUsers[p.UserID] = struct{}{}
		takenEntries[p.EntryKey] = struct{}{}
	}

	unserved := make([]league.Member, 0, len(members))
	for _, m := range members {
		if _, ok := takenUsers[m.UserID]; !ok {
			unserved = append(unserved, m)
		}
	}
	if len(unserved) == 0 {
		return 0, nil
	}

	entries, err := s.eventRepo.ListEntries(ctx, eventID, "", 0)
	if err != nil {
		return 0, fmt.Errorf("list event entries: %w", err)
	}
	free := make([]event.Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := takenEntries[e.Key]; !ok {
			free = append(free, e)
		}
	}
	if len(free) < len(unserved) {
		// Not enough unique entries to cover the roster; leave the event
		// unassigned rather than serving only part of it.
		return 0, nil
	}

	sort.SliceStable(unserved, func(i, j int) bool {
		return unserved[i].UserID < unserved[j].UserID
	})
	rand.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})

	picks := make([]draft.Pick, 0, len(unserved))
	for i, m := range unserved {
		entry := free[i]
		picks = append(picks, draft.Pick{
			LeagueID:  leagueID,
			EventID:   eventID,
			UserID:    m.UserID,
			Username:  m.Username,
			EntryKey:  entry.Key,
			EntryName: entry.Name,
		})
	}

	if err := s.pickRepo.CreateAuto(ctx, picks); err != nil {
		return 0, fmt.Errorf("create auto picks: %w", err)
	}

	return len(picks), nil
}
