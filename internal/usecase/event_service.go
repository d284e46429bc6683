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
	"github.com/yldraft/olympic-draft/internal/platform/cache"
)

const (
	catalogCacheKey = "catalog:events"

	defaultEntryLimit = 50
	maxEntryLimit     = 200
)

// EventSummary folds one planned event into everything a league member
// needs to render it: catalog data, mode, committed picks, and results.
type EventSummary struct {
	Event      event.Event
	Mode       event.Mode
	Picks      []draft.Pick
	Placements []result.Placement
}

type EventService struct {
	eventRepo  event.Repository
	leagueRepo league.Repository
	pickRepo   draft.PickRepository
	resultRepo result.Repository
	store      *cache.Store
}

func NewEventService(
	eventRepo event.Repository,
	leagueRepo league.Repository,
	pickRepo draft.PickRepository,
	resultRepo result.Repository,
	store *cache.Store,
) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		leagueRepo: leagueRepo,
		pickRepo:   pickRepo,
		resultRepo: resultRepo,
		store:      store,
	}
}

// ListCatalog serves the event catalog through the TTL cache; the catalog
// changes only on ingestion, so concurrent misses share one load.
func (s *EventService) ListCatalog(ctx context.Context) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListCatalog")
	defer span.End()

	if s.store == nil {
		return s.eventRepo.ListEvents(ctx)
	}

	value, err := s.store.GetOrLoad(ctx, catalogCacheKey, func(ctx context.Context) (any, error) {
		events, err := s.eventRepo.ListEvents(ctx)
		if err != nil {
			return nil, fmt.Errorf("list catalog events: %w", err)
		}
		return events, nil
	})
	if err != nil {
		return nil, err
	}

	events, ok := value.([]event.Event)
	if !ok {
		return nil, fmt.Errorf("unexpected catalog cache payload %T", value)
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.GetEvent")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	ev, exists, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	return ev, nil
}

// ListEntries searches an event's draftable entries. The limit clamps to
// 1..200 with a default of 50, matching what clients can render.
func (s *EventService) ListEntries(ctx context.Context, eventID, query string, limit int) ([]event.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListEntries")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultEntryLimit
	}
	if limit > maxEntryLimit {
		limit = maxEntryLimit
	}

	_, exists, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	entries, err := s.eventRepo.ListEntries(ctx, eventID, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// ListLeagueSummaries returns one summary per planned event for a league,
// in plan order.
func (s *EventService) ListLeagueSummaries(ctx context.Context, principal user.Principal, leagueID string) ([]EventSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListLeagueSummaries")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	isMember, err := s.leagueRepo.IsMember(ctx, leagueID, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if !isMember {
		return nil, draft.ErrNotAMember
	}

	planned, err := s.eventRepo.ListPlannedEvents(ctx, leagueID, "")
	if err != nil {
		return nil, fmt.Errorf("list planned events: %w", err)
	}

	summaries := make([]EventSummary, 0, len(planned))
	for _, p := range planned {
		ev, exists, err := s.eventRepo.GetEventByID(ctx, p.EventID)
		if err != nil {
			return nil, fmt.Errorf("get planned event: %w", err)
		}
		if !exists {
			continue
		}

		picks, err := s.pickRepo.ListByEvent(ctx, leagueID, p.EventID)
		if err != nil {
			return nil, fmt.Errorf("list event picks: %w", err)
		}
		placements, err := s.resultRepo.ListForEvent(ctx, leagueID, p.EventID)
		if err != nil {
			return nil, fmt.Errorf("list event results: %w", err)
		}

		summaries = append(summaries, EventSummary{
			Event:      ev,
			Mode:       p.Mode,
			Picks:      picks,
			Placements: placements,
		})
	}

	return summaries, nil
}

// InvalidateCatalog drops the cached catalog after ingestion.
func (s *EventService) InvalidateCatalog(ctx context.Context) {
	if s.store != nil {
		s.store.Delete(ctx, catalogCacheKey)
	}
}
