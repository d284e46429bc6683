package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/platform/logging"
)

const defaultIngestWorkers = 8

// IngestCatalogInput is one catalog payload: the full event list plus their
// entries, keyed by stable keys so re-ingestion updates in place.
type IngestCatalogInput struct {
	Events  []event.Event
	Entries []event.Entry
}

// IngestResult reports what one ingestion run touched.
type IngestResult struct {
	Events  int
	Entries int
}

// CatalogService ingests the event catalog. Validation fans out per event
// on a conc pool before the single upsert transaction.
type CatalogService struct {
	eventRepo event.Repository
	events    *EventService
	logger    *logging.Logger
	workers   int
}

func NewCatalogService(eventRepo event.Repository, events *EventService, logger *logging.Logger, workers int) *CatalogService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = defaultIngestWorkers
	}

	return &CatalogService{
		eventRepo: eventRepo,
		events:    events,
		logger:    logger,
		workers:   workers,
	}
}

func (s *CatalogService) IngestCatalog(ctx context.Context, input IngestCatalogInput) (IngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.IngestCatalog")
	defer span.End()

	if len(input.Events) == 0 {
		return IngestResult{}, fmt.Errorf("%w: events are required", ErrInvalidInput)
	}

	eventsByID := make(map[string]event.Event, len(input.Events))
	keys := make(map[string]struct{}, len(input.Events))
	for _, ev := range input.Events {
		if err := ev.Validate(); err != nil {
			return IngestResult{}, fmt.Errorf("%w: event %s: %v", ErrInvalidInput, ev.ID, err)
		}
		if _, dup := eventsByID[ev.ID]; dup {
			return IngestResult{}, fmt.Errorf("%w: duplicate event id %s", ErrInvalidInput, ev.ID)
		}
		if _, dup := keys[ev.Key]; dup {
			return IngestResult{}, fmt.Errorf("%w: duplicate event key %s", ErrInvalidInput, ev.Key)
		}
		eventsByID[ev.ID] = ev
		keys[ev.Key] = struct{}{}
	}

	entriesByEvent := make(map[string][]event.Entry, len(input.Events))
	for _, entry := range input.Entries {
		entriesByEvent[entry.EventID] = append(entriesByEvent[entry.EventID], entry)
	}

	validate := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(s.workers)
	for eventID, entries := range entriesByEvent {
		eventID, entries := eventID, entries
		validate.Go(func(_ context.Context) error {
			ev, ok := eventsByID[eventID]
			if !ok {
				return fmt.Errorf("%w: entries reference unknown event %s", ErrInvalidInput, eventID)
			}
			seen := make(map[string]struct{}, len(entries))
			for _, entry := range entries {
				if err := entry.Validate(); err != nil {
					return fmt.Errorf("%w: entry %s/%s: %v", ErrInvalidInput, eventID, entry.Key, err)
				}
				key := strings.ToLower(entry.Key)
				if _, dup := seen[key]; dup {
					return fmt.Errorf("%w: duplicate entry key %s for event %s", ErrInvalidInput, entry.Key, eventID)
				}
				seen[key] = struct{}{}
				if entry.IsTeam != ev.IsTeamEvent {
					return fmt.Errorf("%w: entry %s does not match event %s eligibility", ErrInvalidInput, entry.Key, eventID)
				}
			}
			return nil
		})
	}
	if err := validate.Wait(); err != nil {
		return IngestResult{}, err
	}

	if err := s.eventRepo.UpsertCatalog(ctx, input.Events, input.Entries); err != nil {
		return IngestResult{}, fmt.Errorf("upsert catalog: %w", err)
	}

	if s.events != nil {
		s.events.InvalidateCatalog(ctx)
	}

	s.logger.InfoContext(ctx, "catalog ingested",
		"events", len(input.Events),
		"entries", len(input.Entries),
	)

	return IngestResult{Events: len(input.Events), Entries: len(input.Entries)}, nil
}
