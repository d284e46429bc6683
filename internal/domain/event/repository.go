package event

import "context"

// Repository describes catalog and plan persistence needs from use cases.
type Repository interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEventByID(ctx context.Context, eventID string) (Event, bool, error)

	// UpsertCatalog inserts or updates events and their entries keyed by the
	// stable event/entry keys. Used by catalog ingestion only.
	UpsertCatalog(ctx context.Context, events []Event, entries []Entry) error

	// ListEntries returns entries for an event matching its team/individual
	// eligibility, optionally filtered by a case-insensitive name/key query.
	ListEntries(ctx context.Context, eventID string, query string, limit int) ([]Entry, error)
	GetEntry(ctx context.Context, eventID, entryKey string) (Entry, bool, error)
	// CountEntriesByEvent returns eligible entry counts per event id for the
	// whole catalog; used by plan generation capacity checks.
	CountEntriesByEvent(ctx context.Context) (map[string]int, error)

	// ListPlannedEvents returns a league's plan in sort order, optionally
	// restricted to one mode.
	ListPlannedEvents(ctx context.Context, leagueID string, mode Mode) ([]PlannedEvent, error)
}
