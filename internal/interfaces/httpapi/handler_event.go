package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/usecase"
)

type eventDTO struct {
	ID          string `json:"id"`
	Sport       string `json:"sport"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	IsTeamEvent bool   `json:"isTeamEvent"`
	SortOrder   int    `json:"sortOrder"`
}

type entryDTO struct {
	EventID     string `json:"eventId"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	IsTeam      bool   `json:"isTeam"`
}

type eventSummaryDTO struct {
	Event      eventDTO       `json:"event"`
	Mode       string         `json:"mode"`
	Picks      []pickDTO      `json:"picks"`
	Placements []placementDTO `json:"placements"`
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	events, err := h.eventService.ListCatalog(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvent")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	item, err := h.eventService.GetEvent(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) ListEventEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEventEntries")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(ctx, w, usecase.ErrInvalidInput)
			return
		}
		limit = parsed
	}

	entries, err := h.eventService.ListEntries(ctx, eventID, query, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list entries failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]entryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLeagueEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueEvents")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	summaries, err := h.eventService.ListLeagueSummaries(ctx, principal, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league events failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventSummaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, eventSummaryToDTO(summary))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func eventToDTO(e event.Event) eventDTO {
	return eventDTO{
		ID:          e.ID,
		Sport:       e.Sport,
		Name:        e.Name,
		Key:         e.Key,
		IsTeamEvent: e.IsTeamEvent,
		SortOrder:   e.SortOrder,
	}
}

func entryToDTO(e event.Entry) entryDTO {
	return entryDTO{
		EventID:     e.EventID,
		Key:         e.Key,
		Name:        e.Name,
		CountryCode: e.CountryCode,
		IsTeam:      e.IsTeam,
	}
}

func eventSummaryToDTO(summary usecase.EventSummary) eventSummaryDTO {
	picks := make([]pickDTO, 0, len(summary.Picks))
	for _, p := range summary.Picks {
		picks = append(picks, pickToDTO(p))
	}

	placements := make([]placementDTO, 0, len(summary.Placements))
	for _, p := range summary.Placements {
		placements = append(placements, placementToDTO(p))
	}

	return eventSummaryDTO{
		Event:      eventToDTO(summary.Event),
		Mode:       string(summary.Mode),
		Picks:      picks,
		Placements: placements,
	}
}
