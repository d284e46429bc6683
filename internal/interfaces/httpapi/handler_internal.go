package httpapi

import (
	"net/http"
	"strings"

	"github.com/yldraft/olympic-draft/internal/domain/event"
	"github.com/yldraft/olympic-draft/internal/usecase"
)

type ingestCatalogRequest struct {
	Events  []ingestEventDTO `json:"events" validate:"required,min=1,dive"`
	Entries []ingestEntryDTO `json:"entries" validate:"required,min=1,dive"`
}

type ingestEventDTO struct {
	ID          string `json:"id" validate:"required,max=100"`
	Sport       string `json:"sport" validate:"required,max=100"`
	Name        string `json:"name" validate:"required,max=200"`
	Key         string `json:"key" validate:"required,max=100"`
	IsTeamEvent bool   `json:"isTeamEvent"`
	SortOrder   int    `json:"sortOrder" validate:"min=0"`
}

type ingestEntryDTO struct {
	EventID     string `json:"eventId" validate:"required,max=100"`
	Key         string `json:"key" validate:"required,max=100"`
	Name        string `json:"name" validate:"required,max=200"`
	CountryCode string `json:"countryCode" validate:"omitempty,len=2"`
	IsTeam      bool   `json:"isTeam"`
}

type ingestCatalogResponse struct {
	Events  int `json:"events"`
	Entries int `json:"entries"`
}

type autoAssignResponse struct {
	AssignedEvents int `json:"assignedEvents"`
	SkippedEvents  int `json:"skippedEvents"`
	Picks          int `json:"picks"`
}

func (h *Handler) IngestCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestCatalog")
	defer span.End()

	var req ingestCatalogRequest
	if !h.decodeRequest(ctx, w, r.Body, &req) {
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	events := make([]event.Event, 0, len(req.Events))
	for _, e := range req.Events {
		events = append(events, event.Event{
			ID:          e.ID,
			Sport:       e.Sport,
			Name:        e.Name,
			Key:         e.Key,
			IsTeamEvent: e.IsTeamEvent,
			SortOrder:   e.SortOrder,
		})
	}

	entries := make([]event.Entry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, event.Entry{
			EventID:     e.EventID,
			Key:         e.Key,
			Name:        e.Name,
			CountryCode: strings.ToUpper(e.CountryCode),
			IsTeam:      e.IsTeam,
		})
	}

	res, err := h.catalogService.IngestCatalog(ctx, usecase.IngestCatalogInput{
		Events:  events,
		Entries: entries,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "catalog ingestion failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestCatalogResponse{
		Events:  res.Events,
		Entries: res.Entries,
	})
}

func (h *Handler) RunAutoAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAutoAssign")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	res, err := h.autoService.AssignAutoEvents(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "auto assignment failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, autoAssignResponse{
		AssignedEvents: res.AssignedEvents,
		SkippedEvents:  res.SkippedEvents,
		Picks:          res.Picks,
	})
}
