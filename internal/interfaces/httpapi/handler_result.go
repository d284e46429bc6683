package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/yldraft/olympic-draft/internal/domain/result"
	"github.com/yldraft/olympic-draft/internal/usecase"
)

type submitResultsRequest struct {
	Placements []placementInputDTO `json:"placements" validate:"required,min=1,max=10,dive"`
}

type placementInputDTO struct {
	Place    int    `json:"place" validate:"required,min=1,max=10"`
	EntryKey string `json:"entryKey" validate:"required,max=100"`
}

type placementDTO struct {
	LeagueID  string `json:"leagueId"`
	EventID   string `json:"eventId"`
	Place     int    `json:"place"`
	EntryKey  string `json:"entryKey"`
	EntryName string `json:"entryName"`
	CreatedAt string `json:"createdAt"`
}

type leaderboardRowDTO struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

func (h *Handler) SubmitResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitResults")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req submitResultsRequest
	if !h.decodeRequest(ctx, w, r.Body, &req) {
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	placements := make([]usecase.PlacementInput, 0, len(req.Placements))
	for _, p := range req.Placements {
		placements = append(placements, usecase.PlacementInput{
			Place:    p.Place,
			EntryKey: p.EntryKey,
		})
	}

	stored, err := h.resultService.SubmitResults(ctx, principal, leagueID, eventID, placements)
	if err != nil {
		h.logger.WarnContext(ctx, "submit results failed", "league_id", leagueID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]placementDTO, 0, len(stored))
	for _, p := range stored {
		items = append(items, placementToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	eventID := strings.TrimSpace(r.PathValue("eventID"))
	placements, err := h.resultService.ListResults(ctx, principal, leagueID, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list results failed", "league_id", leagueID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]placementDTO, 0, len(placements))
	for _, p := range placements {
		items = append(items, placementToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	rows, err := h.resultService.Leaderboard(ctx, principal, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, leaderboardRowDTO{
			UserID:   row.UserID,
			Username: row.Username,
			Points:   row.Points,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func placementToDTO(p result.Placement) placementDTO {
	return placementDTO{
		LeagueID:  p.LeagueID,
		EventID:   p.EventID,
		Place:     p.Place,
		EntryKey:  p.EntryKey,
		EntryName: p.EntryName,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
