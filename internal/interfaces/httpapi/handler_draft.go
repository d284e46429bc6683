package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
	"github.com/yldraft/olympic-draft/internal/usecase"
)

type submitPickRequest struct {
	EntryKey string `json:"entryKey" validate:"required,max=100"`
}

type pickDTO struct {
	LeagueID  string `json:"leagueId"`
	EventID   string `json:"eventId"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	EntryKey  string `json:"entryKey"`
	EntryName string `json:"entryName"`
	PickedAt  string `json:"pickedAt"`
}

type draftStateDTO struct {
	Complete   bool       `json:"complete"`
	Event      *eventDTO  `json:"event,omitempty"`
	EventIndex int        `json:"eventIndex"`
	Direction  string     `json:"direction,omitempty"`
	OnTheClock *memberDTO `json:"onTheClock,omitempty"`
	Picks      []pickDTO  `json:"picks"`
}

type submitPickResponse struct {
	Pick  pickDTO       `json:"pick"`
	State draftStateDTO `json:"state"`
}

func (h *Handler) GetDraftState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftState")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	state, err := h.draftService.State(ctx, principal, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft state failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftStateToDTO(state))
}

func (h *Handler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPick")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req submitPickRequest
	if !h.decodeRequest(ctx, w, r.Body, &req) {
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pick, state, err := h.draftService.SubmitPick(ctx, principal, usecase.SubmitPickInput{
		LeagueID: leagueID,
		EntryKey: req.EntryKey,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit pick failed",
			"league_id", leagueID,
			"user_id", principal.UserID,
			"entry_key", req.EntryKey,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, submitPickResponse{
		Pick:  pickToDTO(pick),
		State: draftStateToDTO(state),
	})
}

func (h *Handler) ListMyPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyPicks")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	picks, err := h.draftService.ListUserPicks(ctx, principal, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list picks failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]pickDTO, 0, len(picks))
	for _, p := range picks {
		items = append(items, pickToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func pickToDTO(p draft.Pick) pickDTO {
	return pickDTO{
		LeagueID:  p.LeagueID,
		EventID:   p.EventID,
		UserID:    p.UserID,
		Username:  p.Username,
		EntryKey:  p.EntryKey,
		EntryName: p.EntryName,
		PickedAt:  p.PickedAt.UTC().Format(time.RFC3339Nano),
	}
}

func draftStateToDTO(state draft.State) draftStateDTO {
	picks := make([]pickDTO, 0, len(state.Picks))
	for _, p := range state.Picks {
		picks = append(picks, pickToDTO(p))
	}

	dto := draftStateDTO{
		Complete: state.Complete,
		Picks:    picks,
	}
	if state.Complete {
		return dto
	}

	eventItem := eventToDTO(state.Event)
	onTheClock := memberToDTO(state.OnTheClock)
	dto.Event = &eventItem
	dto.EventIndex = state.EventIndex
	dto.Direction = string(state.Direction)
	dto.OnTheClock = &onTheClock
	return dto
}
