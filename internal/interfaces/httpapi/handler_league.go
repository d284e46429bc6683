package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/yldraft/olympic-draft/internal/domain/league"
	"github.com/yldraft/olympic-draft/internal/usecase"
)

type createLeagueRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	DraftRounds int    `json:"draftRounds" validate:"omitempty,min=1"`
}

type joinLeagueRequest struct {
	Code string `json:"code" validate:"required,max=20"`
}

type leagueDTO struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	CommissionerID string `json:"commissionerId"`
	DraftRounds    int    `json:"draftRounds"`
	CreatedAt      string `json:"createdAt"`
}

type memberDTO struct {
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	DraftPosition *int   `json:"draftPosition"`
	JoinedAt      string `json:"joinedAt"`
}

type leagueDetailDTO struct {
	League  leagueDTO   `json:"league"`
	Members []memberDTO `json:"members"`
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	var req createLeagueRequest
	if !h.decodeRequest(ctx, w, r.Body, &req) {
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.CreateLeague(ctx, principal, usecase.CreateLeagueInput{
		Name:        req.Name,
		DraftRounds: req.DraftRounds,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(created))
}

func (h *Handler) JoinLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinLeague")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	var req joinLeagueRequest
	if !h.decodeRequest(ctx, w, r.Body, &req) {
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	joined, err := h.leagueService.JoinByCode(ctx, principal, req.Code)
	if err != nil {
		h.logger.WarnContext(ctx, "join league failed", "user_id", principal.UserID, "code", req.Code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(joined))
}

func (h *Handler) ListMyLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyLeagues")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagues, err := h.leagueService.ListMine(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	detail, err := h.leagueService.GetDetail(ctx, principal, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueDetailToDTO(detail))
}

func (h *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartDraft")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	detail, err := h.leagueService.StartDraft(ctx, principal, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "start draft failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueDetailToDTO(detail))
}

func (h *Handler) LockLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LockLeague")
	defer span.End()

	principal, ok := h.principal(ctx, w)
	if !ok {
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	locked, err := h.leagueService.Lock(ctx, principal, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "lock league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(locked))
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:             l.ID,
		Code:           l.Code,
		Name:           l.Name,
		Status:         string(l.Status),
		CommissionerID: l.CommissionerID,
		DraftRounds:    l.DraftRounds,
		CreatedAt:      l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func memberToDTO(m league.Member) memberDTO {
	return memberDTO{
		UserID:        m.UserID,
		Username:      m.Username,
		DraftPosition: m.DraftPosition,
		JoinedAt:      m.JoinedAt.UTC().Format(time.RFC3339),
	}
}

func leagueDetailToDTO(detail usecase.LeagueDetail) leagueDetailDTO {
	members := make([]memberDTO, 0, len(detail.Members))
	for _, m := range detail.Members {
		members = append(members, memberToDTO(m))
	}

	return leagueDetailDTO{
		League:  leagueToDTO(detail.League),
		Members: members,
	}
}
