package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/yldraft/olympic-draft/internal/domain/user"
	"github.com/yldraft/olympic-draft/internal/platform/logging"
	"github.com/yldraft/olympic-draft/internal/usecase"
)

type Handler struct {
	leagueService  *usecase.LeagueService
	draftService   *usecase.DraftService
	eventService   *usecase.EventService
	resultService  *usecase.ResultService
	autoService    *usecase.AutoAssignService
	catalogService *usecase.CatalogService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	draftService *usecase.DraftService,
	eventService *usecase.EventService,
	resultService *usecase.ResultService,
	autoService *usecase.AutoAssignService,
	catalogService *usecase.CatalogService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:  leagueService,
		draftService:   draftService,
		eventService:   eventService,
		resultService:  resultService,
		autoService:    autoService,
		catalogService: catalogService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) principal(ctx context.Context, w http.ResponseWriter) (user.Principal, bool) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return user.Principal{}, false
	}
	return principal, true
}

func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, body io.Reader, dst any) bool {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return false
	}
	return true
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
