package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riwahl/match-scout/internal/domain/scout"
	"github.com/riwahl/match-scout/internal/platform/logging"
	"github.com/riwahl/match-scout/internal/usecase"
)

type Handler struct {
	briefingService *usecase.BriefingService
	profileService  *usecase.ProfileService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	briefingService *usecase.BriefingService,
	profileService *usecase.ProfileService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		briefingService: briefingService,
		profileService:  profileService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateBriefing handles POST /v1/briefings.
func (h *Handler) CreateBriefing(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBriefing")
	defer span.End()

	var req briefingRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	briefing, err := h.briefingService.BuildBriefing(ctx, usecase.BriefingInput{
		OwnPlayerIDs:   req.OwnPlayerIDs,
		EnemyPlayerIDs: req.EnemyPlayerIDs,
		Map:            req.Map,
		MaxWorkers:     req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "build briefing failed", "map", req.Map, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, briefingToDTO(briefing))
}

// GetPlayer handles GET /v1/players/{playerID}.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	profile, err := h.profileService.GetProfile(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profile)
}

// GetUsageStats handles GET /v1/stats.
func (h *Handler) GetUsageStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUsageStats")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.profileService.Usage())
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type briefingRequest struct {
	OwnPlayerIDs   []string `json:"ownPlayerIds" validate:"max=10,dive,required"`
	EnemyPlayerIDs []string `json:"enemyPlayerIds" validate:"required,min=1,max=10,dive,required"`
	Map            string   `json:"map" validate:"max=64"`
	MaxWorkers     int      `json:"maxWorkers" validate:"min=0,max=16"`
}

type briefingDTO struct {
	GeneratedAt     string                 `json:"generatedAt"`
	Map             string                 `json:"map"`
	TeamAnalysis    scout.TeamAnalysis     `json:"teamAnalysis"`
	EnemyAnalysis   scout.TeamAnalysis     `json:"enemyAnalysis"`
	Threats         []scout.Threat         `json:"threats"`
	Opportunities   []scout.Opportunity    `json:"opportunities"`
	Recommendations []scout.Recommendation `json:"strategicRecommendations"`
	Confidence      int                    `json:"confidence"`
}

func briefingToDTO(b scout.PreMatchBriefing) briefingDTO {
	return briefingDTO{
		GeneratedAt:     b.GeneratedAt.UTC().Format(time.RFC3339),
		Map:             b.Map,
		TeamAnalysis:    b.Team,
		EnemyAnalysis:   b.Opponents,
		Threats:         b.Threats,
		Opportunities:   b.Opportunities,
		Recommendations: b.Recommendations,
		Confidence:      b.Confidence,
	}
}
