package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"steam-insights/internal/dto/request"
	"steam-insights/internal/usecase"
	"steam-insights/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecommendHandler struct {
	service usecase.RecommendService
	log     *zap.Logger
}

func NewRecommendHandler(service usecase.RecommendService, log *zap.Logger) *RecommendHandler {
	return &RecommendHandler{
		service: service,
		log:     log.With(zap.String("handler", "recommend")),
	}
}

// SimilarGames handles GET /api/games/{item_id}/recommendations
func (h *RecommendHandler) SimilarGames(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Item ID must be an integer", nil)
		return
	}

	req := request.RecommendQuery{ItemID: itemID}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.SimilarGames(r.Context(), req.ItemID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

func (h *RecommendHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		h.log.Warn("Recommendation - item not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, utils.ErrComputation):
		h.log.Warn("Recommendation - not computable", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error())

	default:
		h.log.Error("Failed to compute recommendations", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
