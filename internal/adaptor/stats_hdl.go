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

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// DeveloperFreeRatio handles GET /api/developers/{developer}/free-ratio
func (h *StatsHandler) DeveloperFreeRatio(w http.ResponseWriter, r *http.Request) {
	req := request.DeveloperQuery{Developer: chi.URLParam(r, "developer")}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.DeveloperFreeRatio(r.Context(), req.Developer)
	if err != nil {
		h.handleServiceError(w, err, "developer free ratio")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// UserSpend handles GET /api/users/{user_id}/spend
func (h *StatsHandler) UserSpend(w http.ResponseWriter, r *http.Request) {
	req := request.UserQuery{UserID: chi.URLParam(r, "user_id")}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.UserSpend(r.Context(), req.UserID)
	if err != nil {
		h.handleServiceError(w, err, "user spend")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GenreTopPlayer handles GET /api/genres/{genre}/top-player
func (h *StatsHandler) GenreTopPlayer(w http.ResponseWriter, r *http.Request) {
	req := request.GenreQuery{Genre: chi.URLParam(r, "genre")}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.GenreTopPlayer(r.Context(), req.Genre)
	if err != nil {
		h.handleServiceError(w, err, "genre top player")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// TopDevelopersByYear handles GET /api/years/{year}/top-developers
func (h *StatsHandler) TopDevelopersByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		utils.ResponseBadRequest(w, "Year must be an integer", nil)
		return
	}

	req := request.YearQuery{Year: year}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.TopDevelopersByYear(r.Context(), req.Year)
	if err != nil {
		h.handleServiceError(w, err, "top developers by year")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// DeveloperSentiment handles GET /api/developers/{developer}/sentiment
func (h *StatsHandler) DeveloperSentiment(w http.ResponseWriter, r *http.Request) {
	req := request.DeveloperQuery{Developer: chi.URLParam(r, "developer")}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.DeveloperSentiment(r.Context(), req.Developer)
	if err != nil {
		h.handleServiceError(w, err, "developer sentiment")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// handleServiceError maps the engine error taxonomy to response codes
func (h *StatsHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		h.log.Warn(operation+" - no data",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, utils.ErrComputation):
		h.log.Warn(operation+" - not computable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
