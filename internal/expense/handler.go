package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/pipsplit/internal/currency"
	"github.com/fkhayef/pipsplit/internal/expense/split"
	"github.com/fkhayef/pipsplit/pkg/middleware"
	"github.com/fkhayef/pipsplit/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/allocate", h.Allocate)

	return r
}

// Allocate handles POST /expenses/allocate
// @Summary      Allocate an expense among members
// @Description  Splits the total using AMOUNT (assigned + evenly shared + proportional surcharge) or PERCENTAGE mode. Allocations always sum to the total in the currency's smallest unit.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body AllocateRequest true "Allocation request"
// @Success      200 {object} response.APIResponse{data=AllocationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /expenses/allocate [post]
func (h *Handler) Allocate(w http.ResponseWriter, r *http.Request) {
	var req AllocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Allocate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, split.ErrUnknownMode):
			response.BadRequest(w, "Invalid mode. Must be AMOUNT or PERCENTAGE")
		case errors.Is(err, currency.ErrUnknownCurrency):
			response.BadRequest(w, err.Error())
		case errors.Is(err, split.ErrDuplicateMember), errors.Is(err, split.ErrModeMismatch):
			response.UnprocessableEntity(w, err.Error())
		default:
			middleware.GetLogger(r.Context()).Error("allocate expense", zap.Error(err))
			response.InternalError(w, "Failed to allocate expense")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}
