package settlement

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/pipsplit/internal/currency"
	"github.com/fkhayef/pipsplit/pkg/middleware"
	"github.com/fkhayef/pipsplit/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/summary", h.Summary)
	r.Post("/breakdown", h.Breakdown)
	r.Post("/plan", h.Plan)

	return r
}

// Summary handles POST /settlements/summary
// @Summary      Net balances for a member
// @Description  Nets every debt between the member and each counterparty; fully netted counterparties are omitted
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body SummaryRequest true "Member and debts"
// @Success      200 {object} response.APIResponse{data=[]NetBalanceResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /settlements/summary [post]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	balances, code, err := h.service.Summarize(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err, "Failed to summarize balances")
		return
	}

	response.JSONWithMeta(w, http.StatusOK, balances, &response.Meta{Currency: code, Count: len(balances)})
}

// Breakdown handles POST /settlements/breakdown
// @Summary      Per-category net between two members
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body BreakdownRequest true "Members and debts"
// @Success      200 {object} response.APIResponse{data=[]CategoryBalanceResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /settlements/breakdown [post]
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	var req BreakdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	breakdown, code, err := h.service.Breakdown(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err, "Failed to break down balances")
		return
	}

	response.JSONWithMeta(w, http.StatusOK, breakdown, &response.Meta{Currency: code, Count: len(breakdown)})
}

// Plan handles POST /settlements/plan
// @Summary      Least-transfers settlement plan
// @Description  Reduces the group's debts to the payments that zero every member's balance
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body PlanRequest true "Group debts"
// @Success      200 {object} response.APIResponse{data=PlanResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /settlements/plan [post]
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	plan, err := h.service.Plan(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err, "Failed to plan settlement")
		return
	}

	response.JSON(w, http.StatusOK, plan)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, currency.ErrUnknownCurrency):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrMissingMember),
		errors.Is(err, ErrSelfDebt),
		errors.Is(err, ErrInvalidDebtAmount),
		errors.Is(err, ErrFractionalAmount),
		errors.Is(err, ErrSameMember):
		response.UnprocessableEntity(w, err.Error())
	default:
		middleware.GetLogger(r.Context()).Error(fallback, zap.Error(err))
		response.InternalError(w, fallback)
	}
}
