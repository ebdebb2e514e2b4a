package currency

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/pipsplit/pkg/middleware"
	"github.com/fkhayef/pipsplit/pkg/response"
)

// RulesResponse describes a resolved currency
type RulesResponse struct {
	Code              string `json:"code"`
	DecimalPlaces     int32  `json:"decimal_places"`
	SmallestIncrement string `json:"smallest_increment"`
}

// Handler exposes currency lookups over HTTP
type Handler struct {
	provider Provider
}

// NewHandler creates a new currency handler
func NewHandler(provider Provider) *Handler {
	return &Handler{provider: provider}
}

// Routes returns the router for currency endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{code}", h.Get)

	return r
}

// Get handles GET /currencies/{code}
// @Summary      Resolve currency precision
// @Description  Returns the number of decimal places and smallest increment used when allocating in this currency
// @Tags         currencies
// @Produce      json
// @Param        code path string true "ISO 4217 currency code"
// @Success      200 {object} response.APIResponse{data=RulesResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /currencies/{code} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	code, rules, err := h.provider.Resolve(chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, ErrUnknownCurrency) {
			response.NotFound(w, err.Error())
			return
		}
		middleware.GetLogger(r.Context()).Error("resolve currency", zap.Error(err))
		response.InternalError(w, "Failed to resolve currency")
		return
	}

	response.JSON(w, http.StatusOK, &RulesResponse{
		Code:              code,
		DecimalPlaces:     rules.DecimalPlaces(),
		SmallestIncrement: rules.Format(rules.SmallestIncrement()),
	})
}
