package expense

import (
	"context"

	"go.uber.org/zap"

	"github.com/fkhayef/pipsplit/internal/currency"
	"github.com/fkhayef/pipsplit/internal/expense/split"
	"github.com/fkhayef/pipsplit/pkg/middleware"
)

// Service handles expense allocation business logic
type Service struct {
	splitFactory *split.Factory
	currencies   currency.Provider
}

// NewService creates a new expense service with dependencies injected
func NewService(splitFactory *split.Factory, currencies currency.Provider) *Service {
	return &Service{
		splitFactory: splitFactory,
		currencies:   currencies,
	}
}

// Allocate computes every member's share of an expense without storing it
func (s *Service) Allocate(ctx context.Context, req *AllocateRequest) (*AllocationResponse, error) {
	strategy, err := s.splitFactory.CreateFromString(req.Mode)
	if err != nil {
		return nil, err
	}

	code, rules, err := s.currencies.Resolve(req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	inputs := make([]split.SplitInput, 0, len(req.Splits))
	for _, p := range req.Splits {
		if p == nil {
			continue
		}
		inputs = append(inputs, p.ToSplitInput())
	}

	result, err := strategy.Allocate(rules, split.Request{
		Mode:               strategy.Mode(),
		TotalAmount:        req.TotalAmount,
		SharedAmount:       req.SharedAmount,
		ProportionalAmount: req.ProportionalAmount,
		Splits:             inputs,
	})
	if err != nil {
		return nil, err
	}

	logger := middleware.GetLogger(ctx)
	if result.SharedAmountAdjusted {
		logger.Debug("shared amount recomputed",
			zap.String("requested", req.SharedAmount.String()),
			zap.String("effective", result.SharedAmount.String()),
		)
	}
	logger.Debug("allocated expense",
		zap.String("mode", string(strategy.Mode())),
		zap.String("currency", code),
		zap.Int("members", len(result.Splits)),
		zap.Int64("adjustments", result.Adjustments),
	)

	return toResponse(code, rules, req, result), nil
}
