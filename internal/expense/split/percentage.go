package split

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/pipsplit/internal/currency"
)

// =============================================================================
// PERCENTAGE SPLIT STRATEGY
// Divides the expense based on each member's percentage. The last member
// absorbs whatever is needed for the percentages to sum to exactly 100.
// =============================================================================

var hundred = decimal.NewFromInt(100)

// PercentageStrategy implements the Strategy interface for percentage-based splits
type PercentageStrategy struct{}

// Mode returns the split mode identifier
func (s *PercentageStrategy) Mode() Mode {
	return ModePercentage
}

// Validate checks if the request is valid for a percentage split
func (s *PercentageStrategy) Validate(req Request) error {
	return validate(ModePercentage, req)
}

// Allocate divides the total amount based on each member's percentage
func (s *PercentageStrategy) Allocate(rules currency.Rules, req Request) (*Result, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	splits := filterEmpty(req.Splits)
	result := &Result{
		Splits:       splits,
		SharedAmount: req.SharedAmount,
	}
	if len(splits) == 0 {
		return result, nil
	}

	// Force the last percentage so the set always sums to 100
	last := len(splits) - 1
	entered := decimal.Zero
	for _, sp := range splits[:last] {
		entered = entered.Add(sp.Percentage)
	}
	splits[last].Percentage = hundred.Sub(entered).Round(2)

	percentageTotal := decimal.Zero
	for i := range splits {
		percentageTotal = percentageTotal.Add(splits[i].Percentage)
		splits[i].AllocatedAmount = rules.Round(req.TotalAmount.Mul(splits[i].Percentage).Div(hundred))
	}

	if percentageTotal.Equal(hundred) {
		result.Adjustments = reconcile(rules, rules.Round(req.TotalAmount), splits)
	}

	return result, nil
}
