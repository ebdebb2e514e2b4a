package split

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/pipsplit/internal/currency"
)

// =============================================================================
// AMOUNT SPLIT STRATEGY
// Personal amounts, plus an evenly shared pool, plus a proportional surcharge
// (tax/tip) distributed by each member's personal + shared base
// =============================================================================

// AmountStrategy implements the Strategy interface for amount-based splits
type AmountStrategy struct{}

// Mode returns the split mode identifier
func (s *AmountStrategy) Mode() Mode {
	return ModeAmount
}

// Validate checks if the request is valid for an amount split
func (s *AmountStrategy) Validate(req Request) error {
	return validate(ModeAmount, req)
}

// Allocate divides the total among the non-empty splits. The shared amount is
// recomputed when it does not reconcile with the total, proportional and
// assigned amounts; the effective value is reported on the result.
func (s *AmountStrategy) Allocate(rules currency.Rules, req Request) (*Result, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	splits := filterEmpty(req.Splits)
	total := req.TotalAmount
	proportional := req.ProportionalAmount

	if len(splits) == 0 {
		shared := rules.Round(total.Sub(proportional))
		return &Result{
			Splits:               splits,
			SharedAmount:         shared,
			SharedAmountAdjusted: !shared.Equal(req.SharedAmount),
		}, nil
	}

	splitTotal := decimal.Zero
	for _, sp := range splits {
		splitTotal = splitTotal.Add(sp.AssignedAmount)
	}

	shared := req.SharedAmount
	adjusted := false
	if !rules.Round(total).Equal(rules.Round(shared.Add(proportional).Add(splitTotal))) {
		shared = rules.Round(total.Sub(splitTotal).Sub(proportional))
		adjusted = true
	}

	// Evenly shared pool
	n := decimal.NewFromInt(int64(len(splits)))
	share := rules.Round(shared.Div(n))
	for i := range splits {
		splits[i].AllocatedAmount = share
	}

	// Proportional pool, weighted by personal + shared base. With nothing
	// but surcharge in the total there is no base to weigh against, so the
	// shares stay as they are and reconciliation spreads the rest.
	if base := total.Sub(proportional); !base.IsZero() {
		for i := range splits {
			memberBase := splits[i].AssignedAmount.Add(splits[i].AllocatedAmount)
			surcharge := memberBase.Mul(proportional).Div(base)
			splits[i].AllocatedAmount = rules.Round(memberBase.Add(surcharge))
		}
	}

	steps := reconcile(rules, rules.Round(total), splits)

	return &Result{
		Splits:               splits,
		SharedAmount:         shared,
		SharedAmountAdjusted: adjusted,
		Adjustments:          steps,
	}, nil
}
