package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/pipsplit/internal/currency"
)

// Mode defines how an expense total is divided among members
type Mode string

const (
	ModeAmount     Mode = "AMOUNT"
	ModePercentage Mode = "PERCENTAGE"
)

// SplitInput represents one member's share of an allocation
type SplitInput struct {
	MemberKey      string          `json:"member_key"`
	AssignedAmount decimal.Decimal `json:"assigned_amount"` // personally owed, AMOUNT mode
	Percentage     decimal.Decimal `json:"percentage"`      // PERCENTAGE mode only
}

// IsEmpty reports whether the split carries neither a member nor an amount
func (s SplitInput) IsEmpty() bool {
	return s.MemberKey == "" && s.AssignedAmount.IsZero()
}

// SplitOutput is a SplitInput with its computed allocation
type SplitOutput struct {
	MemberKey       string          `json:"member_key"`
	AssignedAmount  decimal.Decimal `json:"assigned_amount"`
	Percentage      decimal.Decimal `json:"percentage"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
}

// Request is the input of a single allocation
type Request struct {
	Mode               Mode
	TotalAmount        decimal.Decimal
	SharedAmount       decimal.Decimal // split evenly, AMOUNT mode
	ProportionalAmount decimal.Decimal // tax/tip distributed by base amount
	Splits             []SplitInput
}

// Result holds the allocated splits and the effective shared amount
type Result struct {
	Splits               []SplitOutput
	SharedAmount         decimal.Decimal
	SharedAmountAdjusted bool
	Adjustments          int64 // smallest increments moved during reconciliation
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Allocate computes every member's share of the request total
	Allocate(rules currency.Rules, req Request) (*Result, error)

	// Mode returns the mode this strategy serves
	Mode() Mode

	// Validate checks the structural validity of the request
	Validate(req Request) error
}

// Factory creates split strategies based on the requested mode
type Factory struct{}

// NewSplitStrategyFactory creates a new factory instance
func NewSplitStrategyFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the mode
func (f *Factory) Create(mode Mode) (Strategy, error) {
	switch mode {
	case ModeAmount:
		return &AmountStrategy{}, nil
	case ModePercentage:
		return &PercentageStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// CreateFromString creates a strategy from a string mode (useful for API requests)
func (f *Factory) CreateFromString(mode string) (Strategy, error) {
	return f.Create(Mode(mode))
}

var (
	ErrUnknownMode     = errors.New("unknown split mode")
	ErrModeMismatch    = errors.New("request mode does not match strategy")
	ErrDuplicateMember = errors.New("member appears in more than one split")
)

// validate holds the checks shared by every strategy
func validate(mode Mode, req Request) error {
	if req.Mode != mode {
		return fmt.Errorf("%w: got %q, want %q", ErrModeMismatch, req.Mode, mode)
	}

	seen := make(map[string]struct{}, len(req.Splits))
	for _, s := range req.Splits {
		if s.MemberKey == "" {
			continue
		}
		if _, ok := seen[s.MemberKey]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateMember, s.MemberKey)
		}
		seen[s.MemberKey] = struct{}{}
	}
	return nil
}

// filterEmpty drops splits with no member and no assigned amount
func filterEmpty(splits []SplitInput) []SplitOutput {
	filtered := make([]SplitOutput, 0, len(splits))
	for _, s := range splits {
		if s.IsEmpty() {
			continue
		}
		filtered = append(filtered, SplitOutput{
			MemberKey:      s.MemberKey,
			AssignedAmount: s.AssignedAmount,
			Percentage:     s.Percentage,
		})
	}
	return filtered
}

// reconcile pushes the rounding residual between target and the allocated
// sum back into the splits, one smallest increment at a time in order
func reconcile(rules currency.Rules, target decimal.Decimal, splits []SplitOutput) int64 {
	amounts := make([]decimal.Decimal, len(splits))
	allocated := decimal.Zero
	for i, s := range splits {
		amounts[i] = s.AllocatedAmount
		allocated = allocated.Add(s.AllocatedAmount)
	}

	residual := target.Sub(allocated)
	if residual.IsZero() {
		return 0
	}

	adjusted, steps := rules.Spread(amounts, residual)
	for i := range splits {
		splits[i].AllocatedAmount = adjusted[i]
	}
	return steps
}
