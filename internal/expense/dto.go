package expense

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/pipsplit/internal/currency"
	"github.com/fkhayef/pipsplit/internal/expense/split"
	"github.com/fkhayef/pipsplit/internal/settlement"
)

// AllocateRequest represents the request to preview an expense allocation
type AllocateRequest struct {
	CurrencyCode       string              `json:"currency_code,omitempty" example:"USD"`
	Mode               string              `json:"mode" example:"AMOUNT"`
	TotalAmount        decimal.Decimal     `json:"total_amount" swaggertype:"string" example:"100.00"`
	SharedAmount       decimal.Decimal     `json:"shared_amount" swaggertype:"string" example:"0"`
	ProportionalAmount decimal.Decimal     `json:"proportional_amount" swaggertype:"string" example:"20.00"`
	Splits             []*SplitParticipant `json:"splits"`

	// Optional: when set, the response lists what each member owes the payer
	PayerKey    string `json:"payer_key,omitempty"`
	CategoryKey string `json:"category_key,omitempty"`
}

// AllocationResponse represents the computed allocation
type AllocationResponse struct {
	CurrencyCode         string           `json:"currency_code"`
	Mode                 split.Mode       `json:"mode"`
	TotalAmount          string           `json:"total_amount"`
	SharedAmount         string           `json:"shared_amount"`
	SharedAmountAdjusted bool             `json:"shared_amount_adjusted"`
	Splits               []*SplitResponse `json:"splits"`
	Debts                []*DebtResponse  `json:"debts,omitempty"`
}

// SplitResponse represents one member's allocated amount
type SplitResponse struct {
	MemberKey       string `json:"member_key"`
	AssignedAmount  string `json:"assigned_amount"`
	Percentage      string `json:"percentage,omitempty"`
	AllocatedAmount string `json:"allocated_amount"`
}

// DebtResponse represents what a member owes the payer for this expense
type DebtResponse struct {
	OwedBy   string `json:"owed_by"`
	PaidBy   string `json:"paid_by"`
	Category string `json:"category,omitempty"`
	Amount   string `json:"amount"`
}

// toResponse converts an allocation result to its DTO
func toResponse(code string, rules currency.Rules, req *AllocateRequest, result *split.Result) *AllocationResponse {
	mode := split.Mode(req.Mode)
	resp := &AllocationResponse{
		CurrencyCode:         code,
		Mode:                 mode,
		TotalAmount:          rules.Format(req.TotalAmount),
		SharedAmount:         rules.Format(result.SharedAmount),
		SharedAmountAdjusted: result.SharedAmountAdjusted,
		Splits:               make([]*SplitResponse, len(result.Splits)),
	}

	for i, s := range result.Splits {
		sr := &SplitResponse{
			MemberKey:       s.MemberKey,
			AssignedAmount:  rules.Format(s.AssignedAmount),
			AllocatedAmount: rules.Format(s.AllocatedAmount),
		}
		if mode == split.ModePercentage {
			sr.Percentage = s.Percentage.StringFixed(2)
		}
		resp.Splits[i] = sr
	}

	if req.PayerKey != "" {
		for _, d := range ToDebtRecords(req.PayerKey, req.CategoryKey, result) {
			resp.Debts = append(resp.Debts, debtResponse(rules, d))
		}
	}

	return resp
}

func debtResponse(rules currency.Rules, d settlement.DebtRecord) *DebtResponse {
	return &DebtResponse{
		OwedBy:   d.OwedBy,
		PaidBy:   d.PaidBy,
		Category: d.Category,
		Amount:   rules.Format(d.Amount),
	}
}
