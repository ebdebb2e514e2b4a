package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/pipsplit/internal/currency"
)

// DebtRequest is one unpaid amount in a settlement request
type DebtRequest struct {
	OwedBy   string          `json:"owed_by"`
	PaidBy   string          `json:"paid_by"`
	Category string          `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"12.50"`
}

// SummaryRequest asks for a member's net position with every counterparty
type SummaryRequest struct {
	CurrencyCode string         `json:"currency_code,omitempty" example:"USD"`
	MemberKey    string         `json:"member_key"`
	Debts        []*DebtRequest `json:"debts"`
}

// BreakdownRequest asks for the per-category net between two members
type BreakdownRequest struct {
	CurrencyCode   string         `json:"currency_code,omitempty" example:"USD"`
	MemberKey      string         `json:"member_key"`
	OtherMemberKey string         `json:"other_member_key"`
	Debts          []*DebtRequest `json:"debts"`
}

// PlanRequest asks for the least-transfers settlement of a group
type PlanRequest struct {
	CurrencyCode string         `json:"currency_code,omitempty" example:"USD"`
	Debts        []*DebtRequest `json:"debts"`
}

// NetBalanceResponse represents the net balance with another member
type NetBalanceResponse struct {
	MemberKey string `json:"member_key"`
	Amount    string `json:"amount"`
	Message   string `json:"message"` // e.g., "You owe bob USD 50.00" or "bob owes you USD 30.00"
}

// CategoryBalanceResponse is the net of one category between two members
type CategoryBalanceResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// MemberBalanceResponse is a member's net position in the group
type MemberBalanceResponse struct {
	MemberKey string `json:"member_key"`
	Amount    string `json:"amount"`
}

// TransferResponse is one payment of a settlement plan
type TransferResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// PlanResponse is the least-transfers settlement for a group
type PlanResponse struct {
	CurrencyCode string                   `json:"currency_code"`
	Balances     []*MemberBalanceResponse `json:"balances"`
	Transfers    []*TransferResponse      `json:"transfers"`
}

// ToRecord converts a request item to the engine's input type
func (d *DebtRequest) ToRecord() DebtRecord {
	return DebtRecord{
		OwedBy:   d.OwedBy,
		PaidBy:   d.PaidBy,
		Category: d.Category,
		Amount:   d.Amount,
	}
}

// ToResponse converts a CategoryBalance to its DTO
func (c CategoryBalance) ToResponse(rules currency.Rules) *CategoryBalanceResponse {
	return &CategoryBalanceResponse{
		Category: c.Category,
		Amount:   rules.Format(c.Amount),
	}
}

// ToResponse converts a MemberBalance to its DTO
func (m MemberBalance) ToResponse(rules currency.Rules) *MemberBalanceResponse {
	return &MemberBalanceResponse{
		MemberKey: m.MemberKey,
		Amount:    rules.Format(m.Amount),
	}
}

// ToResponse converts a Transfer to its DTO
func (t Transfer) ToResponse(rules currency.Rules) *TransferResponse {
	return &TransferResponse{
		From:   t.From,
		To:     t.To,
		Amount: rules.Format(t.Amount),
	}
}
