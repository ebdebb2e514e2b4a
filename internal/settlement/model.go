package settlement

import "github.com/shopspring/decimal"

// DebtRecord states that OwedBy owes PaidBy Amount, booked under Category
type DebtRecord struct {
	OwedBy   string          `json:"owed_by"`
	PaidBy   string          `json:"paid_by"`
	Category string          `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// NetBalance represents the net amount between a member and one counterparty
type NetBalance struct {
	MemberKey string          `json:"member_key"` // the counterparty
	Amount    decimal.Decimal `json:"amount"`     // Positive = you owe them, Negative = they owe you
}

// CategoryBalance is the net amount between two members within one category
type CategoryBalance struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"` // Positive = first member owes second
}

// MemberBalance is a member's net position across the whole group
type MemberBalance struct {
	MemberKey string          `json:"member_key"`
	Amount    decimal.Decimal `json:"amount"` // Positive = owed to them, Negative = they owe
}

// Transfer is a single payment in a settlement plan
type Transfer struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}
