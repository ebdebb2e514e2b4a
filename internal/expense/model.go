package expense

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/pipsplit/internal/expense/split"
	"github.com/fkhayef/pipsplit/internal/settlement"
)

// SplitParticipant is one member's line in an allocation request
type SplitParticipant struct {
	MemberKey      string          `json:"member_key"`
	AssignedAmount decimal.Decimal `json:"assigned_amount" swaggertype:"string" example:"12.50"`
	Percentage     decimal.Decimal `json:"percentage" swaggertype:"string" example:"50"`
}

// ToSplitInput converts to the split package's input type
func (p *SplitParticipant) ToSplitInput() split.SplitInput {
	return split.SplitInput{
		MemberKey:      p.MemberKey,
		AssignedAmount: p.AssignedAmount,
		Percentage:     p.Percentage,
	}
}

// ToDebtRecords turns an allocation into what each member owes the payer.
// The payer does not owe themselves, and members with nothing allocated
// are skipped.
func ToDebtRecords(payerKey, categoryKey string, result *split.Result) []settlement.DebtRecord {
	records := make([]settlement.DebtRecord, 0, len(result.Splits))
	for _, s := range result.Splits {
		if s.MemberKey == "" || s.MemberKey == payerKey || !s.AllocatedAmount.IsPositive() {
			continue
		}
		records = append(records, settlement.DebtRecord{
			OwedBy:   s.MemberKey,
			PaidBy:   payerKey,
			Category: categoryKey,
			Amount:   s.AllocatedAmount,
		})
	}
	return records
}
