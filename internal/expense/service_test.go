package expense

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/pipsplit/internal/currency"
	"github.com/fkhayef/pipsplit/internal/expense/split"
)

func newTestService() *Service {
	return NewService(split.NewSplitStrategyFactory(), currency.NewISOProvider("USD", nil))
}

func participant(key, assigned string) *SplitParticipant {
	p := &SplitParticipant{MemberKey: key}
	if assigned != "" {
		p.AssignedAmount = decimal.RequireFromString(assigned)
	}
	return p
}

func TestServiceAllocateAmount(t *testing.T) {
	resp, err := newTestService().Allocate(context.Background(), &AllocateRequest{
		Mode:               "AMOUNT",
		TotalAmount:        decimal.RequireFromString("100"),
		ProportionalAmount: decimal.RequireFromString("20"),
		Splits: []*SplitParticipant{
			participant("a", "30"),
			participant("b", "30"),
			participant("c", "20"),
		},
		PayerKey:    "a",
		CategoryKey: "dinner",
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", resp.CurrencyCode)
	assert.Equal(t, "0.00", resp.SharedAmount)
	require.Len(t, resp.Splits, 3)
	assert.Equal(t, "37.50", resp.Splits[0].AllocatedAmount)
	assert.Equal(t, "25.00", resp.Splits[2].AllocatedAmount)
	assert.Empty(t, resp.Splits[0].Percentage)

	require.Len(t, resp.Debts, 2)
	assert.Equal(t, DebtResponse{OwedBy: "b", PaidBy: "a", Category: "dinner", Amount: "37.50"}, *resp.Debts[0])
	assert.Equal(t, DebtResponse{OwedBy: "c", PaidBy: "a", Category: "dinner", Amount: "25.00"}, *resp.Debts[1])
}

func TestServiceAllocatePercentageInYen(t *testing.T) {
	resp, err := newTestService().Allocate(context.Background(), &AllocateRequest{
		CurrencyCode: "jpy",
		Mode:         "PERCENTAGE",
		TotalAmount:  decimal.RequireFromString("1000"),
		Splits: []*SplitParticipant{
			{MemberKey: "a", Percentage: decimal.RequireFromString("33.33")},
			{MemberKey: "b", Percentage: decimal.RequireFromString("33.33")},
			{MemberKey: "c"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "JPY", resp.CurrencyCode)
	assert.Equal(t, "1000", resp.TotalAmount)
	got := []string{resp.Splits[0].AllocatedAmount, resp.Splits[1].AllocatedAmount, resp.Splits[2].AllocatedAmount}
	assert.Equal(t, []string{"334", "333", "333"}, got)
	assert.Equal(t, "33.34", resp.Splits[2].Percentage)
	assert.Nil(t, resp.Debts)
}

func TestServiceAllocateErrors(t *testing.T) {
	svc := newTestService()

	_, err := svc.Allocate(context.Background(), &AllocateRequest{Mode: "EXACT"})
	assert.ErrorIs(t, err, split.ErrUnknownMode)

	_, err = svc.Allocate(context.Background(), &AllocateRequest{Mode: "AMOUNT", CurrencyCode: "QQQQ"})
	assert.ErrorIs(t, err, currency.ErrUnknownCurrency)

	_, err = svc.Allocate(context.Background(), &AllocateRequest{
		Mode:   "AMOUNT",
		Splits: []*SplitParticipant{participant("a", ""), participant("a", "")},
	})
	assert.ErrorIs(t, err, split.ErrDuplicateMember)
}

func TestToDebtRecordsSkipsPayerAndZeroShares(t *testing.T) {
	result := &split.Result{Splits: []split.SplitOutput{
		{MemberKey: "payer", AllocatedAmount: decimal.NewFromInt(10)},
		{MemberKey: "x", AllocatedAmount: decimal.NewFromInt(5)},
		{MemberKey: "y", AllocatedAmount: decimal.Zero},
		{AllocatedAmount: decimal.NewFromInt(3)},
	}}

	records := ToDebtRecords("payer", "", result)

	require.Len(t, records, 1)
	assert.Equal(t, "x", records[0].OwedBy)
	assert.Equal(t, "payer", records[0].PaidBy)
	assert.True(t, records[0].Amount.Equal(decimal.NewFromInt(5)))
}
