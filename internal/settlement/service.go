package settlement

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fkhayef/pipsplit/internal/currency"
	"github.com/fkhayef/pipsplit/pkg/middleware"
)

// Common errors
var (
	ErrMissingMember     = errors.New("member key is required")
	ErrSelfDebt          = errors.New("a member cannot owe themselves")
	ErrInvalidDebtAmount = errors.New("debt amount must be greater than zero")
	ErrSameMember        = errors.New("cannot compare a member with themselves")
	ErrFractionalAmount  = errors.New("debt amount is finer than the currency's smallest unit")
)

// Service validates settlement requests and runs them through the engine
type Service struct {
	currencies currency.Provider
}

// NewService creates a new settlement service
func NewService(currencies currency.Provider) *Service {
	return &Service{currencies: currencies}
}

// Summarize returns the member's net balance with every counterparty
func (s *Service) Summarize(ctx context.Context, req *SummaryRequest) ([]*NetBalanceResponse, string, error) {
	if req.MemberKey == "" {
		return nil, "", ErrMissingMember
	}
	code, rules, err := s.currencies.Resolve(req.CurrencyCode)
	if err != nil {
		return nil, "", err
	}
	debts, err := toRecords(rules, req.Debts)
	if err != nil {
		return nil, "", err
	}

	balances := SummarizeForMember(rules, req.MemberKey, debts)

	responses := make([]*NetBalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = &NetBalanceResponse{
			MemberKey: b.MemberKey,
			Amount:    rules.Format(b.Amount),
			Message:   balanceMessage(b, code, rules),
		}
	}

	middleware.GetLogger(ctx).Debug("summarized balances",
		zap.String("member", req.MemberKey),
		zap.Int("debts", len(debts)),
		zap.Int("counterparties", len(responses)),
	)

	return responses, code, nil
}

// Breakdown returns the per-category net between two members
func (s *Service) Breakdown(ctx context.Context, req *BreakdownRequest) ([]*CategoryBalanceResponse, string, error) {
	if req.MemberKey == "" || req.OtherMemberKey == "" {
		return nil, "", ErrMissingMember
	}
	if req.MemberKey == req.OtherMemberKey {
		return nil, "", ErrSameMember
	}
	code, rules, err := s.currencies.Resolve(req.CurrencyCode)
	if err != nil {
		return nil, "", err
	}
	debts, err := toRecords(rules, req.Debts)
	if err != nil {
		return nil, "", err
	}

	breakdown := CategoryBreakdown(rules, req.MemberKey, req.OtherMemberKey, debts)

	responses := make([]*CategoryBalanceResponse, len(breakdown))
	for i, c := range breakdown {
		responses[i] = c.ToResponse(rules)
	}

	middleware.GetLogger(ctx).Debug("category breakdown",
		zap.String("member", req.MemberKey),
		zap.String("other_member", req.OtherMemberKey),
		zap.Int("categories", len(responses)),
	)

	return responses, code, nil
}

// Plan computes the least-transfers settlement for every debt in the request
func (s *Service) Plan(ctx context.Context, req *PlanRequest) (*PlanResponse, error) {
	code, rules, err := s.currencies.Resolve(req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	debts, err := toRecords(rules, req.Debts)
	if err != nil {
		return nil, err
	}

	balances := MemberBalances(rules, debts)
	transfers := LeastTransfers(rules, debts)

	resp := &PlanResponse{
		CurrencyCode: code,
		Balances:     make([]*MemberBalanceResponse, len(balances)),
		Transfers:    make([]*TransferResponse, len(transfers)),
	}
	for i, b := range balances {
		resp.Balances[i] = b.ToResponse(rules)
	}
	for i, t := range transfers {
		resp.Transfers[i] = t.ToResponse(rules)
	}

	middleware.GetLogger(ctx).Debug("settlement plan",
		zap.Int("debts", len(debts)),
		zap.Int("members", len(balances)),
		zap.Int("transfers", len(transfers)),
	)

	return resp, nil
}

// toRecords validates request debts and converts them for the engine
func toRecords(rules currency.Rules, reqs []*DebtRequest) ([]DebtRecord, error) {
	records := make([]DebtRecord, 0, len(reqs))
	for i, d := range reqs {
		if d == nil {
			continue
		}
		switch {
		case d.OwedBy == "" || d.PaidBy == "":
			return nil, fmt.Errorf("debt %d: %w", i, ErrMissingMember)
		case d.OwedBy == d.PaidBy:
			return nil, fmt.Errorf("debt %d: %w", i, ErrSelfDebt)
		case !d.Amount.IsPositive():
			return nil, fmt.Errorf("debt %d: %w", i, ErrInvalidDebtAmount)
		case !rules.IsMultiple(d.Amount):
			return nil, fmt.Errorf("debt %d: %w", i, ErrFractionalAmount)
		}
		records = append(records, d.ToRecord())
	}
	return records, nil
}

func balanceMessage(b NetBalance, code string, rules currency.Rules) string {
	if b.Amount.IsPositive() {
		return fmt.Sprintf("You owe %s %s %s", b.MemberKey, code, rules.Format(b.Amount))
	}
	return fmt.Sprintf("%s owes you %s %s", b.MemberKey, code, rules.Format(b.Amount.Neg()))
}
