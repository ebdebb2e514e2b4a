package settlement

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/pipsplit/internal/currency"
)

// SummarizeForMember nets every debt between memberKey and each counterparty.
// Fully netted counterparties are omitted. Results are ordered by absolute
// amount, largest first.
func SummarizeForMember(rules currency.Rules, memberKey string, debts []DebtRecord) []NetBalance {
	net := make(map[string]decimal.Decimal)
	for _, debt := range debts {
		if debt.OwedBy == debt.PaidBy {
			continue
		}
		switch memberKey {
		case debt.OwedBy:
			net[debt.PaidBy] = net[debt.PaidBy].Add(debt.Amount)
		case debt.PaidBy:
			net[debt.OwedBy] = net[debt.OwedBy].Sub(debt.Amount)
		}
	}

	balances := make([]NetBalance, 0, len(net))
	for counterparty, amount := range net {
		amount = rules.Round(amount)
		if amount.IsZero() {
			continue
		}
		balances = append(balances, NetBalance{MemberKey: counterparty, Amount: amount})
	}

	sort.Slice(balances, func(i, j int) bool {
		ai, aj := balances[i].Amount.Abs(), balances[j].Amount.Abs()
		if !ai.Equal(aj) {
			return ai.GreaterThan(aj)
		}
		return balances[i].MemberKey < balances[j].MemberKey
	})

	return balances
}

// CategoryBreakdown nets the debts between memberA and memberB per category,
// in the order categories first appear. Categories that net to zero are
// omitted.
func CategoryBreakdown(rules currency.Rules, memberA, memberB string, debts []DebtRecord) []CategoryBalance {
	var order []string
	totals := make(map[string]decimal.Decimal)

	for _, debt := range debts {
		var amount decimal.Decimal
		switch {
		case debt.OwedBy == memberA && debt.PaidBy == memberB:
			amount = debt.Amount
		case debt.OwedBy == memberB && debt.PaidBy == memberA:
			amount = debt.Amount.Neg()
		default:
			continue
		}
		if _, seen := totals[debt.Category]; !seen {
			order = append(order, debt.Category)
		}
		totals[debt.Category] = totals[debt.Category].Add(amount)
	}

	breakdown := make([]CategoryBalance, 0, len(order))
	for _, category := range order {
		amount := rules.Round(totals[category])
		if amount.IsZero() {
			continue
		}
		breakdown = append(breakdown, CategoryBalance{Category: category, Amount: amount})
	}
	return breakdown
}

// MemberBalances computes each member's net position: what others owe them
// minus what they owe others, rounded to the currency. Any residual left by
// rounding individual balances is spread across creditors so that the
// balances always sum to zero. A creditor is never taken below zero.
// Members are ordered by key.
func MemberBalances(rules currency.Rules, debts []DebtRecord) []MemberBalance {
	raw := make(map[string]decimal.Decimal)
	for _, debt := range debts {
		if debt.OwedBy == debt.PaidBy {
			continue
		}
		raw[debt.OwedBy] = raw[debt.OwedBy].Sub(debt.Amount)
		raw[debt.PaidBy] = raw[debt.PaidBy].Add(debt.Amount)
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	balances := make([]MemberBalance, len(keys))
	sum := decimal.Zero
	for i, key := range keys {
		balances[i] = MemberBalance{MemberKey: key, Amount: rules.Round(raw[key])}
		sum = sum.Add(balances[i].Amount)
	}

	if !sum.IsZero() {
		var creditors []int
		for i, key := range keys {
			if raw[key].IsPositive() {
				creditors = append(creditors, i)
			}
		}
		sort.SliceStable(creditors, func(a, b int) bool {
			return raw[keys[creditors[a]]].GreaterThan(raw[keys[creditors[b]]])
		})

		if sum.IsNegative() {
			amounts := make([]decimal.Decimal, len(creditors))
			for i, idx := range creditors {
				amounts[i] = balances[idx].Amount
			}
			adjusted, _ := rules.Spread(amounts, sum.Neg())
			for i, idx := range creditors {
				balances[idx].Amount = adjusted[i]
			}
		} else {
			drain(rules, balances, creditors, sum)
		}
	}

	return balances
}

// drain takes excess away from creditors one smallest increment at a time,
// cycling in order and skipping any creditor already at zero. The rounded
// credits always cover the excess, since the debits sum to no more than zero.
func drain(rules currency.Rules, balances []MemberBalance, creditors []int, excess decimal.Decimal) {
	increment := rules.SmallestIncrement()
	steps := excess.Div(increment).IntPart()
	for steps > 0 {
		moved := false
		for _, idx := range creditors {
			if steps == 0 {
				break
			}
			if !balances[idx].Amount.IsPositive() {
				continue
			}
			balances[idx].Amount = balances[idx].Amount.Sub(increment)
			steps--
			moved = true
		}
		if !moved {
			return
		}
	}
}

// LeastTransfers reduces the group's debts to a short list of payments.
// The largest remaining debtor always pays the largest remaining creditor
// the smaller of the two balances, so every step settles at least one member.
func LeastTransfers(rules currency.Rules, debts []DebtRecord) []Transfer {
	var debtors, creditors []*MemberBalance
	for _, b := range MemberBalances(rules, debts) {
		switch {
		case b.Amount.IsNegative():
			b.Amount = b.Amount.Neg()
			debtors = append(debtors, &b)
		case b.Amount.IsPositive():
			creditors = append(creditors, &b)
		}
	}

	var transfers []Transfer
	for len(debtors) > 0 && len(creditors) > 0 {
		di := largest(debtors)
		ci := largest(creditors)
		debtor, creditor := debtors[di], creditors[ci]

		amount := decimal.Min(debtor.Amount, creditor.Amount)
		transfers = append(transfers, Transfer{
			From:   debtor.MemberKey,
			To:     creditor.MemberKey,
			Amount: amount,
		})

		debtor.Amount = debtor.Amount.Sub(amount)
		creditor.Amount = creditor.Amount.Sub(amount)

		if debtor.Amount.IsZero() {
			debtors = append(debtors[:di], debtors[di+1:]...)
		}
		if creditor.Amount.IsZero() {
			creditors = append(creditors[:ci], creditors[ci+1:]...)
		}
	}

	return transfers
}

// largest returns the index of the biggest balance, ties going to the lower key
func largest(balances []*MemberBalance) int {
	best := 0
	for i := 1; i < len(balances); i++ {
		cmp := balances[i].Amount.Cmp(balances[best].Amount)
		if cmp > 0 || (cmp == 0 && balances[i].MemberKey < balances[best].MemberKey) {
			best = i
		}
	}
	return best
}
