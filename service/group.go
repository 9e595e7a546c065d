package service

import (
	"expense-tracker/model"
	"strings"
)

// dateKey is the part of an ISO timestamp before the first "T", or the whole
// string when there is no "T". No timezone conversion is applied.
func dateKey(createdAt string) string {
	if i := strings.IndexByte(createdAt, 'T'); i >= 0 {
		return createdAt[:i]
	}
	return createdAt
}

// GroupTransactions groups transactions by calendar date in a single pass.
// Groups come out in the order their date is first seen and each group keeps
// its transactions in input order.
func GroupTransactions(transactions []*model.Transaction) []model.GroupedTransactions {
	groups := []model.GroupedTransactions{}
	index := make(map[string]int)

	for _, tx := range transactions {
		date := dateKey(tx.CreatedAt)

		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, model.GroupedTransactions{Date: date, Transactions: []*model.Transaction{}})
		}

		g := &groups[i]
		g.Transactions = append(g.Transactions, tx)
		if tx.Type == model.TypeIncome {
			g.TotalIncome += tx.Amount
		} else {
			g.TotalExpense += tx.Amount
		}
	}

	return groups
}
