package service

import (
	"expense-tracker/common"
	"expense-tracker/model"
	"sort"
	"strconv"
	"strings"
)

// ValidationError maps a field name to its first violated rule.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid transaction: " + strings.Join(parts, "; ")
}

// ValidateTransactionForm checks the raw form and converts it. On failure the
// returned error is a *ValidationError.
func ValidateTransactionForm(form model.TransactionForm) (model.NewTransaction, error) {
	if fields := common.ValidateStruct(form); fields != nil {
		return model.NewTransaction{}, &ValidationError{Fields: fields}
	}

	amount, err := strconv.ParseFloat(form.Amount, 64)
	if err != nil || amount > model.MaxAmount {
		return model.NewTransaction{}, &ValidationError{Fields: map[string]string{"amount": "Amount is too large"}}
	}

	return model.NewTransaction{
		Amount:      amount,
		Description: form.Description,
		Type:        model.TransactionType(form.Type),
	}, nil
}
