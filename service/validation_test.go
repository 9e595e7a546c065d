package service

import (
	"errors"
	"expense-tracker/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransactionForm(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ValidateTransactionForm(model.TransactionForm{Amount: "125000", Description: "groceries", Type: "expense"})

		require.NoError(t, err)
		assert.Equal(t, model.NewTransaction{Amount: 125000, Description: "groceries", Type: model.TypeExpense}, got)
	})

	t.Run("zero is accepted", func(t *testing.T) {
		got, err := ValidateTransactionForm(model.TransactionForm{Amount: "0", Description: "free sample", Type: "income"})

		require.NoError(t, err)
		assert.Equal(t, 0.0, got.Amount)
	})

	t.Run("largest amount is accepted", func(t *testing.T) {
		got, err := ValidateTransactionForm(model.TransactionForm{Amount: "999999999999999", Description: "x", Type: "income"})

		require.NoError(t, err)
		assert.Equal(t, float64(model.MaxAmount), got.Amount)
	})

	cases := []struct {
		name   string
		form   model.TransactionForm
		fields map[string]string
	}{
		{
			name:   "decimal amount",
			form:   model.TransactionForm{Amount: "12.5", Description: "x", Type: "income"},
			fields: map[string]string{"amount": "Amount must be a valid number"},
		},
		{
			name:   "negative amount",
			form:   model.TransactionForm{Amount: "-10", Description: "x", Type: "income"},
			fields: map[string]string{"amount": "Amount must be a valid number"},
		},
		{
			name:   "non numeric amount",
			form:   model.TransactionForm{Amount: "ten", Description: "x", Type: "expense"},
			fields: map[string]string{"amount": "Amount must be a valid number"},
		},
		{
			name:   "empty amount reports the pattern rule first",
			form:   model.TransactionForm{Amount: "", Description: "x", Type: "expense"},
			fields: map[string]string{"amount": "Amount must be a valid number"},
		},
		{
			name:   "empty description",
			form:   model.TransactionForm{Amount: "10", Description: "", Type: "expense"},
			fields: map[string]string{"description": "Description is required"},
		},
		{
			name:   "unknown type",
			form:   model.TransactionForm{Amount: "10", Description: "x", Type: "transfer"},
			fields: map[string]string{"type": "Type must be either income or expense"},
		},
		{
			name: "everything wrong",
			form: model.TransactionForm{},
			fields: map[string]string{
				"amount":      "Amount must be a valid number",
				"description": "Description is required",
				"type":        "Type must be either income or expense",
			},
		},
		{
			name:   "one above the largest amount",
			form:   model.TransactionForm{Amount: "1000000000000000", Description: "x", Type: "income"},
			fields: map[string]string{"amount": "Amount is too large"},
		},
		{
			name:   "amount beyond int64",
			form:   model.TransactionForm{Amount: "100000000000000000000", Description: "x", Type: "income"},
			fields: map[string]string{"amount": "Amount is too large"},
		},
		{
			name:   "amount overflows",
			form:   model.TransactionForm{Amount: strings.Repeat("9", 400), Description: "x", Type: "income"},
			fields: map[string]string{"amount": "Amount is too large"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateTransactionForm(tc.form)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected a *ValidationError, got %v", err)
			assert.Equal(t, tc.fields, vErr.Fields)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"type": "bad type", "amount": "bad amount"}}
	assert.Equal(t, "invalid transaction: amount: bad amount; type: bad type", err.Error())
}

