// file: model/request.go

package model

// TransactionForm holds the raw form fields of a new entry. The validate tags
// run in order and only the first failing rule of a field is reported.
type TransactionForm struct {
	Amount      string `json:"amount" form:"amount" validate:"digits,required"`
	Description string `json:"description" form:"description" validate:"required"`
	Type        string `json:"type" form:"type" validate:"oneof=income expense"`
}

// NewTransaction is a form that passed validation.
type NewTransaction struct {
	Amount      float64
	Description string
	Type        TransactionType
}

// CreateTransactionResponse is returned by the JSON API after a successful insert.
type CreateTransactionResponse struct {
	Transaction *Transaction          `json:"transaction"`
	Groups      []GroupedTransactions `json:"groups"`
}
