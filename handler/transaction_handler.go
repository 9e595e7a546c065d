package handler

import (
	"encoding/json"
	"errors"
	"expense-tracker/common"
	"expense-tracker/logger"
	"expense-tracker/model"
	"expense-tracker/service"
	"net/http"
)

// TransactionHandler holds dependencies for the JSON transaction endpoints.
type TransactionHandler struct {
	service *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// ListTransactions godoc
// @Summary      List transactions grouped by day
// @Description  Fetches every transaction and groups them by the date part of created_at, with income and expense totals per day.
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   model.GroupedTransactions
// @Failure      500  {object}  common.AppError "Internal server error while retrieving transactions"
// @Router       /api/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	groups, err := h.service.ListGrouped(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(groups)
	return nil
}

// CreateTransaction godoc
// @Summary      Record an income or expense
// @Description  Validates the entry, stores it stamped with the current time and returns it together with the re-fetched grouped history. The amount is a string of decimal digits.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction body model.TransactionForm true "The new entry"
// @Success      201  {object}  model.CreateTransactionResponse
// @Failure      400  {object}  common.AppError "Invalid body or validation errors per field"
// @Failure      500  {object}  common.AppError "Internal server error while saving the transaction"
// @Router       /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	var form model.TransactionForm
	if err := common.DecodeJSON(r, &form); err != nil {
		return err
	}

	groups, transaction, err := h.service.Submit(r.Context(), form)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return common.NewValidationError(vErr.Fields)
		case transaction == nil:
			return common.NewAppError(http.StatusInternalServerError, "Could not save transaction", err)
		default:
			// Saved, but the history could not be re-fetched.
			logger.Log.WithError(err).WithField("transaction_id", transaction.ID).Error("Failed to re-fetch transactions after insert")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(model.CreateTransactionResponse{Transaction: transaction, Groups: groups})
	return nil
}
