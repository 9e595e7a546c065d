package service

import (
	"context"
	"expense-tracker/logger"
	"expense-tracker/model"
	"expense-tracker/repository"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// TransactionService records transactions and builds the grouped history.
// The history is recomputed from a full fetch on every call.
type TransactionService struct {
	repo repository.ITransactionRepository
	now  func() time.Time
}

func NewTransactionService(repo repository.ITransactionRepository) *TransactionService {
	return &TransactionService{repo: repo, now: time.Now}
}

// WithClock replaces the clock used to stamp created_at.
func (s *TransactionService) WithClock(now func() time.Time) *TransactionService {
	s.now = now
	return s
}

// ListGrouped fetches every transaction and groups them by day.
func (s *TransactionService) ListGrouped(ctx context.Context) ([]model.GroupedTransactions, error) {
	transactions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions: %w", err)
	}
	return GroupTransactions(transactions), nil
}

// AddTransaction validates the form and inserts one row stamped with the
// current UTC time. Invalid forms never reach the store.
func (s *TransactionService) AddTransaction(ctx context.Context, form model.TransactionForm) (*model.Transaction, error) {
	valid, err := ValidateTransactionForm(form)
	if err != nil {
		return nil, err
	}

	transaction := &model.Transaction{
		Amount:      valid.Amount,
		Description: valid.Description,
		Type:        valid.Type,
		CreatedAt:   s.now().UTC().Format(model.TimeLayout),
	}

	if err := s.repo.Insert(ctx, transaction); err != nil {
		return nil, fmt.Errorf("could not save transaction: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"transaction_id": transaction.ID,
		"type":           transaction.Type,
		"amount":         transaction.Amount,
	}).Info("Transaction recorded")

	return transaction, nil
}

// Submit adds a transaction and then re-fetches the full history. When the
// insert succeeds but the re-fetch fails, the inserted transaction is still
// returned together with the error.
func (s *TransactionService) Submit(ctx context.Context, form model.TransactionForm) ([]model.GroupedTransactions, *model.Transaction, error) {
	transaction, err := s.AddTransaction(ctx, form)
	if err != nil {
		return nil, nil, err
	}

	groups, err := s.ListGrouped(ctx)
	if err != nil {
		return nil, transaction, err
	}
	return groups, transaction, nil
}
