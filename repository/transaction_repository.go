package repository

import (
	"context"
	"database/sql"
	"expense-tracker/logger"
	"expense-tracker/model"
	"time"

	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for the transaction store.
// Rows are never updated or deleted through it.
type ITransactionRepository interface {
	ListAll(ctx context.Context) ([]*model.Transaction, error)
	Insert(ctx context.Context, transaction *model.Transaction) error
}

// TransactionRepository implements ITransactionRepository on PostgreSQL.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// Insert stores one row and fills in the store-assigned ID.
func (r *TransactionRepository) Insert(ctx context.Context, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"amount":     transaction.Amount,
		"type":       transaction.Type,
		"created_at": transaction.CreatedAt,
	})
	log.Info("Executing query to insert a new transaction")

	query := `INSERT INTO transactions (amount, description, type, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.DB.QueryRowContext(ctx, query, transaction.Amount, transaction.Description, string(transaction.Type), transaction.CreatedAt).Scan(&transaction.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute insert transaction query")
		return err
	}
	return nil
}

// ListAll retrieves every transaction, newest first.
func (r *TransactionRepository) ListAll(ctx context.Context) ([]*model.Transaction, error) {
	log := logger.Log
	log.Info("Executing query to list all transactions")

	query := `
		SELECT id, amount, description, type, created_at
		FROM transactions
		ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for all transactions")
		return nil, err
	}
	defer rows.Close()

	transactions := []*model.Transaction{}
	for rows.Next() {
		var (
			t         model.Transaction
			txType    string
			createdAt time.Time
		)
		if err := rows.Scan(&t.ID, &t.Amount, &t.Description, &txType, &createdAt); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		t.Type = model.TransactionType(txType)
		t.CreatedAt = createdAt.UTC().Format(model.TimeLayout)
		transactions = append(transactions, &t)
	}
	if err := rows.Err(); err != nil {
		log.WithError(err).Error("Failed while iterating transaction rows")
		return nil, err
	}

	return transactions, nil
}
