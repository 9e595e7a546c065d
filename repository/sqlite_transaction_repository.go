package repository

import (
	"context"
	"database/sql"
	"expense-tracker/logger"
	"expense-tracker/model"

	"github.com/sirupsen/logrus"
)

// SQLiteTransactionRepository implements ITransactionRepository on a local
// SQLite file. created_at is kept as the ISO text it was written with.
type SQLiteTransactionRepository struct {
	DB *sql.DB
}

func NewSQLiteTransactionRepository(db *sql.DB) *SQLiteTransactionRepository {
	return &SQLiteTransactionRepository{DB: db}
}

func (r *SQLiteTransactionRepository) Insert(ctx context.Context, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"amount":     transaction.Amount,
		"type":       transaction.Type,
		"created_at": transaction.CreatedAt,
		"backend":    "sqlite",
	})
	log.Info("Executing query to insert a new transaction")

	query := `INSERT INTO transactions (amount, description, type, created_at) VALUES (?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, transaction.Amount, transaction.Description, string(transaction.Type), transaction.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute insert transaction query")
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.WithError(err).Error("Failed to read inserted transaction id")
		return err
	}
	transaction.ID = int(id)
	return nil
}

func (r *SQLiteTransactionRepository) ListAll(ctx context.Context) ([]*model.Transaction, error) {
	log := logger.Log.WithField("backend", "sqlite")
	log.Info("Executing query to list all transactions")

	query := `SELECT id, amount, description, type, created_at FROM transactions ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for all transactions")
		return nil, err
	}
	defer rows.Close()

	transactions := []*model.Transaction{}
	for rows.Next() {
		var (
			t      model.Transaction
			txType string
		)
		if err := rows.Scan(&t.ID, &t.Amount, &t.Description, &txType, &t.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		t.Type = model.TransactionType(txType)
		transactions = append(transactions, &t)
	}
	return transactions, rows.Err()
}
