package repository

import (
	"context"
	"expense-tracker/model"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTransactionRepository(t *testing.T) {
	repo := NewMemoryTransactionRepository()
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		transactions, err := repo.ListAll(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, transactions)
		assert.Empty(t, transactions)
	})

	t.Run("newest first with sequential ids", func(t *testing.T) {
		older := &model.Transaction{Amount: 1, Description: "a", Type: model.TypeIncome, CreatedAt: "2024-01-01T10:00:00.000Z"}
		newer := &model.Transaction{Amount: 2, Description: "b", Type: model.TypeExpense, CreatedAt: "2024-01-02T10:00:00.000Z"}
		require.NoError(t, repo.Insert(ctx, newer))
		require.NoError(t, repo.Insert(ctx, older))

		assert.Equal(t, 1, newer.ID)
		assert.Equal(t, 2, older.ID)

		transactions, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, "b", transactions[0].Description)
		assert.Equal(t, "a", transactions[1].Description)

		// Returned rows are copies.
		transactions[0].Description = "changed"
		again, _ := repo.ListAll(ctx)
		assert.Equal(t, "b", again[0].Description)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, repo.Insert(cancelled, &model.Transaction{}), context.Canceled)
		_, err := repo.ListAll(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryTransactionRepository_ConcurrentInserts(t *testing.T) {
	repo := NewMemoryTransactionRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Insert(ctx, &model.Transaction{Amount: 1, Description: "x", Type: model.TypeExpense, CreatedAt: "2024-01-01T10:00:00.000Z"})
		}()
	}
	wg.Wait()

	transactions, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, 50)

	seen := map[int]bool{}
	for _, tr := range transactions {
		seen[tr.ID] = true
	}
	assert.Len(t, seen, 50)
}
