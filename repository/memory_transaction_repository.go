package repository

import (
	"context"
	"expense-tracker/model"
	"sort"
	"sync"
)

// MemoryTransactionRepository keeps transactions in process memory.
type MemoryTransactionRepository struct {
	mu     sync.Mutex
	nextID int
	items  []model.Transaction
}

func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{nextID: 1}
}

func (r *MemoryTransactionRepository) Insert(ctx context.Context, transaction *model.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	transaction.ID = r.nextID
	r.nextID++
	r.items = append(r.items, *transaction)
	return nil
}

// ListAll returns copies of the stored rows, newest created_at first.
func (r *MemoryTransactionRepository) ListAll(ctx context.Context) ([]*model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	out := make([]*model.Transaction, 0, len(r.items))
	for i := range r.items {
		t := r.items[i]
		out = append(out, &t)
	}
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
