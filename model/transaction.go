package model

// TransactionType is either income or expense.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is a stored income or expense entry. CreatedAt is an ISO-8601
// string as written by the client at insert time.
type Transaction struct {
	ID          int             `json:"id"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	CreatedAt   string          `json:"created_at"`
}

// GroupedTransactions is the per-day summary shown in the history view.
// It is derived from a fetch and never persisted.
type GroupedTransactions struct {
	Date         string         `json:"date"`
	TotalIncome  float64        `json:"totalIncome"`
	TotalExpense float64        `json:"totalExpense"`
	Transactions []*Transaction `json:"transactions"`
}

// Net is income minus expense for the day.
func (g GroupedTransactions) Net() float64 {
	return g.TotalIncome - g.TotalExpense
}

// MaxAmount is the largest accepted amount. It fits the NUMERIC(18,2) column
// and is exactly representable as a float64.
const MaxAmount = 999_999_999_999_999

// TimeLayout is the ISO-8601 form used for CreatedAt: UTC, millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"
