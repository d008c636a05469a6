package domain

// TransactionType defines the direction of a money movement.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
)

// Valid reports whether t is one of the two supported directions.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdraw
}

// TransactionData carries the normalized payload of a deposit or withdrawal.
// Amount is always non-negative; direction is conveyed by Transaction.Type.
type TransactionData struct {
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Currency      string  `json:"currency"`
	Fee           float64 `json:"fee,omitempty"`
	Total         float64 `json:"total,omitempty"`
	TransactionID string  `json:"transactionId,omitempty"`
	Method        string  `json:"method,omitempty"`
	Note          string  `json:"note,omitempty"`
	CreatedAt     int64   `json:"createdAt"`   // epoch milliseconds
	CompletedAt   int64   `json:"completedAt"` // epoch milliseconds
}

// Transaction is the canonical, persisted form of an uploaded deposit or
// withdrawal. Records are append-only: created through ingestion, never
// mutated or deleted.
type Transaction struct {
	ID        string          `json:"id"`
	Type      TransactionType `json:"type"`
	Data      TransactionData `json:"data"`
	CreatedAt string          `json:"created_at"` // ISO-8601, chronological anchor
	UpdatedAt string          `json:"updated_at"`
}

// Key returns the dedup identity of the transaction.
func (t Transaction) Key() string { return t.ID }
