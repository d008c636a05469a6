package usecase

import (
	"context"

	"bet-ledger/internal/domain"
)

// RecordStore persists the two append-only canonical collections. The
// usecase layer depends on this interface, not on a concrete implementation.
//
// Load methods treat a missing or corrupt store as empty and only fail on
// real I/O errors. Replace methods rewrite a whole collection and must not
// leave a partial file behind on failure.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go RecordStore
type RecordStore interface {
	LoadBets(ctx context.Context) ([]domain.Bet, error)
	ReplaceBets(ctx context.Context, bets []domain.Bet) error
	LoadTransactions(ctx context.Context) ([]domain.Transaction, error)
	ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error
}
