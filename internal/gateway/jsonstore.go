package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"bet-ledger/internal/domain"
)

// JSONFileStore implements the RecordStore interface on two JSON files, one
// per collection, compatible with the exports' own storage layout. Each
// collection is a single serialized sequence of canonical records: no schema
// version field, no index files.
type JSONFileStore struct {
	betsPath         string
	transactionsPath string
	log              zerolog.Logger
}

// NewJSONFileStore creates a store rooted at dir, creating dir if needed.
func NewJSONFileStore(dir string, log zerolog.Logger) (*JSONFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %s: %w", dir, err)
	}
	return &JSONFileStore{
		betsPath:         filepath.Join(dir, "bets.json"),
		transactionsPath: filepath.Join(dir, "transactions.json"),
		log:              log.With().Str("component", "store").Logger(),
	}, nil
}

// LoadBets reads the full bet collection. A missing or corrupt file reads as
// an empty collection.
func (s *JSONFileStore) LoadBets(_ context.Context) ([]domain.Bet, error) {
	return load[domain.Bet](s, s.betsPath)
}

// ReplaceBets rewrites the full bet collection.
func (s *JSONFileStore) ReplaceBets(_ context.Context, bets []domain.Bet) error {
	return s.save(s.betsPath, bets)
}

// LoadTransactions reads the full transaction collection. A missing or
// corrupt file reads as an empty collection.
func (s *JSONFileStore) LoadTransactions(_ context.Context) ([]domain.Transaction, error) {
	return load[domain.Transaction](s, s.transactionsPath)
}

// ReplaceTransactions rewrites the full transaction collection.
func (s *JSONFileStore) ReplaceTransactions(_ context.Context, transactions []domain.Transaction) error {
	return s.save(s.transactionsPath, transactions)
}

func load[R any](s *JSONFileStore, path string) ([]R, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []R{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	var records []R
	if err := json.Unmarshal(content, &records); err != nil {
		// Corruption is swallowed: the read path must never crash on a bad
		// store file.
		s.log.Error().Str("path", path).Err(err).Msg("Store file is corrupt, treating as empty")
		return []R{}, nil
	}
	if records == nil {
		records = []R{}
	}
	return records, nil
}

// save writes the whole collection through a temp file and rename so a
// failed write never leaves a partial store behind.
func (s *JSONFileStore) save(path string, records any) error {
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not replace %s: %w", path, err)
	}
	return nil
}
