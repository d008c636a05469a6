package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"bet-ledger/internal/domain"
	"bet-ledger/internal/normalize"
)

var (
	// ErrNoFiles is returned when an upload batch contains no files.
	ErrNoFiles = errors.New("no files uploaded")

	// ErrInvalidTransactionType is returned when the declared type is missing
	// or not one of deposit/withdraw.
	ErrInvalidTransactionType = errors.New(`invalid transaction type: specify "deposit" or "withdraw"`)
)

// BatchError reports that every file in an upload batch was invalid.
// Nothing is persisted in that case.
type BatchError struct {
	InvalidFiles []domain.FileError
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("all %d uploaded files were invalid", len(e.InvalidFiles))
}

// UploadFile is the raw content of one uploaded file. It exists only for the
// duration of a single ingestion call.
type UploadFile struct {
	Name    string
	Content []byte
}

// IngestService normalizes upload batches into the canonical store.
//
// Each batch is a read-modify-write of a whole collection; the per-collection
// mutex keeps concurrent batches (and aggregation reads through the same
// process) from interleaving with it.
type IngestService struct {
	store RecordStore
	log   zerolog.Logger

	betsMu sync.Mutex
	txMu   sync.Mutex
}

// NewIngestService creates the ingestion usecase.
func NewIngestService(store RecordStore, log zerolog.Logger) *IngestService {
	return &IngestService{
		store: store,
		log:   log.With().Str("component", "ingest").Logger(),
	}
}

// IngestBets normalizes one or more bet export files (JSON, single object or
// array) and merges them into the bet store. Per-file failures are recovered
// and reported; per-record failures are counted as skipped.
func (s *IngestService) IngestBets(ctx context.Context, files []UploadFile) (*domain.IngestReport, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	var incoming []domain.Bet
	var invalid []domain.FileError
	skipped := 0

	for _, file := range files {
		bets, fileSkipped, err := normalize.BetsFromJSON(file.Content)
		if err != nil {
			s.log.Warn().Str("file", file.Name).Err(err).Msg("Skipping invalid bet file")
			invalid = append(invalid, domain.FileError{Name: file.Name, Error: err.Error()})
			continue
		}
		skipped += fileSkipped
		incoming = append(incoming, bets...)
	}

	if len(invalid) == len(files) {
		return nil, &BatchError{InvalidFiles: invalid}
	}

	s.betsMu.Lock()
	defer s.betsMu.Unlock()

	existing, err := s.store.LoadBets(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load bet store: %w", err)
	}

	merged, added, duplicates := Merge(existing, incoming)

	if err := s.store.ReplaceBets(ctx, merged); err != nil {
		return nil, fmt.Errorf("could not save bet store: %w", err)
	}

	s.log.Info().
		Int("added", added).
		Int("skipped", skipped).
		Int("duplicates", duplicates).
		Int("total", len(merged)).
		Msg("Bet batch ingested")

	return &domain.IngestReport{
		Added:        added,
		Skipped:      skipped,
		Duplicates:   duplicates,
		Total:        len(merged),
		InvalidFiles: invalid,
	}, nil
}

// IngestTransactions normalizes one or more deposit or withdrawal export
// files (CSV or JSON) and merges them into the transaction store. The
// declared type is required and determines the direction of every record in
// the batch.
func (s *IngestService) IngestTransactions(ctx context.Context, files []UploadFile, declared domain.TransactionType) (*domain.IngestReport, error) {
	if !declared.Valid() {
		return nil, ErrInvalidTransactionType
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	var incoming []domain.Transaction
	var invalid []domain.FileError
	skipped := 0

	for _, file := range files {
		txs, fileSkipped, err := s.normalizeTransactionFile(file, declared)
		if err != nil {
			s.log.Warn().Str("file", file.Name).Err(err).Msg("Skipping invalid transaction file")
			invalid = append(invalid, domain.FileError{Name: file.Name, Error: err.Error()})
			continue
		}
		skipped += fileSkipped
		incoming = append(incoming, txs...)
	}

	if len(invalid) == len(files) {
		return nil, &BatchError{InvalidFiles: invalid}
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	existing, err := s.store.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load transaction store: %w", err)
	}

	merged, added, duplicates := Merge(existing, incoming)

	if err := s.store.ReplaceTransactions(ctx, merged); err != nil {
		return nil, fmt.Errorf("could not save transaction store: %w", err)
	}

	s.log.Info().
		Str("type", string(declared)).
		Int("added", added).
		Int("skipped", skipped).
		Int("duplicates", duplicates).
		Int("total", len(merged)).
		Msg("Transaction batch ingested")

	return &domain.IngestReport{
		Added:        added,
		Skipped:      skipped,
		Duplicates:   duplicates,
		Total:        len(merged),
		InvalidFiles: invalid,
	}, nil
}

func (s *IngestService) normalizeTransactionFile(file UploadFile, declared domain.TransactionType) ([]domain.Transaction, int, error) {
	if normalize.DetectFormat(file.Name, file.Content) == normalize.FormatJSON {
		return normalize.TransactionsFromJSON(file.Content, declared)
	}

	rows := normalize.ParseDelimited(string(file.Content))
	if len(rows) == 0 {
		return nil, 0, errors.New("file contains no rows")
	}
	if normalize.IsTransactionHeader(rows[0]) {
		rows = rows[1:]
	}

	var txs []domain.Transaction
	skipped := 0
	for _, row := range rows {
		tx := normalize.TransactionFromRow(row, declared)
		if tx == nil {
			skipped++
			continue
		}
		txs = append(txs, *tx)
	}
	return txs, skipped, nil
}
