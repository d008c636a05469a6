package gateway_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bet-ledger/internal/domain"
	"bet-ledger/internal/gateway"
)

func newStore(t *testing.T) (*gateway.JSONFileStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := gateway.NewJSONFileStore(dir, zerolog.Nop())
	require.NoError(t, err)
	return store, dir
}

func TestJSONFileStore_MissingFilesReadAsEmpty(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	bets, err := store.LoadBets(ctx)
	require.NoError(t, err)
	assert.NotNil(t, bets)
	assert.Empty(t, bets)

	txs, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}

func TestJSONFileStore_Roundtrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	bets := []domain.Bet{
		{
			ID:        "b1",
			Kind:      domain.BetKindSlots,
			CreatedAt: "2024-05-01T10:00:00.000Z",
			Data: domain.BetData{
				GameName:  "Mines",
				Amount:    10,
				Payout:    25,
				Provider:  "Pragmatic Play",
				CreatedAt: 1714557600000,
			},
		},
	}
	require.NoError(t, store.ReplaceBets(ctx, bets))

	loaded, err := store.LoadBets(ctx)
	require.NoError(t, err)
	assert.Equal(t, bets, loaded)

	txs := []domain.Transaction{
		{
			ID:        "tx-ABC",
			Type:      domain.TransactionTypeDeposit,
			CreatedAt: "2024-01-01T00:00:00.000Z",
			UpdatedAt: "2024-01-01T00:01:00.000Z",
			Data: domain.TransactionData{
				Amount:        150,
				Status:        "completed",
				Currency:      "USD",
				Total:         150,
				TransactionID: "ABC",
				Method:        "csv-import",
				CreatedAt:     1704067200000,
				CompletedAt:   1704067260000,
			},
		},
	}
	require.NoError(t, store.ReplaceTransactions(ctx, txs))

	loadedTxs, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, txs, loadedTxs)
}

func TestJSONFileStore_CorruptFileReadsAsEmpty(t *testing.T) {
	store, dir := newStore(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bets.json"), []byte("{not json"), 0o644))

	bets, err := store.LoadBets(ctx)
	require.NoError(t, err)
	assert.Empty(t, bets)
}

func TestJSONFileStore_ReplaceOverwritesWholeCollection(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceBets(ctx, []domain.Bet{{ID: "b1"}, {ID: "b2"}}))
	require.NoError(t, store.ReplaceBets(ctx, []domain.Bet{{ID: "b3"}}))

	bets, err := store.LoadBets(ctx)
	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, "b3", bets[0].ID)
}

func TestJSONFileStore_NoTempFileLeftBehind(t *testing.T) {
	store, dir := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceBets(ctx, []domain.Bet{{ID: "b1"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}
