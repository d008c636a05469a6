package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bet-ledger/internal/domain"
	"bet-ledger/internal/usecase"
)

func bet(id string, amount float64) domain.Bet {
	return domain.Bet{ID: id, Data: domain.BetData{Amount: amount}}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name           string
		existing       []domain.Bet
		incoming       []domain.Bet
		wantIDs        []string
		wantAdded      int
		wantDuplicates int
	}{
		{
			name:           "appends new records in order",
			existing:       []domain.Bet{bet("a", 1)},
			incoming:       []domain.Bet{bet("b", 2), bet("c", 3)},
			wantIDs:        []string{"a", "b", "c"},
			wantAdded:      2,
			wantDuplicates: 0,
		},
		{
			name:           "drops known keys",
			existing:       []domain.Bet{bet("a", 1), bet("b", 2)},
			incoming:       []domain.Bet{bet("b", 2), bet("c", 3)},
			wantIDs:        []string{"a", "b", "c"},
			wantAdded:      1,
			wantDuplicates: 1,
		},
		{
			name:           "duplicate within the incoming batch",
			existing:       nil,
			incoming:       []domain.Bet{bet("a", 1), bet("a", 1)},
			wantIDs:        []string{"a"},
			wantAdded:      1,
			wantDuplicates: 1,
		},
		{
			name:           "empty incoming",
			existing:       []domain.Bet{bet("a", 1)},
			incoming:       nil,
			wantIDs:        []string{"a"},
			wantAdded:      0,
			wantDuplicates: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, added, duplicates := usecase.Merge(tt.existing, tt.incoming)

			ids := make([]string, len(merged))
			for i, b := range merged {
				ids[i] = b.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantDuplicates, duplicates)
		})
	}
}

func TestMerge_FirstWriteWins(t *testing.T) {
	existing := []domain.Bet{bet("a", 100)}
	incoming := []domain.Bet{bet("a", 999)}

	merged, added, duplicates := usecase.Merge(existing, incoming)

	assert.Equal(t, 0, added)
	assert.Equal(t, 1, duplicates)
	assert.Equal(t, 100.0, merged[0].Data.Amount)
}
