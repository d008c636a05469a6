package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bet-ledger/internal/domain"
	"bet-ledger/internal/normalize"
)

func TestBetsFromJSON(t *testing.T) {
	t.Run("slot bet with nested data", func(t *testing.T) {
		content := []byte(`[{
			"id": "house:1",
			"created_at": "2024-05-01T10:00:00.000Z",
			"data": {
				"gameName": "Mines",
				"amount": -20,
				"payout": 35.5,
				"provider": "pragmatic",
				"createdAt": "2024-05-01T10:00:00Z"
			}
		}]`)

		bets, skipped, err := normalize.BetsFromJSON(content)
		require.NoError(t, err)
		assert.Zero(t, skipped)
		require.Len(t, bets, 1)

		bet := bets[0]
		assert.Equal(t, "house:1", bet.ID)
		assert.Equal(t, domain.BetKindSlots, bet.Kind)
		assert.Equal(t, "Mines", bet.Data.GameName)
		assert.Equal(t, 20.0, bet.Data.Amount)
		assert.Equal(t, 35.5, bet.Data.Payout)
		assert.Equal(t, "Pragmatic Play", bet.Data.Provider)
		assert.Equal(t, "2024-05-01T10:00:00.000Z", bet.CreatedAt)
	})

	t.Run("record without nested data is skipped", func(t *testing.T) {
		content := []byte(`[{"id": "x"}, {"id": "y", "data": {"gameName": "Plinko"}}]`)

		bets, skipped, err := normalize.BetsFromJSON(content)
		require.NoError(t, err)
		assert.Equal(t, 1, skipped)
		require.Len(t, bets, 1)
		assert.Equal(t, "y", bets[0].ID)
	})

	t.Run("missing game name defaults", func(t *testing.T) {
		content := []byte(`{"id": "z", "data": {"amount": 5}}`)

		bets, _, err := normalize.BetsFromJSON(content)
		require.NoError(t, err)
		require.Len(t, bets, 1)
		assert.Equal(t, "Unknown Game", bets[0].Data.GameName)
		assert.Equal(t, "Unknown", bets[0].Data.Provider)
	})

	t.Run("missing id is synthesized", func(t *testing.T) {
		content := []byte(`{"data": {"gameName": "Dice", "amount": 1}}`)

		bets, _, err := normalize.BetsFromJSON(content)
		require.NoError(t, err)
		require.Len(t, bets, 1)
		assert.Contains(t, bets[0].ID, "bet-")
	})

	t.Run("invalid json", func(t *testing.T) {
		_, _, err := normalize.BetsFromJSON([]byte("{{"))
		assert.Error(t, err)
	})
}

func TestBetsFromJSON_KindInference(t *testing.T) {
	tests := []struct {
		name string
		data string
		want domain.BetKind
	}{
		{"sport field", `{"gameName": "NBA Finals", "sport": "basketball"}`, domain.BetKindSports},
		{"league field", `{"gameName": "Premier", "league": "EPL"}`, domain.BetKindSports},
		{"sportsbook type", `{"gameName": "Bet Builder", "type": "Sportsbook"}`, domain.BetKindSports},
		{"sport in game name", `{"gameName": "Virtual Sports Arena"}`, domain.BetKindSports},
		{"plain slot", `{"gameName": "Sugar Rush"}`, domain.BetKindSlots},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(`{"id": "k", "data": ` + tt.data + `}`)
			bets, _, err := normalize.BetsFromJSON(content)
			require.NoError(t, err)
			require.Len(t, bets, 1)
			assert.Equal(t, tt.want, bets[0].Kind)
		})
	}
}

func TestBetsFromJSON_OutcomeProviderMode(t *testing.T) {
	content := []byte(`{
		"id": "s1",
		"data": {
			"gameName": "Bet Builder",
			"type": "sportsbook",
			"amount": 10,
			"payout": 30,
			"outcomes": [
				{"provider": "betsoft", "odds": 2.0, "fixtureId": "f1"},
				{"provider": "pragmatic", "odds": 1.5, "fixtureId": "f2"},
				{"provider": "betsoft", "odds": 1.0, "fixtureId": "f3"}
			]
		}
	}`)

	bets, _, err := normalize.BetsFromJSON(content)
	require.NoError(t, err)
	require.Len(t, bets, 1)

	bet := bets[0]
	assert.Equal(t, domain.BetKindSports, bet.Kind)
	require.Len(t, bet.Data.Outcomes, 3)
	// betsoft appears twice, so the bet is attributed to Betsoft
	assert.Equal(t, "Betsoft", bet.Data.Provider)
}

func TestParlayOdds(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []domain.Outcome
		want     float64
	}{
		{
			name:     "product of odds",
			outcomes: []domain.Outcome{{Odds: 2.0}, {Odds: 1.5}},
			want:     3.0,
		},
		{
			name:     "zero odds are treated as 1",
			outcomes: []domain.Outcome{{Odds: 2.0}, {Odds: 0}},
			want:     2.0,
		},
		{
			name:     "no outcomes",
			outcomes: nil,
			want:     1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.ParlayOdds(tt.outcomes))
		})
	}
}
