package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"bet-ledger/internal/domain"
)

// BetsFromJSON normalizes a bet export, either a single bet object or an
// array. Records without a nested data payload are counted as skipped.
func BetsFromJSON(content []byte) ([]domain.Bet, int, error) {
	objects, err := decodeObjects(content)
	if err != nil {
		return nil, 0, fmt.Errorf("not a valid JSON file: %w", err)
	}

	var out []domain.Bet
	skipped := 0
	for _, obj := range objects {
		bet := betFromObject(obj)
		if bet == nil {
			skipped++
			continue
		}
		out = append(out, *bet)
	}
	return out, skipped, nil
}

func betFromObject(obj map[string]any) *domain.Bet {
	data, ok := obj["data"].(map[string]any)
	if !ok {
		return nil
	}

	gameName := stringField(data, "gameName", "game")
	if gameName == "" {
		gameName = "Unknown Game"
	}

	bet := domain.Bet{
		ID:   stringField(obj, "id", "_id"),
		Kind: inferBetKind(data, gameName),
		Data: domain.BetData{
			GameName:         gameName,
			Amount:           math.Abs(numberField(data, "amount", "betAmount")),
			Payout:           math.Abs(numberField(data, "payout", "winAmount")),
			Provider:         ProviderName(stringField(data, "provider"), "Unknown"),
			CreatedAt:        timeField(data, "createdAt", "timestamp"),
			Status:           stringField(data, "status"),
			PayoutMultiplier: numberField(data, "payoutMultiplier"),
			Outcomes:         decodeOutcomes(data["outcomes"]),
			Events:           decodeEvents(data["events"]),
		},
	}

	if bet.ID == "" {
		bet.ID = fallbackID("bet")
	}
	if bet.Data.CreatedAt == 0 {
		bet.Data.CreatedAt = timeField(obj, "created_at", "timestamp")
	}

	bet.CreatedAt = stringField(obj, "created_at", "timestamp")
	if bet.CreatedAt == "" {
		if s := stringField(data, "createdAt"); s != "" {
			bet.CreatedAt = s
		} else if bet.Data.CreatedAt != 0 {
			bet.CreatedAt = isoMillis(bet.Data.CreatedAt)
		} else {
			bet.CreatedAt = isoMillis(time.Now().UnixMilli())
		}
	}

	// A multi-outcome sports bet is attributed to the most frequent provider
	// across its outcomes, first seen winning ties.
	if bet.Kind == domain.BetKindSports && len(bet.Data.Outcomes) > 0 {
		if m := modeProvider(bet.Data.Outcomes); m != "" {
			bet.Data.Provider = ProviderName(m, "Unknown")
		}
	}

	return &bet
}

// inferBetKind defaults to slots and promotes to sports on any explicit
// sportsbook signal: a sport or league field, a sportsbook type, or a game
// name that mentions sport.
func inferBetKind(data map[string]any, gameName string) domain.BetKind {
	if _, ok := data["sport"]; ok {
		return domain.BetKindSports
	}
	if _, ok := data["league"]; ok {
		return domain.BetKindSports
	}
	if strings.EqualFold(stringField(data, "type"), "sportsbook") {
		return domain.BetKindSports
	}
	if strings.Contains(strings.ToLower(gameName), "sport") {
		return domain.BetKindSports
	}
	return domain.BetKindSlots
}

func decodeOutcomes(raw any) []domain.Outcome {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	var outcomes []domain.Outcome
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		outcomes = append(outcomes, domain.Outcome{
			Provider:  stringField(m, "provider"),
			Odds:      numberField(m, "odds"),
			FixtureID: stringField(m, "fixtureId"),
		})
	}
	return outcomes
}

func decodeEvents(raw any) []json.RawMessage {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	var events []json.RawMessage
	for _, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			continue
		}
		events = append(events, json.RawMessage(b))
	}
	return events
}

// modeProvider returns the most frequent outcome provider; the first provider
// to reach the winning count keeps the tie.
func modeProvider(outcomes []domain.Outcome) string {
	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, o := range outcomes {
		if o.Provider == "" {
			continue
		}
		counts[o.Provider]++
		if counts[o.Provider] > bestCount {
			best = o.Provider
			bestCount = counts[o.Provider]
		}
	}
	return best
}

// ParlayOdds multiplies outcome odds together, treating missing odds as 1.
func ParlayOdds(outcomes []domain.Outcome) float64 {
	odds := 1.0
	for _, o := range outcomes {
		if o.Odds > 0 {
			odds *= o.Odds
		}
	}
	return odds
}
