package domain

import "encoding/json"

// BetKind distinguishes casino (slots) bets from sportsbook bets.
type BetKind string

const (
	BetKindSlots  BetKind = "slots"
	BetKindSports BetKind = "sports"
)

// Outcome is one leg of a sports bet. Unknown exporter fields are dropped;
// only the fields the aggregation engine reads are kept.
type Outcome struct {
	Provider  string  `json:"provider,omitempty"`
	Odds      float64 `json:"odds,omitempty"`
	FixtureID string  `json:"fixtureId,omitempty"`
}

// BetData carries the normalized payload of a single bet. Amount and Payout
// are always non-negative; implied profit is Payout - Amount.
type BetData struct {
	GameName  string  `json:"gameName"`
	Amount    float64 `json:"amount"`
	Payout    float64 `json:"payout"`
	Provider  string  `json:"provider"`
	CreatedAt int64   `json:"createdAt,omitempty"` // epoch milliseconds, 0 when unknown

	// Sports-only fields.
	Status           string            `json:"status,omitempty"`
	PayoutMultiplier float64           `json:"payoutMultiplier,omitempty"`
	Outcomes         []Outcome         `json:"outcomes,omitempty"`
	Events           []json.RawMessage `json:"events,omitempty"` // lifecycle log, passed through
}

// Bet is the canonical, persisted form of an uploaded bet record.
type Bet struct {
	ID        string  `json:"id"`
	Kind      BetKind `json:"type"`
	Data      BetData `json:"data"`
	CreatedAt string  `json:"created_at"` // ISO-8601
}

// Key returns the dedup identity of the bet.
func (b Bet) Key() string { return b.ID }

// Profit is the net result of the bet.
func (b Bet) Profit() float64 { return b.Data.Payout - b.Data.Amount }
