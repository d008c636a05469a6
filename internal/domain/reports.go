package domain

// FileError describes a single uploaded file that could not be processed.
type FileError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// IngestReport summarizes the outcome of one upload batch.
type IngestReport struct {
	Added        int         `json:"added"`
	Skipped      int         `json:"skipped"`
	Duplicates   int         `json:"duplicates"`
	Total        int         `json:"total"`
	InvalidFiles []FileError `json:"invalid_files,omitempty"`
}

// Spin is one bet placed on a game: stake and return plus its time signals.
type Spin struct {
	Bet       float64 `json:"bet"`
	Win       float64 `json:"win"`
	Timestamp int64   `json:"timestamp,omitempty"` // epoch milliseconds, 0 when unknown
	CreatedAt string  `json:"created_at,omitempty"`
}

// Game is the per-game aggregate. It is rebuilt on every aggregation pass and
// never persisted.
type Game struct {
	Name     string  `json:"name"`
	Provider string  `json:"provider"`
	Kind     BetKind `json:"type"`
	Image    string  `json:"image"`
	Spins    []Spin  `json:"spins"`
	Profit   float64 `json:"profit"`
}

// MonthlyFlow is one bucket of the monthly deposit/withdrawal series.
type MonthlyFlow struct {
	Month       string  `json:"month"` // e.g. "Jan 2025"
	Deposits    float64 `json:"deposits"`
	Withdrawals float64 `json:"withdrawals"`
	Net         float64 `json:"net"`
}

// FlowStats summarizes one direction of money movement.
type FlowStats struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// FinancialSummary reconciles deposits, withdrawals and betting flow.
// BonusAmount is inferred, not observed: any positive discrepancy between the
// expected balance and zero is attributed to bonuses.
type FinancialSummary struct {
	Deposits          FlowStats     `json:"deposits"`
	Withdrawals       FlowStats     `json:"withdrawals"`
	BonusAmount       float64       `json:"bonus_amount"`
	NetBalance        float64       `json:"net_balance"`
	Currency          string        `json:"currency"`
	Monthly           []MonthlyFlow `json:"monthly"`
	RecentDeposits    []Transaction `json:"recent_deposits"`
	RecentWithdrawals []Transaction `json:"recent_withdrawals"`
}

// SportsBetView is the display form of a single sports bet.
type SportsBetView struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"` // e.g. "3-Team Parlay", "Match Bet"
	Match   string  `json:"match"`
	Stake   float64 `json:"stake"`
	Payout  float64 `json:"payout"`
	Odds    float64 `json:"odds"`
	Date    string  `json:"date"`
	Status  string  `json:"status"`
	Result  string  `json:"result"` // "Win" or "Loss"
	Provider string `json:"provider"`
}

// BetTypeBreakdown aggregates sports bets of one shape (parlays vs singles).
type BetTypeBreakdown struct {
	Count  int     `json:"count"`
	Wins   int     `json:"wins"`
	Stake  float64 `json:"stake"`
	Profit float64 `json:"profit"`
}

// SportsSummary is the aggregate view over all sports bets.
type SportsSummary struct {
	Bets        []SportsBetView             `json:"bets"`
	TotalStake  float64                     `json:"total_stake"`
	TotalWins   float64                     `json:"total_wins"`
	TotalLosses float64                     `json:"total_losses"`
	Profit      float64                     `json:"profit"`
	Breakdown   map[string]BetTypeBreakdown `json:"breakdown"`
}
