package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"bet-ledger/internal/domain"
	"bet-ledger/internal/normalize"
)

// Display label for records whose provider could not be resolved.
const defaultProviderLabel = "Stake Originals"

// allProviders is the filter value meaning "no provider filter".
const allProviders = "All Providers"

// GameFilter narrows and orders the per-game aggregation.
type GameFilter struct {
	Search       string
	Provider     string
	Sort         string // profit-high (default), profit-low, bets-high, bets-low
	Kind         domain.BetKind
	DateFiltered bool
	From         string // YYYY-MM-DD, inclusive
	To           string // YYYY-MM-DD, inclusive through end of day
}

// SportsFilter narrows and orders the sports summary.
type SportsFilter struct {
	Search       string
	Provider     string
	Sort         string // dateDesc (default), dateAsc, amount*, payout*, odds*
	DateFiltered bool
	From         string
	To           string
}

// StatsService derives view-ready statistics from the canonical store.
// Aggregates are recomputed from the full store on every call and never
// cached.
type StatsService struct {
	store RecordStore
}

// NewStatsService creates the aggregation usecase.
func NewStatsService(store RecordStore) *StatsService {
	return &StatsService{store: store}
}

// Bets returns the full canonical bet collection.
func (s *StatsService) Bets(ctx context.Context) ([]domain.Bet, error) {
	return s.store.LoadBets(ctx)
}

// Transactions returns the full canonical transaction collection.
func (s *StatsService) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.store.LoadTransactions(ctx)
}

// GameStats aggregates the bet store into per-game statistics.
func (s *StatsService) GameStats(ctx context.Context, filter GameFilter) ([]domain.Game, float64, error) {
	bets, err := s.store.LoadBets(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not load bets: %w", err)
	}
	games, total := AggregateGames(bets, filter)
	return games, total, nil
}

// FinancialSummary reconciles the transaction and bet stores.
func (s *StatsService) FinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	transactions, err := s.store.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load transactions: %w", err)
	}
	bets, err := s.store.LoadBets(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load bets: %w", err)
	}
	return SummarizeFinances(transactions, bets), nil
}

// SportsSummary aggregates sports bets.
func (s *StatsService) SportsSummary(ctx context.Context, filter SportsFilter) (*domain.SportsSummary, error) {
	bets, err := s.store.LoadBets(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load bets: %w", err)
	}
	return SummarizeSports(bets, filter), nil
}

// Providers returns the distinct canonical provider names present in the bet
// store, recomputed per call.
func (s *StatsService) Providers(ctx context.Context) ([]string, error) {
	bets, err := s.store.LoadBets(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load bets: %w", err)
	}
	return DistinctProviders(bets), nil
}

// AggregateGames groups bets by game name, one spin per bet, newest spins
// first, and computes per-game profit. Games whose spins all fall outside an
// enabled date range are dropped entirely.
func AggregateGames(bets []domain.Bet, filter GameFilter) ([]domain.Game, float64) {
	grouped := make(map[string]*domain.Game)
	var order []string

	for _, bet := range bets {
		name := bet.Data.GameName
		if name == "" {
			name = "Unknown Game"
		}

		game, ok := grouped[name]
		if !ok {
			game = &domain.Game{
				Name:     name,
				Provider: displayProvider(bet.Data.Provider),
				Kind:     betKindOrSlots(bet.Kind),
				Image:    GameImage(name),
			}
			grouped[name] = game
			order = append(order, name)
		}

		game.Spins = append(game.Spins, domain.Spin{
			Bet:       bet.Data.Amount,
			Win:       bet.Data.Payout,
			Timestamp: bet.Data.CreatedAt,
			CreatedAt: bet.CreatedAt,
		})
	}

	var games []domain.Game
	start, end := dateRange(filter.DateFiltered, filter.From, filter.To)

	for _, name := range order {
		game := *grouped[name]

		if filter.Kind != "" && game.Kind != filter.Kind {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(game.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Provider != "" && filter.Provider != allProviders && game.Provider != filter.Provider {
			continue
		}

		if start != 0 || end != 0 {
			var kept []domain.Spin
			for _, spin := range game.Spins {
				t := spinTime(spin)
				if t >= start && t <= end {
					kept = append(kept, spin)
				}
			}
			if len(kept) == 0 {
				continue
			}
			game.Spins = kept
		}

		sort.SliceStable(game.Spins, func(i, j int) bool {
			return spinTime(game.Spins[i]) > spinTime(game.Spins[j])
		})

		game.Profit = 0
		for _, spin := range game.Spins {
			game.Profit += spin.Win - spin.Bet
		}

		games = append(games, game)
	}

	sortGames(games, filter.Sort)

	total := 0.0
	for _, game := range games {
		total += game.Profit
	}
	return games, total
}

// SummarizeFinances computes deposit/withdrawal totals, the inferred bonus
// amount, net balance, the monthly flow series and the five most recent
// movements in each direction.
//
// The bonus figure is a heuristic, not ground truth: the positive part of the
// discrepancy between net deposits plus net betting result and an assumed
// zero balance. Negative discrepancies are clamped to zero.
func SummarizeFinances(transactions []domain.Transaction, bets []domain.Bet) *domain.FinancialSummary {
	summary := &domain.FinancialSummary{
		Currency:          "USD",
		Monthly:           []domain.MonthlyFlow{},
		RecentDeposits:    []domain.Transaction{},
		RecentWithdrawals: []domain.Transaction{},
	}
	if len(transactions) == 0 && len(bets) == 0 {
		return summary
	}

	summary.Currency = primaryCurrency(transactions)

	var deposits, withdrawals []domain.Transaction
	for _, tx := range transactions {
		switch tx.Type {
		case domain.TransactionTypeDeposit:
			deposits = append(deposits, tx)
			summary.Deposits.Total += tx.Data.Amount
		case domain.TransactionTypeWithdraw:
			withdrawals = append(withdrawals, tx)
			summary.Withdrawals.Total += tx.Data.Amount
		}
	}
	summary.Deposits.Count = len(deposits)
	summary.Withdrawals.Count = len(withdrawals)
	if len(deposits) > 0 {
		summary.Deposits.Average = summary.Deposits.Total / float64(len(deposits))
	}
	if len(withdrawals) > 0 {
		summary.Withdrawals.Average = summary.Withdrawals.Total / float64(len(withdrawals))
	}

	var betAmount, betPayout float64
	for _, bet := range bets {
		betAmount += bet.Data.Amount
		betPayout += bet.Data.Payout
	}

	expectedBalance := summary.Deposits.Total - summary.Withdrawals.Total + (betPayout - betAmount)
	summary.BonusAmount = math.Max(0, expectedBalance)
	summary.NetBalance = summary.Deposits.Total + summary.BonusAmount - summary.Withdrawals.Total

	summary.Monthly = monthlyFlows(transactions)
	summary.RecentDeposits = recentTransactions(deposits, 5)
	summary.RecentWithdrawals = recentTransactions(withdrawals, 5)

	return summary
}

// SummarizeSports builds the sports betting view: per-bet effective odds and
// result, overall totals, and a parlay/single breakdown.
func SummarizeSports(bets []domain.Bet, filter SportsFilter) *domain.SportsSummary {
	summary := &domain.SportsSummary{
		Bets:      []domain.SportsBetView{},
		Breakdown: make(map[string]domain.BetTypeBreakdown),
	}

	start, end := dateRange(filter.DateFiltered, filter.From, filter.To)

	for _, bet := range bets {
		if !isSportsBet(bet) {
			continue
		}

		view := sportsBetView(bet)

		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(view.Match), search) &&
				!strings.Contains(strings.ToLower(view.Label), search) {
				continue
			}
		}
		if filter.Provider != "" && filter.Provider != allProviders && view.Provider != filter.Provider {
			continue
		}
		if start != 0 || end != 0 {
			t := betTime(bet)
			if t < start || t > end {
				continue
			}
		}

		summary.Bets = append(summary.Bets, view)
	}

	sortSportsBets(summary.Bets, filter.Sort)

	for _, view := range summary.Bets {
		summary.TotalStake += view.Stake
		if view.Result == "Win" {
			summary.TotalWins += view.Payout
		} else {
			summary.TotalLosses += view.Stake
		}

		bucket := "Single Bets"
		if strings.Contains(view.Label, "Parlay") {
			bucket = "Parlays"
		}
		b := summary.Breakdown[bucket]
		b.Count++
		b.Stake += view.Stake
		if view.Result == "Win" {
			b.Wins++
			b.Profit += view.Payout - view.Stake
		} else {
			b.Profit -= view.Stake
		}
		summary.Breakdown[bucket] = b
	}
	summary.Profit = summary.TotalWins - summary.TotalStake

	return summary
}

// DistinctProviders lists the canonical provider names present in the bet
// collection, sorted alphabetically.
func DistinctProviders(bets []domain.Bet) []string {
	seen := make(map[string]bool)
	var providers []string
	for _, bet := range bets {
		p := displayProvider(bet.Data.Provider)
		if !seen[p] {
			seen[p] = true
			providers = append(providers, p)
		}
	}
	sort.Strings(providers)
	return providers
}

func sportsBetView(bet domain.Bet) domain.SportsBetView {
	view := domain.SportsBetView{
		ID:     bet.ID,
		Stake:  bet.Data.Amount,
		Payout: bet.Data.Payout,
		Status: bet.Data.Status,
		Date:   betDateISO(bet),
	}
	if view.Status == "" {
		view.Status = "unknown"
	}
	view.Provider = bet.Data.Provider
	if view.Provider == "" || view.Provider == "Unknown" {
		view.Provider = "Stake"
	}
	view.Result = "Loss"
	if bet.Data.Payout > bet.Data.Amount {
		view.Result = "Win"
	}

	if len(bet.Data.Outcomes) > 0 {
		fixtures := make(map[string]bool)
		for _, o := range bet.Data.Outcomes {
			fixtures[o.FixtureID] = true
		}
		if len(fixtures) > 1 {
			view.Label = fmt.Sprintf("%d-Team Parlay", len(fixtures))
			view.Match = view.Label
		} else {
			view.Label = "Match Bet"
			view.Match = "Match Bet"
		}

		view.Odds = normalize.ParlayOdds(bet.Data.Outcomes)
		if bet.Data.PayoutMultiplier > 0 {
			view.Odds = bet.Data.PayoutMultiplier
		}
	} else {
		view.Label = "Match Bet"
		view.Match = bet.Data.GameName
		if view.Match == "" || view.Match == "Unknown Game" {
			view.Match = "Sports Bet"
		}
		if bet.Data.Amount > 0 && bet.Data.Payout > 0 {
			view.Odds = bet.Data.Payout / bet.Data.Amount
		} else {
			view.Odds = 1
		}
	}

	return view
}

func isSportsBet(bet domain.Bet) bool {
	return bet.Kind == domain.BetKindSports ||
		strings.Contains(strings.ToLower(bet.Data.GameName), "sport")
}

func sortGames(games []domain.Game, key string) {
	sort.SliceStable(games, func(i, j int) bool {
		switch key {
		case "profit-low":
			return games[i].Profit < games[j].Profit
		case "bets-high":
			return len(games[i].Spins) > len(games[j].Spins)
		case "bets-low":
			return len(games[i].Spins) < len(games[j].Spins)
		default: // profit-high
			return games[i].Profit > games[j].Profit
		}
	})
}

func sortSportsBets(bets []domain.SportsBetView, key string) {
	sort.SliceStable(bets, func(i, j int) bool {
		a, b := bets[i], bets[j]
		switch key {
		case "dateAsc":
			return a.Date < b.Date
		case "amountDesc":
			return a.Stake > b.Stake
		case "amountAsc":
			return a.Stake < b.Stake
		case "payoutDesc":
			return a.Payout > b.Payout
		case "payoutAsc":
			return a.Payout < b.Payout
		case "oddsDesc":
			return a.Odds > b.Odds
		case "oddsAsc":
			return a.Odds < b.Odds
		default: // dateDesc
			return a.Date > b.Date
		}
	})
}

// primaryCurrency is the most frequent transaction currency; the first
// currency to reach the winning count keeps the tie.
func primaryCurrency(transactions []domain.Transaction) string {
	counts := make(map[string]int)
	best := "USD"
	bestCount := 0
	for _, tx := range transactions {
		c := tx.Data.Currency
		if c == "" {
			c = "USD"
		}
		counts[c]++
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	return best
}

func monthlyFlows(transactions []domain.Transaction) []domain.MonthlyFlow {
	type bucket struct {
		flow  domain.MonthlyFlow
		month time.Time
	}
	buckets := make(map[string]*bucket)

	for _, tx := range transactions {
		t := time.UnixMilli(transactionTime(tx))
		key := t.Format("Jan 2006")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				flow:  domain.MonthlyFlow{Month: key},
				month: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()),
			}
			buckets[key] = b
		}
		switch tx.Type {
		case domain.TransactionTypeDeposit:
			b.flow.Deposits += tx.Data.Amount
		case domain.TransactionTypeWithdraw:
			b.flow.Withdrawals += tx.Data.Amount
		}
		b.flow.Net = b.flow.Deposits - b.flow.Withdrawals
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].month.Before(ordered[j].month)
	})

	flows := make([]domain.MonthlyFlow, len(ordered))
	for i, b := range ordered {
		flows[i] = b.flow
	}
	return flows
}

func recentTransactions(transactions []domain.Transaction, limit int) []domain.Transaction {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return transactionTime(sorted[i]) > transactionTime(sorted[j])
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func transactionTime(tx domain.Transaction) int64 {
	if tx.Data.CreatedAt != 0 {
		return tx.Data.CreatedAt
	}
	return normalize.ParseTimeMillis(tx.CreatedAt)
}

func betTime(bet domain.Bet) int64 {
	if bet.Data.CreatedAt != 0 {
		return bet.Data.CreatedAt
	}
	return normalize.ParseTimeMillis(bet.CreatedAt)
}

func betDateISO(bet domain.Bet) string {
	if ms := betTime(bet); ms != 0 {
		return time.UnixMilli(ms).UTC().Format("2006-01-02T15:04:05.000Z")
	}
	return bet.CreatedAt
}

func spinTime(spin domain.Spin) int64 {
	if spin.Timestamp != 0 {
		return spin.Timestamp
	}
	return normalize.ParseTimeMillis(spin.CreatedAt)
}

// dateRange converts YYYY-MM-DD bounds into an inclusive epoch-millisecond
// window: start of day through 23:59:59.999. An empty From means the epoch,
// an empty To means now. Returns (0, 0) when filtering is disabled.
func dateRange(enabled bool, from, to string) (int64, int64) {
	if !enabled || (from == "" && to == "") {
		return 0, 0
	}

	start := int64(0)
	if from != "" {
		if t, err := time.ParseInLocation("2006-01-02", from, time.Local); err == nil {
			start = t.UnixMilli()
		}
	}

	end := time.Now().UnixMilli()
	if to != "" {
		if t, err := time.ParseInLocation("2006-01-02", to, time.Local); err == nil {
			end = t.Add(24*time.Hour - time.Millisecond).UnixMilli()
		}
	}

	return start, end
}

func displayProvider(provider string) string {
	if provider == "" || provider == "Unknown" {
		return defaultProviderLabel
	}
	return provider
}

func betKindOrSlots(kind domain.BetKind) domain.BetKind {
	if kind == "" {
		return domain.BetKindSlots
	}
	return kind
}
