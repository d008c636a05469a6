package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"bet-ledger/internal/domain"
)

// Expected CSV column positions for both deposit and withdrawal exports:
//
//	0: created time (GMT long form)
//	1: completed time
//	2: amount (negative for withdrawals)
//	3: currency
//	4: transaction id
//	5: status
//	6: fee
//	7: total
//	8: note
const minTransactionColumns = 5

// IsTransactionHeader reports whether a parsed row is a column-header row.
func IsTransactionHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(row[0])
	return strings.Contains(first, "time") || strings.Contains(first, "date")
}

// TransactionFromRow normalizes one CSV row into a canonical transaction.
// Returns nil when the row must be skipped: too few columns, a failed or
// non-successful status, or unparseable timestamps. Only rows whose status is
// literally "successful" (any case) are admitted; "pending" and "completed"
// are rejected like everything else.
func TransactionFromRow(row []string, declared domain.TransactionType) *domain.Transaction {
	if len(row) < minTransactionColumns {
		return nil
	}

	status := "completed"
	if len(row) > 5 && row[5] != "" {
		if row[5] == "failed" {
			return nil
		}
		status = row[5]
	}
	if !strings.EqualFold(status, "successful") {
		return nil
	}

	created := ParseTimeMillis(row[0])
	completed := ParseTimeMillis(row[1])
	if created == 0 || completed == 0 {
		return nil
	}

	amount := math.Abs(parseFloat(row[2]))
	currency := row[3]
	if currency == "" {
		currency = "USD"
	}

	data := domain.TransactionData{
		Amount:        amount,
		Status:        storedStatus(status),
		Currency:      currency,
		Fee:           parseFloat(columnOr(row, 6, "")),
		Total:         amount,
		TransactionID: row[4],
		Method:        "csv-import",
		Note:          columnOr(row, 8, ""),
		CreatedAt:     created,
		CompletedAt:   completed,
	}
	if len(row) > 7 && row[7] != "" {
		data.Total = parseFloat(row[7])
	}

	id := fallbackID("tx")
	if row[4] != "" {
		id = "tx-" + row[4]
	}

	return &domain.Transaction{
		ID:        id,
		Type:      declared,
		Data:      data,
		CreatedAt: isoMillis(created),
		UpdatedAt: isoMillis(completed),
	}
}

// TransactionsFromJSON normalizes a JSON transaction export, either a single
// object or an array. Records without a nested data payload or a top-level
// amount are counted as skipped. Unlike the CSV path there is no status
// allow-list: JSON exports are assumed pre-filtered, and a missing status
// defaults to "completed".
func TransactionsFromJSON(content []byte, declared domain.TransactionType) ([]domain.Transaction, int, error) {
	objects, err := decodeObjects(content)
	if err != nil {
		return nil, 0, fmt.Errorf("not a valid CSV or JSON file: %w", err)
	}

	var out []domain.Transaction
	skipped := 0
	for _, obj := range objects {
		tx := transactionFromObject(obj, declared)
		if tx == nil {
			skipped++
			continue
		}
		out = append(out, *tx)
	}
	return out, skipped, nil
}

func transactionFromObject(obj map[string]any, declared domain.TransactionType) *domain.Transaction {
	data, hasData := obj["data"].(map[string]any)
	if !hasData {
		if _, hasAmount := obj["amount"]; !hasAmount {
			return nil
		}
		data = obj
	}

	var amount float64
	if declared == domain.TransactionTypeDeposit {
		amount = numberField(data, "depositAmount", "amount")
	} else {
		amount = numberField(data, "withdrawAmount", "amount")
	}
	if amount == 0 {
		amount = numberField(obj, "amount")
	}

	status := stringField(data, "status")
	if status == "" {
		status = "completed"
	}
	currency := stringField(data, "currency")
	if currency == "" {
		currency = "USD"
	}
	method := stringField(data, "method", "paymentMethod")
	if method == "" {
		method = "unknown"
	}

	created := timeField(data, "createdAt", "timestamp")
	if created == 0 {
		created = timeField(obj, "created_at")
	}
	completed := timeField(data, "completedAt", "timestamp")
	if completed == 0 {
		completed = timeField(obj, "updated_at")
	}
	now := time.Now().UnixMilli()
	if created == 0 {
		created = now
	}
	if completed == 0 {
		completed = now
	}

	id := stringField(obj, "id", "_id")
	if id == "" {
		id = fallbackID("tx")
	}

	createdISO := stringField(obj, "created_at")
	if createdISO == "" {
		createdISO = isoMillis(created)
	}
	updatedISO := stringField(obj, "updated_at")
	if updatedISO == "" {
		updatedISO = isoMillis(completed)
	}

	return &domain.Transaction{
		ID:   id,
		Type: declared,
		Data: domain.TransactionData{
			Amount:      math.Abs(amount),
			Status:      status,
			Currency:    currency,
			Method:      method,
			CreatedAt:   created,
			CompletedAt: completed,
		},
		CreatedAt: createdISO,
		UpdatedAt: updatedISO,
	}
}

// decodeObjects accepts a single JSON object or an array of objects.
func decodeObjects(content []byte) ([]map[string]any, error) {
	trimmed := strings.TrimSpace(string(content))
	if strings.HasPrefix(trimmed, "[") {
		var arr []map[string]any
		if err := json.Unmarshal(content, &arr); err != nil {
			return nil, err
		}
		return arr, nil
	}

	var obj map[string]any
	if err := json.Unmarshal(content, &obj); err != nil {
		return nil, err
	}
	return []map[string]any{obj}, nil
}

// storedStatus keeps the source quirk: the exporter's exact "Successful" is
// persisted as "completed", any other admitted casing is lowercased.
func storedStatus(status string) string {
	if status == "Successful" {
		return "completed"
	}
	return strings.ToLower(status)
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func columnOr(row []string, i int, def string) string {
	if i < len(row) && row[i] != "" {
		return row[i]
	}
	return def
}

func isoMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02T15:04:05.000Z")
}
