package server_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bet-ledger/internal/gateway"
	"bet-ledger/internal/server"
	"bet-ledger/internal/usecase"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := gateway.NewJSONFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	srv := server.New(server.Config{
		Addr:   ":0",
		Log:    zerolog.Nop(),
		Ingest: usecase.NewIngestService(store, zerolog.Nop()),
		Stats:  usecase.NewStatsService(store),
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadBetsAndReadBack(t *testing.T) {
	ts := newTestServer(t)

	body, contentType := multipartBody(t, nil, map[string]string{
		"bets.json": `[{"id": "b1", "data": {"gameName": "Mines", "amount": 10, "payout": 25}}]`,
	})

	resp, err := http.Post(ts.URL+"/api/upload/bets", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var upload struct {
		Success bool `json:"success"`
		Added   int  `json:"added"`
		Total   int  `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&upload))
	assert.True(t, upload.Success)
	assert.Equal(t, 1, upload.Added)
	assert.Equal(t, 1, upload.Total)

	listResp, err := http.Get(ts.URL + "/api/bets")
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var bets []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&bets))
	require.Len(t, bets, 1)
	assert.Equal(t, "b1", bets[0]["id"])
}

func TestUploadTransactionsRequiresType(t *testing.T) {
	ts := newTestServer(t)

	body, contentType := multipartBody(t, nil, map[string]string{
		"deposits.csv": "a,b,c,d,e",
	})

	resp, err := http.Post(ts.URL+"/api/upload/transactions", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadBetsAllInvalid(t *testing.T) {
	ts := newTestServer(t)

	body, contentType := multipartBody(t, nil, map[string]string{
		"bad.json": "not json at all {",
	})

	resp, err := http.Post(ts.URL+"/api/upload/bets", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload struct {
		InvalidFiles []struct {
			Name string `json:"name"`
		} `json:"invalid_files"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.InvalidFiles, 1)
	assert.Equal(t, "bad.json", payload.InvalidFiles[0].Name)
}

func TestGameStatsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	body, contentType := multipartBody(t, nil, map[string]string{
		"bets.json": `[
			{"id": "b1", "data": {"gameName": "Mines", "amount": 10, "payout": 25}},
			{"id": "b2", "data": {"gameName": "Plinko", "amount": 10, "payout": 5}}
		]`,
	})
	resp, err := http.Post(ts.URL+"/api/upload/bets", contentType, body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	statsResp, err := http.Get(ts.URL + "/api/stats/games?search=mines")
	require.NoError(t, err)
	defer statsResp.Body.Close()
	require.Equal(t, http.StatusOK, statsResp.StatusCode)

	var payload struct {
		Games []struct {
			Name   string  `json:"name"`
			Profit float64 `json:"profit"`
		} `json:"games"`
		TotalProfit float64 `json:"totalProfit"`
	}
	require.NoError(t, json.NewDecoder(statsResp.Body).Decode(&payload))
	require.Len(t, payload.Games, 1)
	assert.Equal(t, "Mines", payload.Games[0].Name)
	assert.Equal(t, 15.0, payload.Games[0].Profit)
	assert.Equal(t, 15.0, payload.TotalProfit)
}

func TestProvidersEndpointEmptyStore(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/providers")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var providers []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&providers))
	assert.Empty(t, providers)
}
