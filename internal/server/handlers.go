package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bet-ledger/internal/domain"
	"bet-ledger/internal/usecase"
)

// maxUploadFiles caps the number of files in one upload batch.
const maxUploadFiles = 10

// maxUploadMemory is the in-memory parse budget for multipart bodies.
const maxUploadMemory = 32 << 20 // 32 MiB

type uploadResponse struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message"`
	Added        int                `json:"added"`
	Skipped      int                `json:"skipped"`
	Duplicates   int                `json:"duplicates"`
	Total        int                `json:"total"`
	InvalidFiles []domain.FileError `json:"invalid_files,omitempty"`
}

type errorResponse struct {
	Success      bool               `json:"success"`
	Error        string             `json:"error"`
	InvalidFiles []domain.FileError `json:"invalid_files,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUploadBets(w http.ResponseWriter, r *http.Request) {
	files, ok := s.readUploadedFiles(w, r)
	if !ok {
		return
	}

	report, err := s.ingest.IngestBets(r.Context(), files)
	if err != nil {
		s.respondIngestError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, uploadResponse{
		Success:      true,
		Message:      "Bets imported",
		Added:        report.Added,
		Skipped:      report.Skipped,
		Duplicates:   report.Duplicates,
		Total:        report.Total,
		InvalidFiles: report.InvalidFiles,
	})
}

func (s *Server) handleUploadTransactions(w http.ResponseWriter, r *http.Request) {
	files, ok := s.readUploadedFiles(w, r)
	if !ok {
		return
	}
	declared := domain.TransactionType(r.FormValue("fileType"))

	report, err := s.ingest.IngestTransactions(r.Context(), files, declared)
	if err != nil {
		s.respondIngestError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, uploadResponse{
		Success:      true,
		Message:      "Transactions imported",
		Added:        report.Added,
		Skipped:      report.Skipped,
		Duplicates:   report.Duplicates,
		Total:        report.Total,
		InvalidFiles: report.InvalidFiles,
	})
}

func (s *Server) handleBets(w http.ResponseWriter, r *http.Request) {
	bets, err := s.stats.Bets(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "could not read bets")
		return
	}
	s.respondJSON(w, http.StatusOK, bets)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.stats.Transactions(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "could not read transactions")
		return
	}
	s.respondJSON(w, http.StatusOK, transactions)
}

func (s *Server) handleGameStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := usecase.GameFilter{
		Search:       q.Get("search"),
		Provider:     q.Get("provider"),
		Sort:         q.Get("sort"),
		Kind:         domain.BetKind(q.Get("kind")),
		DateFiltered: q.Get("from") != "" || q.Get("to") != "",
		From:         q.Get("from"),
		To:           q.Get("to"),
	}

	games, total, err := s.stats.GameStats(r.Context(), filter)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "could not aggregate games")
		return
	}
	if games == nil {
		games = []domain.Game{}
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"games":       games,
		"totalProfit": total,
	})
}

func (s *Server) handleSportsStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := usecase.SportsFilter{
		Search:       q.Get("search"),
		Provider:     q.Get("provider"),
		Sort:         q.Get("sort"),
		DateFiltered: q.Get("from") != "" || q.Get("to") != "",
		From:         q.Get("from"),
		To:           q.Get("to"),
	}

	summary, err := s.stats.SportsSummary(r.Context(), filter)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "could not aggregate sports bets")
		return
	}
	s.respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.stats.FinancialSummary(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "could not build summary")
		return
	}
	s.respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := s.stats.Providers(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "could not list providers")
		return
	}
	if providers == nil {
		providers = []string{}
	}
	s.respondJSON(w, http.StatusOK, providers)
}

// readUploadedFiles drains the multipart "files" field. A false return means
// the response has already been written.
func (s *Server) readUploadedFiles(w http.ResponseWriter, r *http.Request) ([]usecase.UploadFile, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart body")
		return nil, false
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) > maxUploadFiles {
		s.respondError(w, http.StatusBadRequest, "too many files: at most 10 per upload")
		return nil, false
	}

	files := make([]usecase.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "could not read uploaded file "+header.Filename)
			return nil, false
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "could not read uploaded file "+header.Filename)
			return nil, false
		}
		files = append(files, usecase.UploadFile{Name: header.Filename, Content: content})
	}
	return files, true
}

func (s *Server) respondIngestError(w http.ResponseWriter, err error) {
	var batchErr *usecase.BatchError
	switch {
	case errors.Is(err, usecase.ErrNoFiles), errors.Is(err, usecase.ErrInvalidTransactionType):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &batchErr):
		s.respondJSON(w, http.StatusBadRequest, errorResponse{
			Error:        batchErr.Error(),
			InvalidFiles: batchErr.InvalidFiles,
		})
	default:
		s.log.Error().Err(err).Msg("Ingestion failed")
		s.respondError(w, http.StatusInternalServerError, "could not save uploaded records")
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("Could not encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}
