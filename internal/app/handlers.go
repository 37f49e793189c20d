package app

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apperrors "markscli/internal/errors"
	"markscli/internal/loader"
	"markscli/pkg/contracts/domain"
)

var validate = validator.New()

// RowView is the JSON shape of one cleaned row; the reason list is joined
// into the Error string here, at the presentation boundary.
type RowView struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Marks   string `json:"marks"`
	Status  string `json:"status"`
	Error   string `json:"error"`
}

// AnalyzeResponse is the payload returned by POST /api/v1/analyze.
type AnalyzeResponse struct {
	Success  bool                `json:"success"`
	Rows     []RowView           `json:"rows"`
	Summary  []domain.SummaryRow `json:"summary"`
	Counts   AnalyzeCounts       `json:"counts"`
	Duration string              `json:"duration"`
}

// AnalyzeCounts summarizes the run for quick display.
type AnalyzeCounts struct {
	Total    int `json:"total"`
	Valid    int `json:"valid"`
	Invalid  int `json:"invalid"`
	Students int `json:"students"`
}

// handleHealth reports service liveness.
func (a *Application) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleAnalyze runs the validation pipeline over an uploaded records file.
// Data-quality findings come back in the payload; only malformed requests
// and unreadable uploads produce error responses.
func (a *Application) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := a.Logger

	r.Body = http.MaxBytesReader(w, r.Body, a.Config.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(a.Config.Server.MaxUploadBytes); err != nil {
		apperrors.WriteError(w, apperrors.InvalidRequestWithError(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apperrors.WriteError(w, apperrors.NewWithDetails(
			http.StatusBadRequest, "MISSING_PARAMETER",
			"Multipart field 'file' is required", err.Error()))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if err := validate.Var(ext, "oneof=.csv .tsv .txt .xlsx"); err != nil {
		apperrors.WriteError(w, apperrors.UnsupportedFormatError(header.Filename))
		return
	}

	records, err := loader.ReadUpload(r.Context(), file, header.Filename)
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to read upload",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		apperrors.WriteError(w, apperrors.IngestionError(err))
		return
	}

	cleaned, summary, err := a.pipeline.Process(r.Context(), records)
	if err != nil {
		apperrors.WriteError(w, apperrors.ErrInternalServer)
		return
	}

	resp := AnalyzeResponse{
		Success:  true,
		Rows:     make([]RowView, 0, len(cleaned)),
		Summary:  summary,
		Duration: time.Since(start).String(),
	}
	resp.Counts.Total = len(cleaned)
	resp.Counts.Students = len(summary)
	for _, row := range cleaned {
		resp.Rows = append(resp.Rows, RowView{
			Name:    row.Name,
			Subject: row.Subject,
			Marks:   row.Marks,
			Status:  string(row.Status),
			Error:   row.Error(),
		})
		if row.Status == domain.RowValid {
			resp.Counts.Valid++
		} else {
			resp.Counts.Invalid++
		}
	}

	logger.InfoContext(r.Context(), "analyze request complete",
		slog.String("filename", header.Filename),
		slog.Int("total_rows", resp.Counts.Total),
		slog.Int("invalid_rows", resp.Counts.Invalid),
		slog.Int("students", resp.Counts.Students))

	render.JSON(w, r, resp)
}
