package academia

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"academia-backend/lib/browser"
	scraper "academia-backend/lib/scrapers/academia"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/academia")

// Scraper runs one full pipeline execution for the given credentials.
type Scraper func(ctx context.Context, creds scraper.Credentials) (*scraper.StudentRecord, error)

type Options struct {
	BaseUrl string
	Browser browser.Options
}

type Service struct {
	scrape Scraper
}

func NewService(opts Options) Service {
	return Service{
		scrape: func(ctx context.Context, creds scraper.Credentials) (*scraper.StudentRecord, error) {
			return scraper.Run(ctx, scraper.RunOptions{
				BaseUrl: opts.BaseUrl,
				Browser: opts.Browser,
			}, creds)
		},
	}
}

func (s Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /scrape", s.handleScrape)
}

func (s Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, map[string]string{"status": "ok"})
}

type scrapeRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type scrapeResponse struct {
	Status string                 `json:"status"`
	Data   *scraper.StudentRecord `json:"data,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// one pipeline run per request, the full record or nothing
func (s Service) handleScrape(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleScrape")
	defer span.End()

	var req scrapeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Email == "" || req.Password == "" {
		writeJson(w, http.StatusBadRequest, scrapeResponse{
			Status: "error",
			Error:  "expected a json body with email and password",
		})
		return
	}

	runId, err := random.String(8)
	if err != nil {
		runId = "unknown"
	}
	span.SetAttributes(attribute.String("run_id", runId))
	slog.InfoContext(ctx, "scrape requested", "run_id", runId)

	record, err := s.scrape(ctx, scraper.Credentials{
		Identifier: req.Email,
		Secret:     req.Password,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "scrape failed", "run_id", runId, "err", err)
		writeJson(w, statusForError(err), scrapeResponse{
			Status: "error",
			Error:  err.Error(),
		})
		return
	}

	slog.InfoContext(ctx, "scrape succeeded", "run_id", runId)
	writeJson(w, http.StatusOK, scrapeResponse{
		Status: "success",
		Data:   record,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, scraper.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, scraper.ErrNavigationTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, scraper.ErrNetwork), errors.Is(err, scraper.ErrParse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("failed to encode response body", "err", err)
	}
}
