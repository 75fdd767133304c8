package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/wonny/stockscope/internal/analyzer"
	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/picker"
	"github.com/wonny/stockscope/internal/screener"
	"github.com/wonny/stockscope/pkg/logger"
)

// maxTopN bounds top_n on screen and daily-picks requests
const maxTopN = 100

// StockHandler handles analysis, screening and search endpoints
// ⭐ SSOT: 종목 분석 API 핸들러는 이 구조체에서만
type StockHandler struct {
	analyzer *analyzer.Analyzer
	screener *screener.Screener
	picker   *picker.Picker
	searcher contracts.SymbolSearcher
	validate *validator.Validate
	logger   *logger.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(
	a *analyzer.Analyzer,
	s *screener.Screener,
	p *picker.Picker,
	searcher contracts.SymbolSearcher,
	log *logger.Logger,
) *StockHandler {
	return &StockHandler{
		analyzer: a,
		screener: s,
		picker:   p,
		searcher: searcher,
		validate: validator.New(),
		logger:   log,
	}
}

// Analyze returns the full analysis for one ticker
// GET /api/analyze/{ticker}
func (h *StockHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ticker := contracts.NormalizeTicker(mux.Vars(r)["ticker"])

	result, err := h.analyzer.Analyze(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, contracts.ErrInvalidTicker) || errors.Is(err, contracts.ErrNoHistory) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.WithTicker(ticker).WithError(err).Error("Failed to analyze stock")
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error analyzing %s: %v", ticker, err))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ScreenRequest represents a batch screening request
type ScreenRequest struct {
	Tickers []string `json:"tickers" validate:"required,min=1,dive,max=16"`
	TopN    int      `json:"top_n" validate:"gte=0,lte=100"` // 0 = default 10
}

// Screen ranks a caller-supplied ticker list
// POST /api/screen
func (h *StockHandler) Screen(w http.ResponseWriter, r *http.Request) {
	var req ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	report, err := h.screener.Screen(r.Context(), req.Tickers, req.TopN)
	if err != nil {
		switch {
		case errors.Is(err, contracts.ErrNoTickers):
			respondError(w, http.StatusBadRequest, "No tickers provided")
		case errors.Is(err, contracts.ErrTooManyTickers):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.WithError(err).Error("Failed to screen stocks")
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error screening stocks: %v", err))
		}
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// DailyPicks returns today's top picks with reasoning
// GET /api/daily-picks?top_n=10
func (h *StockHandler) DailyPicks(w http.ResponseWriter, r *http.Request) {
	topN := 0
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTopN {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("top_n must be an integer between 1 and %d", maxTopN))
			return
		}
		topN = n
	}

	report, err := h.picker.Generate(r.Context(), topN)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate daily picks")
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error generating daily picks: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// SearchResponse wraps symbol search results
type SearchResponse struct {
	Query   string                   `json:"query"`
	Results []contracts.SearchResult `json:"results"`
}

// Search looks up equities by ticker or company name
// GET /api/search/{query}
func (h *StockHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(mux.Vars(r)["query"])

	results, err := h.searcher.Search(r.Context(), query)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Failed to search stocks")
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error searching %q: %v", query, err))
		return
	}
	if results == nil {
		results = []contracts.SearchResult{}
	}

	respondJSON(w, http.StatusOK, SearchResponse{
		Query:   query,
		Results: results,
	})
}

// validationMessage turns the first validator failure into a caller-facing message
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}

	fe := verrs[0]
	switch {
	case fe.Field() == "Tickers":
		return "No tickers provided"
	case strings.HasPrefix(fe.Field(), "Tickers["):
		return fmt.Sprintf("Invalid ticker at %s", fe.Field())
	case fe.Field() == "TopN":
		return fmt.Sprintf("top_n must be between 0 and %d", maxTopN)
	default:
		return fmt.Sprintf("Invalid field %s (%s)", fe.Field(), fe.Tag())
	}
}
