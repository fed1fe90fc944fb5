package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"solar-sizer/internal/api/models"
	"solar-sizer/internal/model"
	"solar-sizer/internal/projection"
	"solar-sizer/internal/store"

	"github.com/gin-gonic/gin"
)

// QuoteStore persists ranking runs.
type QuoteStore interface {
	SaveQuote(ctx context.Context, q store.Quote) (store.Quote, error)
	GetQuote(ctx context.Context, id string) (store.Quote, error)
	ListQuotes(ctx context.Context, limit int) ([]store.QuoteSummary, error)
	DeleteQuote(ctx context.Context, id string) error
}

type QuoteHandler struct {
	engine *Engine
	store  QuoteStore
}

func NewQuoteHandler(engine *Engine, s QuoteStore) *QuoteHandler {
	return &QuoteHandler{engine: engine, store: s}
}

// CreateQuote handles POST /api/v1/quotes
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	ctx := c.Request.Context()
	in, _, err := h.engine.Resolve(ctx, req.ProjectRequest)
	if err != nil {
		respondError(c, err)
		return
	}
	results, _, err := h.engine.Rank(in)
	if err != nil {
		respondError(c, err)
		return
	}

	q, err := h.store.SaveQuote(ctx, store.Quote{
		Customer: req.Customer,
		Input:    in,
		Results:  results,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewQuoteResponse(q))
}

// ListQuotes handles GET /api/v1/quotes?limit=
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			badRequest(c, "INVALID_REQUEST", fmt.Errorf("limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	list, err := h.store.ListQuotes(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.QuoteSummaryResponse, 0, len(list))
	for _, q := range list {
		out = append(out, models.NewQuoteSummaryResponse(q))
	}
	c.JSON(http.StatusOK, gin.H{"quotes": out, "count": len(out)})
}

// GetQuote handles GET /api/v1/quotes/:id
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.store.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewQuoteResponse(q))
}

// DeleteQuote handles DELETE /api/v1/quotes/:id
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.store.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSchedule handles GET /api/v1/quotes/:id/schedule?strategy=cost and
// streams the full cash-flow schedule as CSV.
func (h *QuoteHandler) GetSchedule(c *gin.Context) {
	priority, err := model.ParsePriority(c.Query("strategy"))
	if err != nil {
		respondError(c, err)
		return
	}
	q, err := h.store.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	for _, rc := range q.Results {
		if rc.Strategy != priority {
			continue
		}
		filename := fmt.Sprintf("quote-%s-%s.csv", q.ID, priority)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Status(http.StatusOK)
		if err := projection.WriteScheduleCSV(c.Writer, rc.Projection.CashFlows); err != nil {
			_ = c.Error(err)
		}
		return
	}
	respondError(c, fmt.Errorf("quote %s has no %s configuration: %w", q.ID, priority, store.ErrNotFound))
}
