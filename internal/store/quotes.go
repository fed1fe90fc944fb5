package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"solar-sizer/internal/model"
	"solar-sizer/internal/optimizer"

	"github.com/google/uuid"
)

const defaultQuoteLimit = 50

// Quote is a saved ranking run.
type Quote struct {
	ID        string
	Customer  string
	Input     model.ProjectInput
	Results   []optimizer.RankedConfiguration
	CreatedAt time.Time
}

// BestTotal is the investment of the first-ranked configuration, or 0.
func (q Quote) BestTotal() float64 {
	if len(q.Results) == 0 {
		return 0
	}
	return q.Results[0].Budget.Total
}

// QuoteSummary is a list entry without the stored results.
type QuoteSummary struct {
	ID        string
	Customer  string
	City      string
	Priority  model.Priority
	BestTotal float64
	CreatedAt time.Time
}

// SaveQuote assigns an ID and creation time to q and stores it.
func (s *Store) SaveQuote(ctx context.Context, q Quote) (Quote, error) {
	q.ID = uuid.NewString()
	q.CreatedAt = s.now()

	input, err := json.Marshal(q.Input)
	if err != nil {
		return Quote{}, fmt.Errorf("marshal quote input: %w", err)
	}
	results, err := json.Marshal(q.Results)
	if err != nil {
		return Quote{}, fmt.Errorf("marshal quote results: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO quotes (id, customer, city, priority, input_json, result_json, best_total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, q.ID, q.Customer, q.Input.City, string(q.Input.Priority), string(input), string(results), q.BestTotal(), q.CreatedAt); err != nil {
		return Quote{}, fmt.Errorf("insert quote: %w", err)
	}
	return q, nil
}

// GetQuote loads one quote. Unknown IDs return ErrNotFound.
func (s *Store) GetQuote(ctx context.Context, id string) (Quote, error) {
	var (
		q              Quote
		input, results string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, customer, input_json, result_json, created_at FROM quotes WHERE id = ?
	`, id).Scan(&q.ID, &q.Customer, &input, &results, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Quote{}, fmt.Errorf("quote %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Quote{}, fmt.Errorf("query quote: %w", err)
	}
	if err := json.Unmarshal([]byte(input), &q.Input); err != nil {
		return Quote{}, fmt.Errorf("decode quote input: %w", err)
	}
	if err := json.Unmarshal([]byte(results), &q.Results); err != nil {
		return Quote{}, fmt.Errorf("decode quote results: %w", err)
	}
	return q, nil
}

// ListQuotes returns the newest quotes first. limit <= 0 means 50.
func (s *Store) ListQuotes(ctx context.Context, limit int) ([]QuoteSummary, error) {
	if limit <= 0 {
		limit = defaultQuoteLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer, city, priority, best_total, created_at
		FROM quotes ORDER BY created_at DESC, id LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	out := []QuoteSummary{}
	for rows.Next() {
		var (
			q        QuoteSummary
			priority string
		)
		if err := rows.Scan(&q.ID, &q.Customer, &q.City, &priority, &q.BestTotal, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		q.Priority = model.Priority(priority)
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}
	return out, nil
}

// DeleteQuote removes a quote. Unknown IDs return ErrNotFound.
func (s *Store) DeleteQuote(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("quote %s: %w", id, ErrNotFound)
	}
	return nil
}
