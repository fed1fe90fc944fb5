package store

import (
	"context"
	"fmt"
	"strconv"
)

const (
	DefaultExchangeRate = 4200.0 // COP per USD
	DefaultTariffPerKWh = 600.0  // COP per kWh

	keyExchangeRate    = "exchange_rate"
	keyTariffPerKWh    = "tariff_per_kwh"
	keyNarrativeAPIKey = "narrative_api_key"
)

// Settings are the user preferences the API fills into a project when the
// request omits them.
type Settings struct {
	ExchangeRate    float64
	TariffPerKWh    float64
	NarrativeAPIKey string
}

func DefaultSettings() Settings {
	return Settings{
		ExchangeRate: DefaultExchangeRate,
		TariffPerKWh: DefaultTariffPerKWh,
	}
}

// GetSettings returns the stored settings, with defaults for unset keys.
func (s *Store) GetSettings(ctx context.Context) (Settings, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return Settings{}, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	out := DefaultSettings()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return Settings{}, fmt.Errorf("scan setting: %w", err)
		}
		switch k {
		case keyExchangeRate:
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
				out.ExchangeRate = f
			}
		case keyTariffPerKWh:
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
				out.TariffPerKWh = f
			}
		case keyNarrativeAPIKey:
			out.NarrativeAPIKey = v
		}
	}
	if err := rows.Err(); err != nil {
		return Settings{}, fmt.Errorf("iterate settings: %w", err)
	}
	return out, nil
}

// SaveSettings upserts every field of settings in one transaction.
func (s *Store) SaveSettings(ctx context.Context, settings Settings) error {
	if settings.ExchangeRate <= 0 {
		return fmt.Errorf("exchange rate must be > 0, got %v", settings.ExchangeRate)
	}
	if settings.TariffPerKWh <= 0 {
		return fmt.Errorf("tariff must be > 0, got %v", settings.TariffPerKWh)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settings tx: %w", err)
	}
	defer tx.Rollback()

	now := s.now()
	values := map[string]string{
		keyExchangeRate:    strconv.FormatFloat(settings.ExchangeRate, 'f', -1, 64),
		keyTariffPerKWh:    strconv.FormatFloat(settings.TariffPerKWh, 'f', -1, 64),
		keyNarrativeAPIKey: settings.NarrativeAPIKey,
	}
	for k, v := range values {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, k, v, now); err != nil {
			return fmt.Errorf("upsert setting %s: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settings: %w", err)
	}
	return nil
}
