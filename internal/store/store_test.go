package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"solar-sizer/internal/data"
	"solar-sizer/internal/db"
	"solar-sizer/internal/migrations"
	"solar-sizer/internal/model"
	"solar-sizer/internal/optimizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, migrations.Up(conn))
	return New(conn)
}

func TestMigrations_Version(t *testing.T) {
	s := newTestStore(t)
	v, err := migrations.Version(s.db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	// Re-running is a no-op.
	require.NoError(t, migrations.Up(s.db))
	require.NoError(t, s.Ping(context.Background()))
}

func TestSettings_DefaultsAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)

	want := Settings{ExchangeRate: 3950.5, TariffPerKWh: 812, NarrativeAPIKey: "key-123"}
	require.NoError(t, s.SaveSettings(ctx, want))
	got, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	want.NarrativeAPIKey = ""
	want.TariffPerKWh = 700
	require.NoError(t, s.SaveSettings(ctx, want))
	got, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettings_Invalid(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	assert.Error(t, s.SaveSettings(ctx, Settings{ExchangeRate: 0, TariffPerKWh: 600}))
	assert.Error(t, s.SaveSettings(ctx, Settings{ExchangeRate: 4200, TariffPerKWh: -1}))

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
}

func rankedFixture(t *testing.T) (model.ProjectInput, []optimizer.RankedConfiguration) {
	t.Helper()
	in := model.ProjectInput{
		City:                  "Cali",
		MonthlyConsumptionKWh: 450,
		AutonomyPct:           100,
		PeakSunHours:          4.7,
		Connection:            model.ConnectionHybrid,
		Category:              model.CategoryResidential,
		Priority:              model.PriorityQuality,
		RequiresBattery:       true,
		TariffPerKWh:          600,
		ExchangeRate:          4200,
	}
	out, err := optimizer.Rank(in, data.DefaultCatalog(), optimizer.DefaultParams())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	return in, out
}

func TestQuotes_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	in, results := rankedFixture(t)
	saved, err := s.SaveQuote(ctx, Quote{Customer: "Ana", Input: in, Results: results})
	require.NoError(t, err)
	assert.Len(t, saved.ID, 36)
	assert.Equal(t, clock, saved.CreatedAt)

	got, err := s.GetQuote(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Ana", got.Customer)
	assert.Equal(t, in, got.Input)
	assert.Equal(t, results, got.Results)
	assert.True(t, clock.Equal(got.CreatedAt))
}

func TestQuotes_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	in, results := rankedFixture(t)
	first, err := s.SaveQuote(ctx, Quote{Customer: "first", Input: in, Results: results})
	require.NoError(t, err)
	clock = clock.Add(time.Hour)
	second, err := s.SaveQuote(ctx, Quote{Customer: "second", Input: in})
	require.NoError(t, err)

	list, err := s.ListQuotes(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, "Cali", list[1].City)
	assert.Equal(t, model.PriorityQuality, list[1].Priority)
	assert.Equal(t, results[0].Budget.Total, list[1].BestTotal)
	assert.Zero(t, list[0].BestTotal)

	list, err = s.ListQuotes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestQuotes_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.GetQuote(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteQuote(ctx, "missing"), ErrNotFound)

	in, _ := rankedFixture(t)
	q, err := s.SaveQuote(ctx, Quote{Input: in})
	require.NoError(t, err)
	require.NoError(t, s.DeleteQuote(ctx, q.ID))
	_, err = s.GetQuote(ctx, q.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := s.ListQuotes(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
