package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solar-sizer/internal/data"
	"solar-sizer/internal/model"
	"solar-sizer/internal/optimizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) (model.ProjectInput, optimizer.RankedConfiguration) {
	t.Helper()
	in := model.ProjectInput{
		City:                  "Barranquilla",
		MonthlyConsumptionKWh: 500,
		AutonomyPct:           100,
		PeakSunHours:          5.5,
		Connection:            model.ConnectionGridTied,
		TariffPerKWh:          600,
	}
	out, err := optimizer.Rank(in, data.DefaultCatalog(), optimizer.DefaultParams())
	require.NoError(t, err)
	return in, out[0]
}

func TestBuildPrompt(t *testing.T) {
	in, rc := fixture(t)
	p := BuildPrompt(in, rc)
	assert.Contains(t, p, "Barranquilla")
	assert.Contains(t, p, rc.Sized.Panel.Model)
	assert.Contains(t, p, rc.Sized.Inverter.Model)
	assert.Contains(t, p, "Payback:")
	assert.NotContains(t, p, "Storage:")
}

func TestClient_Success(t *testing.T) {
	var gotKey string
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"))
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A solid project."}]}}]}`))
	}))
	defer srv.Close()

	in, rc := fixture(t)
	c := NewClient("secret-key", srv.URL)
	text, err := c.Generate(context.Background(), in, rc)
	require.NoError(t, err)
	assert.Equal(t, "A solid project.", text)
	assert.Equal(t, "secret-key", gotKey)
	require.Len(t, gotReq.Contents, 1)
	assert.Contains(t, gotReq.Contents[0].Parts[0].Text, "Barranquilla")
	assert.Equal(t, 0.7, gotReq.GenerationConfig.Temperature)
}

func TestClient_Errors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		header map[string]string
		code   string
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, nil, "UNAUTHORIZED"},
		{"forbidden", http.StatusForbidden, `{}`, nil, "INVALID_API_KEY"},
		{"rate limited", http.StatusTooManyRequests, `{}`, map[string]string{"Retry-After": "30"}, "RATE_LIMIT_EXCEEDED"},
		{"server", http.StatusInternalServerError, `{"error":{"message":"boom"}}`, nil, "API_ERROR"},
		{"empty", http.StatusOK, `{"candidates":[]}`, nil, "EMPTY_RESPONSE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tc.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewClient("secret-key", srv.URL).Complete(context.Background(), "hi")
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "got %v", err)
			assert.Equal(t, tc.code, apiErr.Code)
			if tc.status == http.StatusTooManyRequests {
				assert.Equal(t, "30", apiErr.RetryAfter)
			}
			if tc.name == "server" {
				assert.Contains(t, apiErr.Message, "boom")
			}
		})
	}
}

func TestClient_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient("secret-key", srv.URL).Complete(context.Background(), "hi")
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_MissingKey(t *testing.T) {
	_, err := NewClient("", "").Complete(context.Background(), "hi")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "MISSING_API_KEY", apiErr.Code)
}

func TestClient_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient("secret-key", srv.URL).Complete(ctx, "hi")
	assert.ErrorIs(t, err, context.Canceled)
}
