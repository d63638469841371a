package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_LivePositions(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer sekret", r.Header.Get("Authorization"))
		require.Equal(t, "c-42", r.URL.Query().Get("customer"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"vehicle_registration":"1234KLM","lat":40.4,"lon":-3.7,"timestamp":1740823200},
			{"lat":1,"lon":2}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{
		BaseURL:    srv.URL,
		Path:       "/live-positions",
		CustomerID: "c-42",
		Bearer:     "sekret",
		Timeout:    5 * time.Second,
	}, zap.NewNop())

	positions, err := c.LivePositions(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 1)
	require.Equal(t, "1234KLM", positions[0].Registration)
	require.Equal(t, time.Unix(1740823200, 0).UTC(), positions[0].RecordedAt)
}

func TestClient_LivePositions_FeedError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, zap.NewNop())

	_, err := c.LivePositions(context.Background())
	require.Error(t, err)
}
