package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binderapp/binder/internal/domain"
)

func TestHandleGetSnapshots(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, snap := range []domain.ValueSnapshot{
		{Date: "2026-08-20", TotalCards: 3, OwnedCards: 1, CollectionValue: decimal.RequireFromString("6"), RecordedAt: time.Now().UTC()},
		{Date: "2026-08-19", TotalCards: 3, OwnedCards: 1, CollectionValue: decimal.RequireFromString("5.50"), RecordedAt: time.Now().UTC()},
	} {
		require.NoError(t, env.snapshots.Record(ctx, snap))
	}

	req := httptest.NewRequest("GET", "/api/v1/snapshots", nil)
	w := httptest.NewRecorder()
	HandleGetSnapshots(env.snapshots).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SnapshotListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	// Oldest first, regardless of recording order
	assert.Equal(t, "2026-08-19", resp.Snapshots[0].Date)
	assert.Equal(t, "2026-08-20", resp.Snapshots[1].Date)
}

func TestHandleGetSnapshots_Empty(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/api/v1/snapshots", nil)
	w := httptest.NewRecorder()
	HandleGetSnapshots(env.snapshots).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SnapshotListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Snapshots)
}
