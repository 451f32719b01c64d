package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/domain"
)

func TestHandleExportCollection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.collection.SetQuantities(ctx, "c1", 2, 1)
	require.NoError(t, err)
	_, err = env.collection.ToggleWanted(ctx, "c3")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/collection/export", nil)
	w := httptest.NewRecorder()
	HandleExportCollection(env.collection).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".json")

	var entries []domain.CollectionEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "c1", entries[0].CardID)
	assert.Equal(t, "c3", entries[1].CardID)
}

func TestHandleImportCollection(t *testing.T) {
	env := newTestEnv(t)

	payload := `[
		{"itemId":"c1","normalQty":3,"foilQty":0},
		{"itemId":"c2","normalQty":0,"foilQty":1,"wanted":true},
		{"normalQty":9,"foilQty":9}
	]`

	req := httptest.NewRequest("POST", "/api/v1/collection/import", bytes.NewBufferString(payload))
	w := httptest.NewRecorder()
	HandleImportCollection(env.collection).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result collection.ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Kept)
	assert.Equal(t, 1, result.Dropped)

	entries := env.collection.GetAll(context.Background())
	require.Len(t, entries, 2)
	assert.Equal(t, 3, entries[0].NormalQty)
}

func TestHandleImportCollection_RejectsNonArray(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.collection.SetQuantities(context.Background(), "c1", 1, 0)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/collection/import", bytes.NewBufferString(`{"a":1}`))
	w := httptest.NewRecorder()
	HandleImportCollection(env.collection).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgImportNotArray)

	// The rejected import must not have touched the ledger
	entries := env.collection.GetAll(context.Background())
	require.Len(t, entries, 1)
	assert.Equal(t, "c1", entries[0].CardID)
}
