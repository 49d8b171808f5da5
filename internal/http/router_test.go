package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itemdeck/internal/config"
	"itemdeck/internal/core/listview"
	"itemdeck/internal/domain/item"
	"itemdeck/internal/services/items"
	"itemdeck/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := items.NewService(memory.NewItemRepository())
	_, err := svc.Seed(context.Background(), item.Fruits())
	require.NoError(t, err)

	cfg := config.Cfg{
		App:   config.AppCfg{Env: "test"},
		Store: config.StoreCfg{Driver: config.DriverMemory},
	}
	return NewRouter(RouterDependencies{Config: cfg, ItemService: svc})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, map[string]string{"status": "ok", "env": "test", "store": "memory"}, body)
}

func TestItemsCRUD(t *testing.T) {
	h := newTestRouter(t)

	t.Run("list", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/api/items", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var got []item.Item
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		require.Len(t, got, 12)
		assert.Equal(t, "Apple", got[0].Name)
		assert.Equal(t, int64(12), got[11].ID)
	})

	t.Run("get", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/api/items/3", "")
		require.Equal(t, http.StatusOK, w.Code)
		var got item.Item
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "Cherry", got.Name)

		assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/items/99", "").Code)
		assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/items/abc", "").Code)
	})

	t.Run("create", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/items", `{"id":7,"name":"Papaya","description":"Orange papaya"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		var got item.Item
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, int64(13), got.ID)
		assert.Equal(t, "Papaya", got.Name)

		assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/items", `{"description":"x"}`).Code)
		assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/items", `{`).Code)
	})

	t.Run("update", func(t *testing.T) {
		w := do(t, h, http.MethodPut, "/api/items/2", `{"name":"Plantain","description":"Cooking banana"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var got item.Item
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, item.Item{ID: 2, Name: "Plantain", Description: "Cooking banana"}, got)

		assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/api/items/99", `{"name":"x"}`).Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := do(t, h, http.MethodDelete, "/api/items/1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Zero(t, w.Body.Len())
		assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/items/1", "").Code)
	})
}

func TestViewItems(t *testing.T) {
	h := newTestRouter(t)

	view := func(t *testing.T, query string) listview.Snapshot {
		t.Helper()
		w := do(t, h, http.MethodGet, "/api/items/view"+query, "")
		require.Equal(t, http.StatusOK, w.Code)
		var snap listview.Snapshot
		require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&snap))
		return snap
	}

	snap := view(t, "")
	assert.Len(t, snap.Items, 10)
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Equal(t, 2, snap.TotalPages)
	assert.Equal(t, 12, snap.TotalItems)
	assert.Equal(t, listview.SortByID, snap.SortBy)

	snap = view(t, "?search=APPLE")
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Apple", snap.Items[0].Name)

	snap = view(t, "?sortBy=name&sortOrder=desc&pageSize=5&page=3")
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "Banana", snap.Items[0].Name)
	assert.Equal(t, "Apple", snap.Items[1].Name)

	snap = view(t, "?pageSize=7&page=-1&sortBy=price")
	assert.Equal(t, listview.DefaultPageSize, snap.PageSize)
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Equal(t, listview.SortByID, snap.SortBy)

	snap = view(t, "?page=9223372036854775807&pageSize=50")
	assert.NotNil(t, snap.Items)
	assert.Empty(t, snap.Items)
	assert.Equal(t, math.MaxInt64, snap.CurrentPage)
	assert.Equal(t, 1, snap.TotalPages)
	assert.Equal(t, 12, snap.TotalItems)

	snap = view(t, "?search=zzz")
	assert.NotNil(t, snap.Items)
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.TotalPages)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodGet, "/api/items", "")

	w := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
