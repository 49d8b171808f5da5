package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"itemdeck/internal/core/listview"
	"itemdeck/internal/domain/item"
	"itemdeck/internal/services/items"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ListItems returns the whole collection as a JSON array
func ListItems(svc *items.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}

// GetItem returns one item
func GetItem(svc *items.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		it, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, it)
	}
}

// CreateItem stores the posted item and returns it with its id
func CreateItem(svc *items.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in item.Item
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		created, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// UpdateItem replaces the item named by the path id
func UpdateItem(svc *items.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var in item.Item
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		updated, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// DeleteItem removes an item and answers with an empty body
func DeleteItem(svc *items.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ViewItems runs the list view pipeline server-side
func ViewItems(svc *items.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.View(r.Context(), parseViewParams(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// parseViewParams reads search, sortBy, sortOrder, page and pageSize. Missing
// or invalid values keep their defaults.
func parseViewParams(r *http.Request) listview.Params {
	q := r.URL.Query()
	p := listview.DefaultParams()
	p.SearchTerm = q.Get("search")
	if f, ok := listview.ParseSortField(q.Get("sortBy")); ok {
		p.SortField = f
	}
	if o, ok := listview.ParseSortOrder(q.Get("sortOrder")); ok {
		p.SortOrder = o
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n >= 1 {
		p.PageIndex = n
	}
	if n, err := strconv.Atoi(q.Get("pageSize")); err == nil && listview.ValidPageSize(n) {
		p.PageSize = n
	}
	return p
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, item.ErrNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
	case errors.Is(err, item.ErrInvalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error().Err(err).Msg("item request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
