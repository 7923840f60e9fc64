package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bistroworks/bistro-server/models"
	"github.com/bistroworks/bistro-server/web/memory"
)

func newMenuHandlers(t *testing.T) (*MenuHandlers, *memory.MenuRepo) {
	t.Helper()

	menu := memory.NewMenuRepo()

	return &MenuHandlers{Deps: Dependencies{Menu: menu}}, menu
}

func TestMenuCreateAndList(t *testing.T) {
	h, _ := newMenuHandlers(t)

	body, err := json.Marshal(models.MenuItem{Name: "Margherita", Category: "Pizza", Price: 12.5})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/menu", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.InsertResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.InsertedID)

	req = httptest.NewRequest(http.MethodGet, "/menu", nil)
	rec = httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.MenuItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita", items[0].Name)
}

func TestMenuDelete(t *testing.T) {
	h, menu := newMenuHandlers(t)

	item := models.MenuItem{Name: "Diavola", Category: "Pizza", Price: 11.5}
	require.NoError(t, menu.Create(context.Background(), &item))

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		expectedCount  int64
	}{
		{name: "Existing", id: item.ID.Hex(), expectedStatus: http.StatusOK, expectedCount: 1},
		// A nonexistent id is a no-op success, not an error.
		{name: "Nonexistent", id: primitive.NewObjectID().Hex(), expectedStatus: http.StatusOK, expectedCount: 0},
		{name: "Malformed", id: "not-an-object-id", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/menu/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()

			h.Delete(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp models.DeleteResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCount, resp.DeletedCount)
			}
		})
	}
}
