package collection

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(store CardStore) *fiber.App {
	app := fiber.New()
	handler := NewHandler(NewService(store, zap.NewNop()))
	handler.RegisterRoutes(app)
	return app
}

func TestHandleHealth(t *testing.T) {
	app := setupTestApp(newFakeStore())

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	store := newFakeStore()
	store.seed("neo", "201", "")
	store.seed("mh2", "42", "ja")

	app := setupTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/collection", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Count int `json:"count"`
		Cards []struct {
			ID      uint   `json:"id"`
			SetCode string `json:"set_code"`
		} `json:"cards"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Cards, 2)
	assert.Less(t, body.Cards[0].ID, body.Cards[1].ID, "insertion order")
}
