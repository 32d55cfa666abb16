package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimit(t *testing.T) {
	app := fiber.New()
	var got int
	app.Get("/items", func(c *fiber.Ctx) error {
		got = parseLimit(c, 10)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"Default", "", 10},
		{"Explicit", "?limit=25", 25},
		{"Zero falls back", "?limit=0", 10},
		{"Negative falls back", "?limit=-3", 10},
		{"Capped", "?limit=5000", maxPaginationLimit},
		{"Garbage falls back", "?limit=abc", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/items"+tt.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	s := &Server{}
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	t.Run("Valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/things/42", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Non-numeric", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/things/abc", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Zero", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/things/0", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "ID", humanizeParam("id"))
	assert.Equal(t, "user ID", humanizeParam("userId"))
	assert.Equal(t, "request ID", humanizeParam("requestId"))
	assert.Equal(t, "ticket", humanizeParam("ticket"))
}
