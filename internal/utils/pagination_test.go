package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePage(t *testing.T, query string) Pagination {
	t.Helper()
	var got Pagination
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePagination(c, 10)
		return c.SendStatus(fiber.StatusNoContent)
	})
	_, err := app.Test(httptest.NewRequest("GET", "/"+query, nil))
	require.NoError(t, err)
	return got
}

func TestParsePagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Offset: 0}, parsePage(t, ""))
	assert.Equal(t, Pagination{Page: 3, Limit: 5, Offset: 10}, parsePage(t, "?page=3&limit=5"))
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Offset: 0}, parsePage(t, "?page=-2&limit=0"))
	assert.Equal(t, Pagination{Page: 2, Limit: 100, Offset: 100}, parsePage(t, "?page=2&limit=5000"))
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Offset: 0}, parsePage(t, "?page=abc"))
}

func TestPaginationMeta(t *testing.T) {
	meta := Pagination{Page: 2, Limit: 10, Offset: 10}.Meta(21)
	raw, err := json.Marshal(meta)
	require.NoError(t, err)
	assert.JSONEq(t, `{"current_page":2,"items_per_page":10,"total_items":21,"total_pages":3}`, string(raw))
}
