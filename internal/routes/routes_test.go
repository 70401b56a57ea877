package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/pharmasite/internal/config"
	"github.com/example/pharmasite/internal/handlers"
)

func newTestApp() *fiber.App {
	log := zap.NewNop()
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(log)})
	Register(app, nil, &config.Config{SiteURL: "https://pharma.example"}, log)
	return app
}

func TestRegisterWithoutDatabase(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/robots.txt", "", http.StatusOK},
		{http.MethodGet, "/sitemap.xml", "", http.StatusInternalServerError},
		{http.MethodGet, "/api/categories", "", http.StatusOK},
		{http.MethodGet, "/api/testimonials", "", http.StatusOK},
		{http.MethodGet, "/api/products", "", http.StatusInternalServerError},
		{http.MethodGet, "/api/blog/posts", "", http.StatusInternalServerError},
		{http.MethodPost, "/api/contact", `{"name":"A","email":"a@b.co","message":"hi"}`, http.StatusInternalServerError},
		{http.MethodPost, "/api/contact", `{"name":"A"}`, http.StatusBadRequest},
		{http.MethodPost, "/api/admin/login", `{"email":"a@b.co","password":"x"}`, http.StatusServiceUnavailable},
		{http.MethodGet, "/api/admin/stats", "", http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, bytes.NewBufferString(tc.body))
		if tc.body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err, tc.target)
		assert.Equal(t, tc.want, resp.StatusCode, "%s %s", tc.method, tc.target)
	}
}
