package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shootup-backend/config"
	"shootup-backend/internal/routes"
)

// Without a configured store the liveness endpoints still answer and
// everything under /api degrades to 503.
func TestRegister_NoStore(t *testing.T) {
	app := fiber.New()
	routes.Register(app, routes.Deps{Cfg: config.Config{MongoDB: "shootup"}})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/hello", http.StatusOK},
		{http.MethodGet, "/test", http.StatusOK},
		{http.MethodGet, "/api/events/explore", http.StatusServiceUnavailable},
		{http.MethodPost, "/api/events", http.StatusServiceUnavailable},
		{http.MethodPost, "/api/events/join", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/user/u1", http.StatusServiceUnavailable},
		{http.MethodPost, "/api/media", http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
