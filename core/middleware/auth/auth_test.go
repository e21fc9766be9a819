package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: key}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		query  string
		want   int
	}{
		{"Disabled", "", "", "", 200},
		{"Missing", "secret", "", "", 401},
		{"Wrong", "secret", "nope", "", 401},
		{"Header", "secret", "secret", "", 200},
		{"Query", "secret", "", "secret", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			resp, err := newApp(tt.key).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
