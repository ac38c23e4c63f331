package middleware

import (
	"lighthouse/config"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	m := New(config.Config{})

	app := fiber.New()
	app.Use(m.TraceID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetTraceID(c))
	})

	tests := []struct {
		name     string
		incoming string
	}{
		{"propagates caller id", "trace-123"},
		{"generates id", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.incoming != "" {
				req.Header.Set(TraceIDHeader, tt.incoming)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)

			traceID := resp.Header.Get(TraceIDHeader)
			assert.NotEmpty(t, traceID)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, traceID)
			}
		})
	}
}
