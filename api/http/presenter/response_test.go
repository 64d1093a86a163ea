package presenter

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	tests := []struct {
		path string
		code int
		body string
	}{
		{"/boom", fiber.StatusInternalServerError, `{"detail":"boom"}`},
		{"/teapot", fiber.StatusTeapot, `{"detail":"short and stout"}`},
		{"/missing", fiber.StatusNotFound, `{"detail":"Cannot GET /missing"}`},
	}
	for _, tc := range tests {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, tc.code, resp.StatusCode, tc.path)
		assert.JSONEq(t, tc.body, string(body), tc.path)
	}
}
