package bodyparser_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"fullstack-starter/core/middleware/bodyparser"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(bodyparser.New())
	app.Post("/echo", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"body": bodyparser.Body(c)})
	})
	return app
}

func decode(t *testing.T, app *fiber.App, contentType, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/echo", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestNew_JSON(t *testing.T) {
	status, out := decode(t, setupApp(), "application/json", `{"name":"NikoRoberts","tags":["a","b"]}`)

	assert.Equal(t, 200, status)
	assert.Equal(t, map[string]any{
		"name": "NikoRoberts",
		"tags": []any{"a", "b"},
	}, out["body"])
}

func TestNew_JSONWithCharset(t *testing.T) {
	status, out := decode(t, setupApp(), "application/json; charset=utf-8", `[1,2]`)

	assert.Equal(t, 200, status)
	assert.Equal(t, []any{float64(1), float64(2)}, out["body"])
}

func TestNew_MalformedJSON(t *testing.T) {
	status, _ := decode(t, setupApp(), "application/json", `{"name":`)
	assert.Equal(t, 400, status)
}

func TestNew_Form(t *testing.T) {
	status, out := decode(t, setupApp(), "application/x-www-form-urlencoded", "name=Niko&tag=a&tag=b")

	assert.Equal(t, 200, status)
	assert.Equal(t, map[string]any{
		"name": "Niko",
		"tag":  []any{"a", "b"},
	}, out["body"])
}

func TestNew_IgnoresOtherContentTypes(t *testing.T) {
	status, out := decode(t, setupApp(), "text/plain", "hello")

	assert.Equal(t, 200, status)
	assert.Nil(t, out["body"])
}

func TestNew_EmptyBody(t *testing.T) {
	status, out := decode(t, setupApp(), "application/json", "")

	assert.Equal(t, 200, status)
	assert.Nil(t, out["body"])
}
