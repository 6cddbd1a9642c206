package greeting

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupTestApp(h *Handler) *fiber.App {
	app := fiber.New()
	app.Get(Prefix+"/:name", h.HandleSayHello)
	return app
}

func call(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHandleSayHello_Success(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := setupTestApp(NewHandler(zap.New(core)))

	status, body := call(t, app, "/api/say-hello/NikoRoberts")

	assert.Equal(t, StatusSuccess, status)
	assert.JSONEq(t, `{"response":"hello"}`, body)

	entries := logs.FilterField(zap.String("name", "NikoRoberts")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
}

func TestHandleSayHello_Sentinel(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := setupTestApp(NewHandler(zap.New(core)))

	status, body := call(t, app, "/api/say-hello/userfail")

	assert.Equal(t, 400, status)
	assert.JSONEq(t, `{"response":"error"}`, body)
	assert.NotContains(t, body, ErrUserTriggered.Error())

	entries := logs.FilterLevelExact(zap.ErrorLevel).All()
	require.Len(t, entries, 1)
	assert.Equal(t, ErrUserTriggered.Error(), entries[0].ContextMap()["error"])
}

func TestHandleSayHello_DecodesName(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
		wantName   string
	}{
		{"EncodedSentinel", "/api/say-hello/user%66ail", 400, `{"response":"error"}`, ""},
		{"EncodedSpace", "/api/say-hello/Niko%20Roberts", StatusSuccess, `{"response":"hello"}`, "Niko Roberts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			app := setupTestApp(NewHandler(zap.New(core)))

			status, body := call(t, app, tt.path)

			assert.Equal(t, tt.wantStatus, status)
			assert.JSONEq(t, tt.wantBody, body)
			if tt.wantName != "" {
				require.Len(t, logs.FilterField(zap.String("name", tt.wantName)).All(), 1)
			} else {
				require.Len(t, logs.FilterMessage("Greeting failed").All(), 1)
			}
		})
	}
}

func TestHandleSayHello_InvalidEscape(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := setupTestApp(NewHandler(zap.New(core)))

	req := httptest.NewRequest("GET", "/", nil)
	req.URL.Opaque = "/api/say-hello/bad%zz"
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	assert.JSONEq(t, `{"response":"error"}`, string(body))
	require.Len(t, logs.FilterMessage("Greeting failed").All(), 1)
}

func TestHandleSayHello_RecoversUnexpectedFailure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := NewHandler(zap.New(core))
	h.name = func(c *fiber.Ctx) (string, error) {
		panic("cannot read parameter")
	}

	status, body := call(t, setupTestApp(h), "/api/say-hello/NikoRoberts")

	assert.Equal(t, 400, status)
	assert.JSONEq(t, `{"response":"error"}`, body)
	require.Len(t, logs.FilterMessage("Greeting failed unexpectedly").All(), 1)
}

func TestHandleSayHello_Idempotent(t *testing.T) {
	app := setupTestApp(NewHandler(nil))

	for _, name := range []string{"NikoRoberts", "userfail"} {
		status1, body1 := call(t, app, "/api/say-hello/"+name)
		status2, body2 := call(t, app, "/api/say-hello/"+name)
		assert.Equal(t, status1, status2, name)
		assert.Equal(t, body1, body2, name)
	}
}

func TestController(t *testing.T) {
	c := NewController(zap.NewNop())

	assert.Equal(t, "greeting", c.Name())
	assert.Equal(t, "/api/say-hello", c.Prefix())
	require.Len(t, c.Routes(), 1)
	assert.Equal(t, fiber.MethodGet, c.Routes()[0].Method)
	assert.Equal(t, "/:name", c.Routes()[0].Path)
	assert.NotNil(t, c.Routes()[0].Handler)
}
