package bodyparser

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalsKey is the Fiber locals key holding the decoded body.
const LocalsKey = "body"

// New returns a middleware decoding JSON and URL-encoded form bodies.
//
// JSON bodies are decoded into a generic value (object, array or scalar).
// Form bodies become a map[string]any where repeated keys hold a []string.
// Other content types are left untouched. A malformed JSON body aborts the
// request with 400 Bad Request.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(c.Body()) == 0 {
			return c.Next()
		}

		contentType := strings.ToLower(string(c.Request().Header.ContentType()))
		switch {
		case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
			var payload any
			if err := c.App().Config().JSONDecoder(c.Body(), &payload); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "malformed JSON body")
			}
			c.Locals(LocalsKey, payload)
		case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
			c.Locals(LocalsKey, parseForm(c))
		}

		return c.Next()
	}
}

// Body returns the body decoded by the middleware, or nil.
func Body(c *fiber.Ctx) any {
	return c.Locals(LocalsKey)
}

func parseForm(c *fiber.Ctx) map[string]any {
	form := make(map[string]any)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k, v := string(key), string(value)
		switch existing := form[k].(type) {
		case nil:
			form[k] = v
		case string:
			form[k] = []string{existing, v}
		case []string:
			form[k] = append(existing, v)
		}
	})
	return form
}
