// Package web embeds the static admin builder and public form pages. Both
// are thin clients over the JSON API; the server holds no page state.
package web

import (
	"embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed static
var assets embed.FS

// Page serves one embedded static page.
func Page(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := assets.ReadFile("static/" + name)
		if err != nil {
			return fiber.ErrNotFound
		}
		c.Type("html", "utf-8")
		return c.Send(body)
	}
}
