package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sitetive/forms-backend/internal/config"
	"github.com/sitetive/forms-backend/internal/handlers"
	"github.com/sitetive/forms-backend/internal/middleware"
	"github.com/sitetive/forms-backend/web"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	sessions *session.Store,
	authHandler *handlers.AuthHandler,
	formHandler *handlers.FormHandler,
	submissionHandler *handlers.SubmissionHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Login gets a stricter limit: 10 req/min per IP
	api.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)
	api.Post("/logout", authHandler.Logout)

	protected := middleware.Protected(sessions, cfg)

	api.Get("/user", protected, authHandler.CurrentUser)

	// Forms: reads are public, mutations require auth
	api.Get("/forms", formHandler.List)
	api.Get("/forms/:id", formHandler.Get)
	api.Post("/forms", protected, formHandler.Create)
	api.Put("/forms/:id", protected, formHandler.Update)
	api.Delete("/forms/:id", protected, formHandler.Delete)

	// Submissions: create is public, reading responses is admin-only
	api.Post("/forms/:id/submissions", submissionHandler.Create)
	api.Get("/forms/:id/submissions", protected, submissionHandler.ListByForm)
	api.Patch("/submissions/:id", protected, submissionHandler.AttachFile)

	// Embedded client pages
	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/admin") })
	app.Get("/admin", web.Page("admin.html"))
	app.Get("/f/:id", web.Page("form.html"))
}
