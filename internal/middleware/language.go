package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/localization"
)

// CultureLocal is the fiber.Ctx Locals key holding the request culture
const CultureLocal = "culture"

// Language parses the Accept-Language header and stores the base language of
// its highest priority tag in Locals and in the request context.
// An absent header selects "en"; an unparsable one selects fallback.
func Language(fallback string) fiber.Handler {
	if fallback == "" {
		fallback = localization.DefaultCulture
	}

	return func(c *fiber.Ctx) error {
		culture, ok := localization.ParseCulture(c.Get(fiber.HeaderAcceptLanguage))
		if !ok {
			culture = fallback
		}

		c.Locals(CultureLocal, culture)
		c.SetUserContext(localization.WithCulture(c.UserContext(), culture))

		return c.Next()
	}
}
