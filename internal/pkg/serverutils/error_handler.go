// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"beauty-assistant-be/pkg/reply"
)

// ErrorHandlerMiddleware is the outermost safety net. The client contract is
// that every response carries a 200 with a reply string, so escaped errors and
// panics are flattened into the processing-error sentinel instead of a 5xx.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] Recovered from panic: %v", r)
				_ = ctx.Status(fiber.StatusOK).JSON(fiber.Map{
					"reply": reply.ProcessingErrorMessage,
				})
			}
		}()

		if err := ctx.Next(); err != nil {
			log.Printf("[ERROR] Unhandled handler error: %v", err)
			return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
				"reply": reply.ProcessingErrorMessage,
			})
		}
		return nil
	}
}
