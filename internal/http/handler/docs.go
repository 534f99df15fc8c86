package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"docfs/docs"
)

// RegisterDocs serves the Swagger UI under /swagger. The advertised host is
// fixed here, before serving, because docs.SwaggerInfo is shared by all requests.
func RegisterDocs(app *fiber.App, host string) {
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = []string{"http"}
	app.Get("/swagger/*", swagger.HandlerDefault)
}
