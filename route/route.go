package routes

import (
	"github.com/gofiber/fiber/v2"

	"college_backend/app/service"
	"college_backend/graph"
)

// RegisterRoutes wires both API surfaces onto the lecturer service: the
// REST endpoints under /api/v1 and the GraphQL endpoint at /graphql.
func RegisterRoutes(app *fiber.App, svc service.LecturerService) error {
	api := app.Group("/api/v1")
	SetupLecturerRoutes(api, svc)

	schema, err := graph.NewSchema(svc)
	if err != nil {
		return err
	}
	app.Post("/graphql", graph.NewHandler(schema))

	return nil
}
