package graph

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// NewHandler serves the schema over POST. Resolver failures come back in
// the standard errors array with a 200 status, per GraphQL convention.
func NewHandler(schema graphql.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req graphqlRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid graphql request body")
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.Context(),
		})
		return c.JSON(result)
	}
}
