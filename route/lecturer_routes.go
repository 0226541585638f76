package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"college_backend/app/model"
	"college_backend/app/repository"
	"college_backend/app/service"
	"college_backend/helper"
)

// SetupLecturerRoutes registers the REST endpoints under /lecturers. Each
// handler is a thin translation onto the lecturer service; the service
// errors map to 404 and 409, everything else is a 500.
func SetupLecturerRoutes(api fiber.Router, svc service.LecturerService) {
	lecturers := api.Group("/lecturers")

	// POST /api/v1/lecturers
	lecturers.Post("/", func(c *fiber.Ctx) error {
		var input model.LecturerInput
		if err := c.BodyParser(&input); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
		}

		created, err := svc.Create(c.Context(), input)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return helper.Error(c, fiber.StatusConflict, err.Error())
			}
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.Created(c, created, "lecturer created")
	})

	// GET /api/v1/lecturers
	lecturers.Get("/", func(c *fiber.Ctx) error {
		result, err := svc.GetAll(c.Context())
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if result == nil {
			result = []model.Lecturer{}
		}
		return helper.Success(c, result, "")
	})

	// GET /api/v1/lecturers/search?department=X
	// Registered before /:id so "search" is not read as an id.
	lecturers.Get("/search", func(c *fiber.Ctx) error {
		result, err := svc.FindByDepartment(c.Context(), c.Query("department"))
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if result == nil {
			result = []model.Lecturer{}
		}
		return helper.Success(c, result, "")
	})

	// GET /api/v1/lecturers/:id
	lecturers.Get("/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid lecturer ID format")
		}

		lecturer, err := svc.GetByID(c.Context(), id)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if lecturer == nil {
			// Absence is not an error: empty 404, no error payload.
			return c.SendStatus(fiber.StatusNotFound)
		}
		return helper.Success(c, lecturer, "")
	})

	// PUT /api/v1/lecturers/:id
	lecturers.Put("/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid lecturer ID format")
		}

		var input model.LecturerInput
		if err := c.BodyParser(&input); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
		}

		updated, err := svc.Update(c.Context(), id, input)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return helper.Error(c, fiber.StatusNotFound, err.Error())
			}
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return helper.Error(c, fiber.StatusConflict, err.Error())
			}
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.Success(c, updated, "lecturer updated")
	})

	// DELETE /api/v1/lecturers/:id
	lecturers.Delete("/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid lecturer ID format")
		}

		if err := svc.Delete(c.Context(), id); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
