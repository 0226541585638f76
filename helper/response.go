package helper

import "github.com/gofiber/fiber/v2"

// Response is the standard JSON envelope for the REST surface.
type Response struct {
	Code    int         `json:"code"`
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func Success(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Code:    200,
		Status:  "OK",
		Message: message,
		Data:    data,
	})
}

func Created(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Code:    201,
		Status:  "Created",
		Message: message,
		Data:    data,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	statusText := "Error"
	switch code {
	case fiber.StatusBadRequest:
		statusText = "Bad Request"
	case fiber.StatusNotFound:
		statusText = "Not Found"
	case fiber.StatusConflict:
		statusText = "Conflict"
	case fiber.StatusInternalServerError:
		statusText = "Internal Server Error"
	}

	return c.Status(code).JSON(Response{
		Code:    code,
		Status:  statusText,
		Message: message,
	})
}
