package common

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate parses the request body into T and validates it. On
// failure the problem response is already written and the error returned.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}
