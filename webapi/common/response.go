// Package common holds the response envelope, problem-details rendering and
// request binding shared by all webapi handlers.
package common

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the standard envelope for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. When err is a
// domain error it is mapped to a status code, otherwise 500 is used; an
// optional detail overrides the error text.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, detail ...string) error {
	status := fiber.StatusInternalServerError
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Instance: c.OriginalURL(),
	}
	if err != nil {
		status = ErrorToStatusCode(err)
		pd.Detail = err.Error()
	}
	if len(detail) > 0 {
		pd.Detail = detail[0]
	}
	pd.Status = status
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// ErrorResponseJSON writes a problem response with an explicit status.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Instance: c.OriginalURL(),
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}
