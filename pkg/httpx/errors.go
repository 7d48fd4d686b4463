package httpx

import (
	"errors"
	"net/http"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

var ErrRegistry = errx.NewRegistry("HTTP")

var (
	CodeInvalidID   = ErrRegistry.Register("INVALID_ID", errx.TypeValidation, http.StatusBadRequest, "Invalid identifier")
	CodeInvalidBody = ErrRegistry.Register("INVALID_BODY", errx.TypeValidation, http.StatusBadRequest, "Invalid request body")
	CodeMissingFile = ErrRegistry.Register("MISSING_FILE", errx.TypeValidation, http.StatusBadRequest, "File is required")
)

func ErrInvalidID(raw string) *errx.Error {
	return ErrRegistry.New(CodeInvalidID).WithDetail("id", raw)
}

func ErrInvalidBody(err error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeInvalidBody, err)
}

// ErrorHandler converts errors to the standard JSON error body
func ErrorHandler(debug bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		requestID := c.GetRespHeader(fiber.HeaderXRequestID, c.Get(fiber.HeaderXRequestID))

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{
				"error":      fe.Message,
				"code":       "FIBER_ERROR",
				"status":     fe.Code,
				"request_id": requestID,
			})
		}

		if e, ok := errx.As(err); ok {
			entry := logx.WithFields(logx.Fields{
				"path":       c.Path(),
				"method":     c.Method(),
				"code":       e.Code,
				"request_id": requestID,
			})
			if e.HTTPStatus >= http.StatusInternalServerError {
				entry.Errorf("Request error: %v", err)
			} else {
				entry.Warnf("Request rejected: %v", err)
			}

			response := fiber.Map{
				"error":      e.Message,
				"code":       e.Code,
				"type":       string(e.Type),
				"status":     e.HTTPStatus,
				"request_id": requestID,
			}
			if len(e.Details) > 0 {
				response["details"] = e.Details
			}
			if debug && e.Err != nil {
				response["underlying_error"] = e.Err.Error()
			}
			return c.Status(e.HTTPStatus).JSON(response)
		}

		logx.WithFields(logx.Fields{
			"path":       c.Path(),
			"method":     c.Method(),
			"request_id": requestID,
		}).Errorf("Request error: %v", err)

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":      "Internal Server Error",
			"type":       "INTERNAL",
			"code":       "INTERNAL_ERROR",
			"message":    "An unexpected error occurred. Please contact support if the issue persists.",
			"request_id": requestID,
		})
	}
}

// NotFound handles unmatched routes
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":      "Route not found",
		"code":       "NOT_FOUND",
		"path":       c.Path(),
		"method":     c.Method(),
		"message":    "The requested endpoint does not exist. Visit /api/v1/docs for documentation.",
		"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
	})
}
