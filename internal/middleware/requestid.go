// Package middleware contains HTTP middleware for the sheet data API.
// Middleware runs before route handlers and is the place for cross-cutting concerns like
// request tracing and authentication.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the c.Locals key under which the request ID is stored.
const RequestIDKey = "requestID"

// RequestID tags every request with an ID so log lines from one request can be tied together.
// An ID supplied by the caller (or a proxy in front of us) is reused; otherwise a new UUID is
// generated. The ID is echoed back in the response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// GetRequestID returns the ID stored by RequestID, or "" if the middleware did not run.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}
