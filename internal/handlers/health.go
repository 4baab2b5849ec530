// Package handlers contains the HTTP route handler functions for the sheet data API.
// Each handler corresponds to one endpoint: it reads the request, does the work and writes the
// response.
package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health.
// It returns {"status":"ok"} without touching the spreadsheet, so load balancers and container
// probes can check the process is up without spending Sheets API quota.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
