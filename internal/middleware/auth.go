package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	// jwt parses and verifies the JSON Web Token sent in the Authorization header
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

// SubjectKey is the c.Locals key under which Auth stores the token's "sub" claim.
const SubjectKey = "subject"

// Auth returns a middleware that requires an "Authorization: Bearer <token>" header carrying a
// JWT signed with secret using HS256. Expired or not-yet-valid tokens are rejected by the
// parser. On success the token subject is stored in c.Locals(SubjectKey).
//
// The server only installs this when API_JWT_SECRET is configured; by default the sheet data
// endpoint is public.
func Auth(secret string) fiber.Handler {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		_, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err != nil {
			log.WithFields(log.Fields{
				"requestID": GetRequestID(c),
				"error":     err,
			}).Debug("rejected bearer token")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals(SubjectKey, claims.Subject)
		return c.Next()
	}
}
