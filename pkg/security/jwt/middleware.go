package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/recruitment/pkg/auth"
)

const localActor = "actor"

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256)
// and stores the caller as an auth.Actor in c.Locals.
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		// "Bearer <token>" или просто "<token>"
		tokenStr := header
		if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
			tokenStr = strings.TrimSpace(rest)
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		claims, err := Verify(tokenStr, secretBytes, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		actor, err := claims.Actor()
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token claims"})
		}
		c.Locals(localActor, actor)
		return c.Next()
	}
}

// RequireRoles lets the request through only for the listed roles. ADMIN is always allowed.
func RequireRoles(roles ...auth.Role) fiber.Handler {
	allowed := make(map[auth.Role]struct{}, len(roles)+1)
	allowed[auth.RoleAdmin] = struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "unauthenticated"})
		}
		if _, ok := allowed[actor.Role]; !ok {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "insufficient role"})
		}
		return c.Next()
	}
}

// ActorFrom reads the authenticated actor placed by NewAuthMiddleware.
func ActorFrom(c *fiber.Ctx) (auth.Actor, bool) {
	actor, ok := c.Locals(localActor).(auth.Actor)
	return actor, ok
}
