package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/skoskinen/painovahti/internal/models"
)

const contextUserKey = "painovahti_user"

// ResolveUser attaches the acting user to the request. The seeded owner
// account is the default; the X-User-ID header selects another stored user.
// There is no authentication layer, matching the single-user desktop model.
func (handler *Handler) ResolveUser(c *fiber.Ctx) error {
	userID := handler.defaultUserID

	if raw := c.Get("X-User-ID"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid user id")
		}
		userID = uint(parsed)
	}

	user, found, err := handler.users.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve user")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
