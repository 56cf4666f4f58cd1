package api

import "github.com/gofiber/fiber/v2"

// GetEnrichedHistory serves the decorated history view: descending
// measurements with week grouping and dietary period annotations.
func (handler *Handler) GetEnrichedHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	days := parseDaysQuery(c, defaultHistoryDays)
	includePeriods := parseBoolQuery(c, "periods", true)

	entries, err := handler.weights.EnrichedHistory(user.ID, days, includePeriods, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}

	return c.JSON(entries)
}
