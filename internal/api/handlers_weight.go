package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/skoskinen/painovahti/internal/services"
)

func (handler *Handler) LogWeight(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	payload := weightPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.weights.LogWeight(user.ID, services.WeightInput{
		Date:     payload.Date,
		WeightKg: payload.WeightKg,
		Notes:    payload.Notes,
	}, handler.now(), handler.location)
	if err != nil {
		if services.IsWeightValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to log weight")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetWeightHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	days := parseDaysQuery(c, defaultHistoryDays)
	history, err := handler.weights.WeightHistory(user.ID, days, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}

	return c.JSON(history)
}

func (handler *Handler) GetLatestWeight(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	entry, found, err := handler.weights.LatestWeight(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch latest weight")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no weight logs yet")
	}

	return c.JSON(entry)
}

func (handler *Handler) GetWeightTrend(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	days := parseDaysQuery(c, 7)
	trend, enough, err := handler.weights.WeightChangeOverWindow(user.ID, days, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute trend")
	}
	if !enough {
		return c.JSON(fiber.Map{"has_data": false})
	}

	return c.JSON(fiber.Map{"has_data": true, "trend": trend})
}

func (handler *Handler) GetWeightChart(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	days := parseDaysQuery(c, defaultHistoryDays)
	chart, err := handler.weights.BuildTrendChartData(user.ID, days, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build chart data")
	}

	return c.JSON(chart)
}

func (handler *Handler) GetProgressSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	summary, err := handler.weights.BuildProgressSummary(user.ID, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build progress summary")
	}

	return c.JSON(summary)
}

func (handler *Handler) UpdateWeightLog(c *fiber.Ctx) error {
	logID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	payload := weightUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.weights.UpdateWeightLog(logID, payload.WeightKg, payload.Notes); err != nil {
		if services.IsWeightValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		if errors.Is(err, services.ErrWeightLogNotFound) {
			return apiError(c, fiber.StatusNotFound, "weight log not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update weight log")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteWeightLog(c *fiber.Ctx) error {
	logID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.weights.DeleteWeightLog(logID); err != nil {
		if errors.Is(err, services.ErrWeightLogNotFound) {
			return apiError(c, fiber.StatusNotFound, "weight log not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete weight log")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
