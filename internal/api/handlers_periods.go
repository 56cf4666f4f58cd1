package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/skoskinen/painovahti/internal/services"
)

func (handler *Handler) CreatePeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	payload := periodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	period, err := handler.periods.CreatePeriod(user.ID, services.PeriodInput{
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
		Name:         payload.Name,
		ProtocolType: payload.ProtocolType,
		Description:  payload.Description,
		Notes:        payload.Notes,
	}, handler.location)
	if err != nil {
		if services.IsPeriodValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create period")
	}

	return c.Status(fiber.StatusCreated).JSON(period)
}

func (handler *Handler) GetPeriods(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	periods, err := handler.periods.AllPeriods(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch periods")
	}

	return c.JSON(periods)
}

func (handler *Handler) GetActivePeriods(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	periods, err := handler.periods.ActivePeriods(user.ID, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch periods")
	}

	return c.JSON(periods)
}

func (handler *Handler) GetPeriodsOnDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "user not resolved")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	periods, err := handler.periods.PeriodsForDate(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch periods")
	}

	return c.JSON(periods)
}

func (handler *Handler) GetSuggestedProtocols(c *fiber.Ctx) error {
	return c.JSON(handler.periods.SuggestedProtocols())
}

func (handler *Handler) GetPeriodSummary(c *fiber.Ctx) error {
	periodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	summary, err := handler.periods.Summary(periodID, handler.now(), handler.location)
	if err != nil {
		if errors.Is(err, services.ErrPeriodNotFound) {
			return apiError(c, fiber.StatusNotFound, "period not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to build period summary")
	}

	return c.JSON(summary)
}

func (handler *Handler) EndPeriod(c *fiber.Ctx) error {
	periodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	payload := endPeriodPayload{}
	if err := c.BodyParser(&payload); err != nil && len(c.Body()) > 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.periods.EndPeriod(periodID, payload.EndDate, handler.now(), handler.location); err != nil {
		if services.IsPeriodValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		if errors.Is(err, services.ErrPeriodNotFound) {
			return apiError(c, fiber.StatusNotFound, "period not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to end period")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) UpdatePeriod(c *fiber.Ctx) error {
	periodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	payload := periodUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	update := services.PeriodUpdate{
		Name:         payload.Name,
		Description:  payload.Description,
		ProtocolType: payload.ProtocolType,
		Notes:        payload.Notes,
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
		IsActive:     payload.IsActive,
	}

	if err := handler.periods.UpdatePeriod(periodID, update, handler.location); err != nil {
		if services.IsPeriodValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		switch {
		case errors.Is(err, services.ErrPeriodNotFound):
			return apiError(c, fiber.StatusNotFound, "period not found")
		case errors.Is(err, services.ErrPeriodNoChanges):
			return apiError(c, fiber.StatusBadRequest, "no changes made")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update period")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeactivatePeriod(c *fiber.Ctx) error {
	periodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.periods.DeactivatePeriod(periodID); err != nil {
		if errors.Is(err, services.ErrPeriodNotFound) {
			return apiError(c, fiber.StatusNotFound, "period not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to deactivate period")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeletePeriod(c *fiber.Ctx) error {
	periodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.periods.DeletePeriod(periodID); err != nil {
		if errors.Is(err, services.ErrPeriodNotFound) {
			return apiError(c, fiber.StatusNotFound, "period not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete period")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
