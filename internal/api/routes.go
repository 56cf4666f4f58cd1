package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.ResolveUser)

	weight := api.Group("/weight")
	weight.Get("", handler.GetWeightHistory)
	weight.Get("/history", handler.GetEnrichedHistory)
	weight.Get("/latest", handler.GetLatestWeight)
	weight.Get("/trend", handler.GetWeightTrend)
	weight.Get("/chart", handler.GetWeightChart)
	weight.Get("/progress", handler.GetProgressSummary)
	weight.Post("", handler.LogWeight)
	weight.Put("/:id", handler.UpdateWeightLog)
	weight.Delete("/:id", handler.DeleteWeightLog)

	periods := api.Group("/periods")
	periods.Get("", handler.GetPeriods)
	periods.Get("/active", handler.GetActivePeriods)
	periods.Get("/suggested", handler.GetSuggestedProtocols)
	periods.Get("/on/:date", handler.GetPeriodsOnDate)
	periods.Get("/:id/summary", handler.GetPeriodSummary)
	periods.Post("", handler.CreatePeriod)
	periods.Post("/:id/end", handler.EndPeriod)
	periods.Post("/:id/deactivate", handler.DeactivatePeriod)
	periods.Patch("/:id", handler.UpdatePeriod)
	periods.Delete("/:id", handler.DeletePeriod)
}
