package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.Health)

	auth := app.Group("/api/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	authed := app.Group("/api", handler.RequireAuth)

	authed.Post("/import", handler.Import)

	authed.Get("/daily", handler.ListDaily)
	authed.Put("/daily/:date", handler.UpsertDaily)
	authed.Delete("/daily", handler.DeleteDailyRange)

	authed.Get("/weekly", handler.ListWeekly)
	authed.Put("/weekly/:week", handler.UpsertWeekly)
	authed.Delete("/weekly", handler.DeleteWeeklyRange)

	authed.Get("/stats/weekly", handler.WeeklyStats)

	authed.Get("/export/daily.csv", handler.ExportDailyCSV)
	authed.Get("/export/weekly.csv", handler.ExportWeeklyCSV)

	authed.Get("/settings", handler.GetSettings)
	authed.Put("/settings", handler.UpdateSettings)
	authed.Put("/settings/password", handler.ChangePassword)
}
