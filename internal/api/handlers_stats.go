package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) WeeklyStats(c *fiber.Ctx) error {
	user := currentUser(c)

	summaries, err := handler.statsService.BuildWeeklySummaries(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	return c.JSON(summaries)
}
