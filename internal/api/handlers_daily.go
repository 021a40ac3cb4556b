package api

import (
	"time"

	"github.com/ashujumbo12/FitnessApp/internal/models"
	"github.com/ashujumbo12/FitnessApp/internal/services"
	"github.com/gofiber/fiber/v2"
)

const dateParamLayout = "2006-01-02"

func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.ParseInLocation(dateParamLayout, raw, time.UTC)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

func (handler *Handler) ListDaily(c *fiber.Ctx) error {
	user := currentUser(c)

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	metrics, err := handler.repositories.Dailies.ListByUserRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load daily records")
	}
	return c.JSON(metrics)
}

type dailyUpsertRequest struct {
	WeightKg *float64 `json:"weight_kg"`
	Steps    *int64   `json:"steps"`
}

func (handler *Handler) UpsertDaily(c *fiber.Ctx) error {
	user := currentUser(c)

	date, err := time.ParseInLocation(dateParamLayout, c.Params("date"), time.UTC)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	request := dailyUpsertRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if request.WeightKg != nil && *request.WeightKg <= 0 {
		return apiError(c, fiber.StatusBadRequest, "weight_kg must be positive")
	}
	if request.Steps != nil && *request.Steps < 0 {
		return apiError(c, fiber.StatusBadRequest, "steps must not be negative")
	}

	entry := models.DailyMetric{
		Date:     date,
		WeightKg: request.WeightKg,
		Steps:    request.Steps,
	}
	if request.Steps != nil {
		km := services.StepsToKm(*request.Steps)
		entry.RunKm = &km
	}

	created, err := handler.repositories.Dailies.UpsertPartial(user.ID, entry)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save daily record")
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	stored, _, err := handler.repositories.Dailies.FindByUserAndDate(user.ID, date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load daily record")
	}
	return c.Status(status).JSON(stored)
}

func (handler *Handler) DeleteDailyRange(c *fiber.Ctx) error {
	user := currentUser(c)

	from, ok := parseDateQuery(c, "from")
	if !ok || from == nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, ok := parseDateQuery(c, "to")
	if !ok || to == nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	deleted, err := handler.cleanupService.DeleteDailyRange(user.ID, *from, *to)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
