package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportDailyCSV(c *fiber.Ctx) error {
	user := currentUser(c)

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	data, err := handler.exportService.BuildDailyCSV(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(now, "daily", "csv"))
	return c.Send(data)
}

func (handler *Handler) ExportWeeklyCSV(c *fiber.Ctx) error {
	user := currentUser(c)

	data, err := handler.exportService.BuildWeeklyCSV(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(now, "weekly", "csv"))
	return c.Send(data)
}
