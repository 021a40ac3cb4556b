package api

import (
	"errors"
	"io"

	"github.com/ashujumbo12/FitnessApp/internal/importer"
	"github.com/gofiber/fiber/v2"
)

// Import ingests an uploaded Progress Sheet CSV and returns the import
// report. Query parameters: dry_run (truthy), conflict_policy
// (last-wins | first-wins).
func (handler *Handler) Import(c *fiber.Ctx) error {
	user := currentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unreadable file upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unreadable file upload")
	}

	policy, err := importer.ParseConflictPolicy(c.Query("conflict_policy"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unknown conflict_policy")
	}

	opts := importer.Options{
		DryRun:         c.QueryBool("dry_run"),
		ConflictPolicy: policy,
		Timeout:        defaultImportTimeout,
	}

	report, err := handler.importService.ImportFile(c.Context(), user.ID, data, opts)
	switch {
	case errors.Is(err, importer.ErrParse):
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, importer.ErrTimeout):
		// Committed upserts stand; hand the partial report back with the
		// timeout flagged.
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"error":  err.Error(),
			"report": report,
		})
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "import failed")
	}

	return c.JSON(report)
}
