package api

import (
	"errors"

	"github.com/ashujumbo12/FitnessApp/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.JSON(fiber.Map{
		"email":          user.Email,
		"display_name":   user.DisplayName,
		"height_cm":      user.HeightCm,
		"goal_weight_kg": user.GoalWeightKg,
		"units":          user.Units,
	})
}

type settingsUpdateRequest struct {
	DisplayName  *string  `json:"display_name"`
	HeightCm     *float64 `json:"height_cm"`
	GoalWeightKg *float64 `json:"goal_weight_kg"`
	Units        *string  `json:"units"`
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	user := currentUser(c)

	request := settingsUpdateRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	update := services.ProfileUpdate{
		DisplayName:  request.DisplayName,
		HeightCm:     request.HeightCm,
		GoalWeightKg: request.GoalWeightKg,
		Units:        request.Units,
	}
	if err := handler.settingsService.UpdateProfile(user.ID, update); err != nil {
		if errors.Is(err, services.ErrUnknownUnits) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update settings")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user := currentUser(c)

	request := passwordChangeRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	err := handler.settingsService.ChangePassword(user.ID, request.CurrentPassword, request.NewPassword)
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrCurrentPasswordWrong):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to change password")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
