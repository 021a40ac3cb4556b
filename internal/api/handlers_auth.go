package api

import (
	"errors"

	"github.com/ashujumbo12/FitnessApp/internal/models"
	"github.com/ashujumbo12/FitnessApp/internal/services"
	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	request := registerRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Register(request.Email, request.Password, request.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailInvalid),
			errors.Is(err, services.ErrPasswordTooShort):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	if err := handler.setAuthCookie(c, &user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "session setup failed")
	}
	return c.Status(fiber.StatusCreated).JSON(userPayload(&user))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	request := loginRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Authenticate(request.Email, request.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, request.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "session setup failed")
	}
	return c.JSON(userPayload(&user))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"status": "ok"})
}

func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"units":        user.Units,
	}
}
