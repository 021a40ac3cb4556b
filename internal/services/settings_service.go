package services

import (
	"errors"
	"strings"

	"github.com/ashujumbo12/FitnessApp/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrCurrentPasswordWrong = errors.New("current password does not match")

type SettingsUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
	UpdatePassword(userID uint, passwordHash string) error
}

// ProfileUpdate carries the editable profile fields. Nil numeric fields
// leave the stored value untouched.
type ProfileUpdate struct {
	DisplayName  *string
	HeightCm     *float64
	GoalWeightKg *float64
	Units        *string
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

func (service *SettingsService) UpdateProfile(userID uint, update ProfileUpdate) error {
	updates := map[string]any{}
	if update.DisplayName != nil {
		updates["display_name"] = strings.TrimSpace(*update.DisplayName)
	}
	if update.HeightCm != nil {
		updates["height_cm"] = *update.HeightCm
	}
	if update.GoalWeightKg != nil {
		updates["goal_weight_kg"] = *update.GoalWeightKg
	}
	if update.Units != nil {
		if !ValidUnits(*update.Units) {
			return ErrUnknownUnits
		}
		updates["units"] = *update.Units
	}
	if len(updates) == 0 {
		return nil
	}
	return service.users.UpdateByID(userID, updates)
}

func (service *SettingsService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrCurrentPasswordWrong
	}

	passwordHash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, passwordHash)
}
