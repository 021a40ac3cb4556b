package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/ashujumbo12/FitnessApp/internal/db"
	"github.com/ashujumbo12/FitnessApp/internal/models"
	"github.com/ashujumbo12/FitnessApp/internal/security"
	"github.com/ashujumbo12/FitnessApp/internal/services"
	"github.com/fatih/color"
)

// RunCreateUserCommand creates a user with a generated temporary password
// and prints it once.
func RunCreateUserCommand(dbPath string, email string, displayName string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	users := db.NewUserRepository(database)
	taken, err := users.ExistsByNormalizedEmail(normalizedEmail)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return fmt.Errorf("user %s already exists", normalizedEmail)
	}

	temporaryPassword, err := security.TemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := services.HashPassword(temporaryPassword)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	user := models.User{
		Email:        normalizedEmail,
		PasswordHash: passwordHash,
		DisplayName:  strings.TrimSpace(displayName),
		Units:        models.UnitsMetric,
	}
	if err := users.Create(&user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	color.Green("User %s created", normalizedEmail)
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("Change it after the first login.")
	return nil
}
