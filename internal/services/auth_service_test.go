package services

import (
	"errors"
	"testing"

	"github.com/ashujumbo12/FitnessApp/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]models.User), nextID: 1}
}

func (repo *memUserRepo) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (repo *memUserRepo) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, errors.New("not found")
}

func (repo *memUserRepo) FindByID(userID uint) (models.User, error) {
	user, exists := repo.users[userID]
	if !exists {
		return models.User{}, errors.New("not found")
	}
	return user, nil
}

func (repo *memUserRepo) Create(user *models.User) error {
	user.ID = repo.nextID
	repo.nextID++
	repo.users[user.ID] = *user
	return nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newMemUserRepo()
	service := NewAuthService(repo)

	user, err := service.Register(" Person@Example.COM ", "long-enough-password", " Pat ")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "person@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.DisplayName != "Pat" {
		t.Fatalf("expected trimmed display name, got %q", user.DisplayName)
	}
	if user.PasswordHash == "long-enough-password" {
		t.Fatal("password must be hashed")
	}

	authed, err := service.Authenticate("person@example.com", "long-enough-password")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if authed.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authed.ID)
	}

	if _, err := service.Authenticate("person@example.com", "wrong-password!!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Authenticate("nobody@example.com", "long-enough-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	service := NewAuthService(newMemUserRepo())

	if _, err := service.Register("not-an-email", "long-enough-password", ""); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected ErrEmailInvalid, got %v", err)
	}
	if _, err := service.Register("short@example.com", "short", ""); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}

	if _, err := service.Register("taken@example.com", "long-enough-password", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := service.Register("taken@example.com", "long-enough-password", ""); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

type memSettingsRepo struct {
	*memUserRepo
	updates map[string]any
}

func (repo *memSettingsRepo) UpdateByID(userID uint, updates map[string]any) error {
	repo.updates = updates
	return nil
}

func (repo *memSettingsRepo) UpdatePassword(userID uint, passwordHash string) error {
	user := repo.users[userID]
	user.PasswordHash = passwordHash
	repo.users[userID] = user
	return nil
}

func TestUpdateProfileValidatesUnits(t *testing.T) {
	repo := &memSettingsRepo{memUserRepo: newMemUserRepo()}
	service := NewSettingsService(repo)

	bad := "stone"
	if err := service.UpdateProfile(1, ProfileUpdate{Units: &bad}); !errors.Is(err, ErrUnknownUnits) {
		t.Fatalf("expected ErrUnknownUnits, got %v", err)
	}

	imperial := "imperial"
	height := 180.0
	if err := service.UpdateProfile(1, ProfileUpdate{Units: &imperial, HeightCm: &height}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if repo.updates["units"] != "imperial" {
		t.Fatalf("expected units update, got %v", repo.updates)
	}
	if repo.updates["height_cm"] != 180.0 {
		t.Fatalf("expected height update, got %v", repo.updates)
	}

	repo.updates = nil
	if err := service.UpdateProfile(1, ProfileUpdate{}); err != nil {
		t.Fatalf("empty update failed: %v", err)
	}
	if repo.updates != nil {
		t.Fatal("empty update must not touch the repository")
	}
}

func TestChangePassword(t *testing.T) {
	repo := &memSettingsRepo{memUserRepo: newMemUserRepo()}
	hash, err := HashPassword("current-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{Email: "pw@example.com", PasswordHash: hash}
	if err := repo.Create(&user); err != nil {
		t.Fatalf("create: %v", err)
	}
	service := NewSettingsService(repo)

	if err := service.ChangePassword(user.ID, "current-password", "short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := service.ChangePassword(user.ID, "wrong-password!!", "new-long-password"); !errors.Is(err, ErrCurrentPasswordWrong) {
		t.Fatalf("expected ErrCurrentPasswordWrong, got %v", err)
	}
	if err := service.ChangePassword(user.ID, "current-password", "new-long-password"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	stored := repo.users[user.ID]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-long-password")) != nil {
		t.Fatal("new password must verify against the stored hash")
	}
}
