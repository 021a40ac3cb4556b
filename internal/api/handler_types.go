package api

import (
	"time"

	"github.com/ashujumbo12/FitnessApp/internal/db"
	"github.com/ashujumbo12/FitnessApp/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const authCookieName = "fitness_auth"

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

// defaultImportTimeout bounds one upload's pipeline run.
const defaultImportTimeout = 2 * time.Minute

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories    *db.Repositories
	authService     *services.AuthService
	importService   *services.ImportService
	exportService   *services.ExportService
	statsService    *services.StatsService
	settingsService *services.SettingsService
	cleanupService  *services.CleanupService
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,

		repositories:    repositories,
		authService:     services.NewAuthService(repositories.Users),
		importService:   services.NewImportService(repositories.Dailies, repositories.Weeklies),
		exportService:   services.NewExportService(repositories.Dailies, repositories.Weeklies),
		statsService:    services.NewStatsService(repositories.Dailies, repositories.Weeklies),
		settingsService: services.NewSettingsService(repositories.Users),
		cleanupService:  services.NewCleanupService(repositories.Dailies, repositories.Weeklies),
	}
}
