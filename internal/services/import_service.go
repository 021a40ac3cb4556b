package services

import (
	"context"
	"sync"
	"time"

	"github.com/ashujumbo12/FitnessApp/internal/importer"
	"github.com/ashujumbo12/FitnessApp/internal/models"
)

type ImportDailyStore interface {
	UpsertPartial(userID uint, entry models.DailyMetric) (bool, error)
	ListDates(userID uint) ([]time.Time, error)
}

type ImportWeeklyStore interface {
	UpsertPartial(userID uint, entry models.WeeklyCheckin) (bool, error)
	ListWeekNumbers(userID uint) ([]int, error)
}

// ImportService binds the import pipeline to the repositories. One pipeline
// per user is kept alive so concurrent uploads for the same user serialize
// on the pipeline's upsert lock.
type ImportService struct {
	dailies  ImportDailyStore
	weeklies ImportWeeklyStore

	mu        sync.Mutex
	pipelines map[uint]*importer.Pipeline
}

func NewImportService(dailies ImportDailyStore, weeklies ImportWeeklyStore) *ImportService {
	return &ImportService{
		dailies:   dailies,
		weeklies:  weeklies,
		pipelines: make(map[uint]*importer.Pipeline),
	}
}

func (service *ImportService) ImportFile(ctx context.Context, userID uint, data []byte, opts importer.Options) (*importer.Report, error) {
	return service.pipelineForUser(userID).ImportFile(ctx, data, opts)
}

func (service *ImportService) pipelineForUser(userID uint) *importer.Pipeline {
	service.mu.Lock()
	defer service.mu.Unlock()

	pipeline, exists := service.pipelines[userID]
	if !exists {
		pipeline = importer.NewPipeline(&userStore{service: service, userID: userID})
		service.pipelines[userID] = pipeline
	}
	return pipeline
}

// userStore implements the pipeline's persistence port for one user.
type userStore struct {
	service *ImportService
	userID  uint
}

func (store *userStore) UpsertDaily(record importer.DailyRecord) error {
	entry := models.DailyMetric{
		Date:     record.Date,
		WeightKg: record.WeightKg,
		Steps:    record.Steps,
	}
	if record.Steps != nil {
		km := StepsToKm(*record.Steps)
		entry.RunKm = &km
	}
	_, err := store.service.dailies.UpsertPartial(store.userID, entry)
	return err
}

func (store *userStore) UpsertWeekly(record importer.WeeklyRecord) error {
	entry := models.WeeklyCheckin{
		WeekNumber: record.WeekNumber,
		StartDate:  record.StartDate,

		RBicepsIn:    record.RBicepsIn,
		LBicepsIn:    record.LBicepsIn,
		ChestIn:      record.ChestIn,
		RThighIn:     record.RThighIn,
		LThighIn:     record.LThighIn,
		WaistNavelIn: record.WaistNavelIn,

		SleepIssues:  record.SleepIssues,
		HungerIssues: record.HungerIssues,
		StressIssues: record.StressIssues,

		DietScore:    record.DietScore,
		WorkoutScore: record.WorkoutScore,
	}
	_, err := store.service.weeklies.UpsertPartial(store.userID, entry)
	return err
}

func (store *userStore) Snapshot() (importer.StoreSnapshot, error) {
	dates, err := store.service.dailies.ListDates(store.userID)
	if err != nil {
		return importer.StoreSnapshot{}, err
	}
	weeks, err := store.service.weeklies.ListWeekNumbers(store.userID)
	if err != nil {
		return importer.StoreSnapshot{}, err
	}

	snapshot := importer.StoreSnapshot{
		DailyDates:  make(map[string]struct{}, len(dates)),
		WeekNumbers: make(map[int]struct{}, len(weeks)),
	}
	for _, date := range dates {
		snapshot.DailyDates[importer.DateKey(date)] = struct{}{}
	}
	for _, week := range weeks {
		snapshot.WeekNumbers[week] = struct{}{}
	}
	return snapshot, nil
}
