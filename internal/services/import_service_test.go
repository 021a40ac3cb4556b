package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/ashujumbo12/FitnessApp/internal/importer"
	"github.com/ashujumbo12/FitnessApp/internal/models"
)

type memDailyStore struct {
	entries map[uint][]models.DailyMetric
}

func (store *memDailyStore) UpsertPartial(userID uint, entry models.DailyMetric) (bool, error) {
	if store.entries == nil {
		store.entries = make(map[uint][]models.DailyMetric)
	}
	store.entries[userID] = append(store.entries[userID], entry)
	return true, nil
}

func (store *memDailyStore) ListDates(userID uint) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(store.entries[userID]))
	for _, entry := range store.entries[userID] {
		dates = append(dates, entry.Date)
	}
	return dates, nil
}

type memWeeklyStore struct {
	entries map[uint][]models.WeeklyCheckin
}

func (store *memWeeklyStore) UpsertPartial(userID uint, entry models.WeeklyCheckin) (bool, error) {
	if store.entries == nil {
		store.entries = make(map[uint][]models.WeeklyCheckin)
	}
	store.entries[userID] = append(store.entries[userID], entry)
	return true, nil
}

func (store *memWeeklyStore) ListWeekNumbers(userID uint) ([]int, error) {
	weeks := make([]int, 0, len(store.entries[userID]))
	for _, entry := range store.entries[userID] {
		weeks = append(weeks, entry.WeekNumber)
	}
	return weeks, nil
}

func TestImportServiceDerivesRunKm(t *testing.T) {
	dailies := &memDailyStore{}
	weeklies := &memWeeklyStore{}
	service := NewImportService(dailies, weeklies)

	csv := "date,weight_kg,steps\n2024-01-15,80.5,8900\n2024-01-16,80.1,\n"
	report, err := service.ImportFile(context.Background(), 7, []byte(csv), importer.Options{})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if report.Accepted != 2 {
		t.Fatalf("expected 2 accepted, got %d", report.Accepted)
	}

	entries := dailies.entries[7]
	if len(entries) != 2 {
		t.Fatalf("expected 2 persisted dailies, got %d", len(entries))
	}
	withSteps := entries[0]
	if withSteps.RunKm == nil || math.Abs(*withSteps.RunKm-8.0) > 1e-9 {
		t.Fatalf("expected 8 km derived from 8900 steps, got %v", withSteps.RunKm)
	}
	withoutSteps := entries[1]
	if withoutSteps.RunKm != nil {
		t.Fatalf("run_km must stay null without steps, got %v", *withoutSteps.RunKm)
	}
}

func TestImportServiceKeepsUsersIsolated(t *testing.T) {
	dailies := &memDailyStore{}
	service := NewImportService(dailies, &memWeeklyStore{})

	csv := "date,weight_kg\n2024-01-15,80.5\n"
	if _, err := service.ImportFile(context.Background(), 1, []byte(csv), importer.Options{}); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if _, err := service.ImportFile(context.Background(), 2, []byte(csv), importer.Options{}); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if len(dailies.entries[1]) != 1 || len(dailies.entries[2]) != 1 {
		t.Fatalf("each user must get their own record: %d and %d",
			len(dailies.entries[1]), len(dailies.entries[2]))
	}
}
