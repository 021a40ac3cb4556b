package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestUpsertDailyEndpointPartialUpdate(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "manual-daily@example.com")

	weight := 80.5
	steps := int64(8900)
	created := doJSON(t, app, http.MethodPut, "/api/daily/2024-01-15", map[string]any{
		"weight_kg": weight,
		"steps":     steps,
	}, cookie)
	defer created.Body.Close()
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on first upsert, got %d", created.StatusCode)
	}

	var stored struct {
		WeightKg *float64 `json:"weight_kg"`
		Steps    *int64   `json:"steps"`
		RunKm    *float64 `json:"run_km"`
	}
	decodeJSONBody(t, created.Body, &stored)
	if stored.RunKm == nil || *stored.RunKm != 8.0 {
		t.Fatalf("expected 8 km derived from 8900 steps, got %v", stored.RunKm)
	}

	newWeight := 80.1
	updated := doJSON(t, app, http.MethodPut, "/api/daily/2024-01-15", map[string]any{
		"weight_kg": newWeight,
	}, cookie)
	defer updated.Body.Close()
	if updated.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d", updated.StatusCode)
	}
	decodeJSONBody(t, updated.Body, &stored)
	if stored.WeightKg == nil || *stored.WeightKg != 80.1 {
		t.Fatalf("expected updated weight 80.1, got %v", stored.WeightKg)
	}
	if stored.Steps == nil || *stored.Steps != 8900 {
		t.Fatalf("steps must survive a weight-only update, got %v", stored.Steps)
	}
}

func TestUpsertDailyEndpointValidation(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "invalid-daily@example.com")

	badDate := doJSON(t, app, http.MethodPut, "/api/daily/January-15", map[string]any{}, cookie)
	badDate.Body.Close()
	if badDate.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", badDate.StatusCode)
	}

	badWeight := doJSON(t, app, http.MethodPut, "/api/daily/2024-01-15", map[string]any{
		"weight_kg": -1.0,
	}, cookie)
	badWeight.Body.Close()
	if badWeight.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative weight, got %d", badWeight.StatusCode)
	}
}

func TestUpsertWeeklyEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "manual-weekly@example.com")

	created := doJSON(t, app, http.MethodPut, "/api/weekly/3", map[string]any{
		"start_date": "2024-01-15",
		"chest_in":   40.0,
		"diet_score": 9,
	}, cookie)
	defer created.Body.Close()
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", created.StatusCode)
	}

	badWeek := doJSON(t, app, http.MethodPut, "/api/weekly/0", map[string]any{
		"start_date": "2024-01-15",
	}, cookie)
	badWeek.Body.Close()
	if badWeek.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for week 0, got %d", badWeek.StatusCode)
	}

	badDate := doJSON(t, app, http.MethodPut, "/api/weekly/4", map[string]any{
		"start_date": "15/01/2024",
	}, cookie)
	badDate.Body.Close()
	if badDate.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed start_date, got %d", badDate.StatusCode)
	}

	// A date-less update only touches the fields it carries.
	updated := doJSON(t, app, http.MethodPut, "/api/weekly/3", map[string]any{
		"workout_score": 8,
	}, cookie)
	defer updated.Body.Close()
	if updated.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", updated.StatusCode)
	}
	var stored struct {
		StartDate *string  `json:"start_date"`
		ChestIn   *float64 `json:"chest_in"`
		Workout   *int     `json:"workout_score"`
	}
	decodeJSONBody(t, updated.Body, &stored)
	if stored.StartDate == nil || !strings.HasPrefix(*stored.StartDate, "2024-01-15") {
		t.Fatalf("start date must survive a date-less update, got %v", stored.StartDate)
	}
	if stored.ChestIn == nil || *stored.ChestIn != 40.0 {
		t.Fatalf("chest must survive, got %v", stored.ChestIn)
	}
	if stored.Workout == nil || *stored.Workout != 8 {
		t.Fatalf("expected workout score 8, got %v", stored.Workout)
	}
}

func TestDeleteDailyRangeEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "delete-daily@example.com")

	for _, date := range []string{"2024-01-15", "2024-01-16", "2024-01-20"} {
		response := doJSON(t, app, http.MethodPut, "/api/daily/"+date, map[string]any{
			"weight_kg": 80.0,
		}, cookie)
		response.Body.Close()
	}

	deleted := doJSON(t, app, http.MethodDelete, "/api/daily?from=2024-01-15&to=2024-01-16", nil, cookie)
	defer deleted.Body.Close()
	if deleted.StatusCode != http.StatusOK {
		t.Fatalf("delete failed with %d", deleted.StatusCode)
	}
	var result struct {
		Deleted int64 `json:"deleted"`
	}
	decodeJSONBody(t, deleted.Body, &result)
	if result.Deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", result.Deleted)
	}

	list := doJSON(t, app, http.MethodGet, "/api/daily", nil, cookie)
	defer list.Body.Close()
	var remaining []struct{}
	decodeJSONBody(t, list.Body, &remaining)
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining record, got %d", len(remaining))
	}
}

func TestDeleteWeeklyRangeWithDailies(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "delete-weekly@example.com")

	week := doJSON(t, app, http.MethodPut, "/api/weekly/1", map[string]any{
		"start_date": "2024-01-15",
	}, cookie)
	week.Body.Close()
	inWeek := doJSON(t, app, http.MethodPut, "/api/daily/2024-01-16", map[string]any{
		"weight_kg": 80.0,
	}, cookie)
	inWeek.Body.Close()
	outside := doJSON(t, app, http.MethodPut, "/api/daily/2024-02-01", map[string]any{
		"weight_kg": 79.0,
	}, cookie)
	outside.Body.Close()

	deleted := doJSON(t, app, http.MethodDelete, "/api/weekly?from=1&to=1&include_dailies=true", nil, cookie)
	defer deleted.Body.Close()
	if deleted.StatusCode != http.StatusOK {
		t.Fatalf("delete failed with %d", deleted.StatusCode)
	}

	weeklies := doJSON(t, app, http.MethodGet, "/api/weekly", nil, cookie)
	defer weeklies.Body.Close()
	var remainingWeeks []struct{}
	decodeJSONBody(t, weeklies.Body, &remainingWeeks)
	if len(remainingWeeks) != 0 {
		t.Fatalf("expected no weeks left, got %d", len(remainingWeeks))
	}

	dailies := doJSON(t, app, http.MethodGet, "/api/daily", nil, cookie)
	defer dailies.Body.Close()
	var remainingDailies []struct {
		Date string `json:"date"`
	}
	decodeJSONBody(t, dailies.Body, &remainingDailies)
	if len(remainingDailies) != 1 {
		t.Fatalf("only the out-of-week daily may remain, got %d", len(remainingDailies))
	}
}
