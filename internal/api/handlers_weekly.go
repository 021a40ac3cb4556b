package api

import (
	"strconv"
	"time"

	"github.com/ashujumbo12/FitnessApp/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListWeekly(c *fiber.Ctx) error {
	user := currentUser(c)

	checkins, err := handler.repositories.Weeklies.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load weekly records")
	}
	return c.JSON(checkins)
}

type weeklyUpsertRequest struct {
	StartDate string `json:"start_date"`

	RBicepsIn    *float64 `json:"r_biceps_in"`
	LBicepsIn    *float64 `json:"l_biceps_in"`
	ChestIn      *float64 `json:"chest_in"`
	RThighIn     *float64 `json:"r_thigh_in"`
	LThighIn     *float64 `json:"l_thigh_in"`
	WaistNavelIn *float64 `json:"waist_navel_in"`

	SleepIssues  *int `json:"sleep_issues"`
	HungerIssues *int `json:"hunger_issues"`
	StressIssues *int `json:"stress_issues"`

	DietScore    *int `json:"diet_score"`
	WorkoutScore *int `json:"workout_score"`
}

func (handler *Handler) UpsertWeekly(c *fiber.Ctx) error {
	user := currentUser(c)

	week, err := strconv.Atoi(c.Params("week"))
	if err != nil || week < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid week number")
	}

	request := weeklyUpsertRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	var startDate *time.Time
	if request.StartDate != "" {
		parsed, err := time.ParseInLocation(dateParamLayout, request.StartDate, time.UTC)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid start_date")
		}
		startDate = &parsed
	}

	entry := models.WeeklyCheckin{
		WeekNumber: week,
		StartDate:  startDate,

		RBicepsIn:    request.RBicepsIn,
		LBicepsIn:    request.LBicepsIn,
		ChestIn:      request.ChestIn,
		RThighIn:     request.RThighIn,
		LThighIn:     request.LThighIn,
		WaistNavelIn: request.WaistNavelIn,

		SleepIssues:  request.SleepIssues,
		HungerIssues: request.HungerIssues,
		StressIssues: request.StressIssues,

		DietScore:    request.DietScore,
		WorkoutScore: request.WorkoutScore,
	}

	created, err := handler.repositories.Weeklies.UpsertPartial(user.ID, entry)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save weekly record")
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	stored, _, err := handler.repositories.Weeklies.FindByUserAndWeek(user.ID, week)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load weekly record")
	}
	return c.Status(status).JSON(stored)
}

func (handler *Handler) DeleteWeeklyRange(c *fiber.Ctx) error {
	user := currentUser(c)

	fromWeek, errFrom := strconv.Atoi(c.Query("from"))
	toWeek, errTo := strconv.Atoi(c.Query("to"))
	if errFrom != nil || errTo != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid week range")
	}

	result, err := handler.cleanupService.DeleteWeekRange(user.ID, fromWeek, toWeek, c.QueryBool("include_dailies"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(result)
}
