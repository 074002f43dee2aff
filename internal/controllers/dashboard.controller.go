package controllers

import (
	"net/http"
	"time"

	"homeos/internal/fitness"
	"homeos/internal/models"
	"homeos/internal/planner"
	"homeos/internal/repository"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	userRepo        repository.UserRepository
	menuRepo        repository.MenuRepository
	workoutRepo     repository.WorkoutRepository
	measurementRepo repository.MeasurementRepository
	choreRepo       repository.ChoreRepository
}

func NewDashboardController(
	userRepo repository.UserRepository,
	menuRepo repository.MenuRepository,
	workoutRepo repository.WorkoutRepository,
	measurementRepo repository.MeasurementRepository,
	choreRepo repository.ChoreRepository,
) *DashboardController {
	return &DashboardController{
		userRepo:        userRepo,
		menuRepo:        menuRepo,
		workoutRepo:     workoutRepo,
		measurementRepo: measurementRepo,
		choreRepo:       choreRepo,
	}
}

// GetDashboard godoc
// @Summary Daily overview
// @Description Aggregates today's planned meals, workout burn, calorie balance, recent sessions, latest measurement with its change versus the previous one, overall progress deltas and due chores.
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to build dashboard"
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID := currentUserID(c)
	user, err := dc.userRepo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build dashboard",
			"error":   err.Error(),
		})
		return
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	// Today's menu cell. A failed week lookup degrades to an unplanned day.
	weekStart := planner.NormalizeWeekStart(now)
	dayIndex := (int(now.Weekday()) + 6) % 7
	today := planner.DayCell{
		Day:        planner.Weekdays[dayIndex],
		Date:       dayStart,
		Selections: []models.MenuSelection{},
	}
	if menus, err := dc.menuRepo.FindWeek(userID, weekStart); err == nil {
		cells := planner.BuildWeek(weekStart, menus)
		today = cells[dayIndex]
	}
	consumed := today.Stats.Kcal

	burned := 0
	var todaysWorkout *models.WorkoutSession
	if session, err := dc.workoutRepo.FindByUserIDAndDateRange(userID, dayStart, dayEnd); err == nil && session != nil {
		todaysWorkout = session
		burned = fitness.SessionCalories(session.Sets)
	}

	basal := user.BasalMetabolism
	if basal == 0 {
		basal = fitness.CalculateBMR(user.Gender, user.Age, user.Height, user.Weight)
	}
	limit, balance := fitness.DailyBalance(basal, burned, consumed)

	latest, err := dc.measurementRepo.FindLatestByUserID(userID)
	if err != nil {
		latest = nil
	}
	var weightDelta *float64
	if latest != nil && latest.Weight != nil {
		if prev, err := dc.measurementRepo.FindLatestBefore(userID, latest.Date); err == nil && prev != nil && prev.Weight != nil {
			d := *latest.Weight - *prev.Weight
			weightDelta = &d
		}
	}

	var deltas []fitness.ProgressDelta
	if first, err := dc.measurementRepo.FindFirstByUserID(userID); err == nil && first != nil && latest != nil && first.ID != latest.ID {
		deltas = fitness.MeasurementDeltas(first, latest)
	}

	recentSessions := []sessionView{}
	if sessions, err := dc.workoutRepo.FindRecentByUserID(userID, 5); err == nil {
		for _, session := range sessions {
			recentSessions = append(recentSessions, sessionView{
				Session:       session,
				TotalCalories: fitness.SessionCalories(session.Sets),
			})
		}
	}

	dueChores := []models.Chore{}
	if chores, err := dc.choreRepo.FindAllByUserID(userID); err == nil {
		for _, chore := range chores {
			if chore.NextDue != nil && !chore.NextDue.After(dayEnd) {
				dueChores = append(dueChores, chore)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"date":       dayStart.Format(planner.WeekFormat),
			"today_menu": today,
			"calories": gin.H{
				"basal":    basal,
				"burned":   burned,
				"consumed": consumed,
				"limit":    limit,
				"balance":  balance,
			},
			"todays_workout":     todaysWorkout,
			"recent_sessions":    recentSessions,
			"latest_measurement": latest,
			"weight_delta":       weightDelta,
			"progress_deltas":    deltas,
			"due_chores":         dueChores,
		},
	})
}
