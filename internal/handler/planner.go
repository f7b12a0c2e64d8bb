package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/templui/goalplanner/internal/calendar"
	"github.com/templui/goalplanner/internal/model"
	"github.com/templui/goalplanner/internal/service"
	"github.com/templui/goalplanner/internal/ui"
	"github.com/templui/goalplanner/internal/validation"
)

type PlannerHandler struct {
	planner *service.PlannerService
}

func NewPlannerHandler(planner *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{
		planner: planner,
	}
}

type journalRequest struct {
	Notes       string     `json:"notes"`
	Mood        model.Mood `json:"mood"`
	EnergyLevel int        `json:"energyLevel"`
}

type reviewRequest struct {
	Priorities   []string `json:"priorities"`
	Reflection   string   `json:"reflection"`
	Achievements []string `json:"achievements"`
}

// dateParam reads a calendar date from the query, falling back to
// fallback when the parameter is absent.
func (h *PlannerHandler) dateParam(r *http.Request, key string, fallback time.Time) (time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback, nil
	}
	t, err := calendar.Parse(value, h.planner.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (want YYYY-MM-DD)", key, value)
	}
	return t, nil
}

func (h *PlannerHandler) day(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	day, err := h.dateParam(r, "date", h.planner.Today())
	if err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}
	return day, true
}

// week resolves the week query to its Monday, so any date in the week works.
func (h *PlannerHandler) week(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	week, err := h.dateParam(r, "week", h.planner.CurrentWeek())
	if err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}
	return calendar.WeekStart(week, h.planner.Location()), true
}

func (h *PlannerHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ui.JSON(w, http.StatusOK, h.planner.Overview())
}

func (h *PlannerHandler) Daily(w http.ResponseWriter, r *http.Request) {
	day, ok := h.day(w, r)
	if !ok {
		return
	}
	ui.JSON(w, http.StatusOK, h.planner.Daily(r.Context(), day))
}

// AddDaily adds a goal due on the selected day.
func (h *PlannerHandler) AddDaily(w http.ResponseWriter, r *http.Request) {
	day, ok := h.day(w, r)
	if !ok {
		return
	}
	in, ok := decodeGoal(w, r, h.planner.Location())
	if !ok {
		return
	}

	goal, err := h.planner.AddForDay(r.Context(), in, day)
	if err != nil {
		slog.Error("failed to add daily goal", "error", err)
		ui.Error(w, http.StatusInternalServerError, "failed to save goal")
		return
	}
	ui.JSON(w, http.StatusCreated, goal)
}

func (h *PlannerHandler) SaveJournal(w http.ResponseWriter, r *http.Request) {
	day, ok := h.day(w, r)
	if !ok {
		return
	}

	var req journalRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	entry := model.NewDailyEntry(calendar.Format(day, h.planner.Location()))
	entry.Notes = req.Notes
	if req.Mood != "" {
		entry.Mood = req.Mood
	}
	if req.EnergyLevel != 0 {
		entry.EnergyLevel = req.EnergyLevel
	}

	err = validation.ValidateDailyEntry(entry)
	if err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.planner.SaveDailyEntry(r.Context(), entry)
	if err != nil {
		slog.Error("failed to save journal", "error", err, "date", entry.Date)
		ui.Error(w, http.StatusInternalServerError, "failed to save journal")
		return
	}
	ui.JSON(w, http.StatusOK, entry)
}

func (h *PlannerHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	week, ok := h.week(w, r)
	if !ok {
		return
	}
	ui.JSON(w, http.StatusOK, h.planner.Weekly(r.Context(), week))
}

// AddWeekly adds a goal from the weekly planner; without a due date it is
// due on the week's last day.
func (h *PlannerHandler) AddWeekly(w http.ResponseWriter, r *http.Request) {
	week, ok := h.week(w, r)
	if !ok {
		return
	}
	in, ok := decodeGoal(w, r, h.planner.Location())
	if !ok {
		return
	}

	goal, err := h.planner.AddForWeek(r.Context(), in, week)
	if err != nil {
		slog.Error("failed to add weekly goal", "error", err)
		ui.Error(w, http.StatusInternalServerError, "failed to save goal")
		return
	}
	ui.JSON(w, http.StatusCreated, goal)
}

func (h *PlannerHandler) SaveReview(w http.ResponseWriter, r *http.Request) {
	week, ok := h.week(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	review := model.NewWeeklyReview(calendar.Format(week, h.planner.Location()))
	review.Reflection = req.Reflection
	if req.Priorities != nil {
		review.Priorities = req.Priorities
	}
	if req.Achievements != nil {
		review.Achievements = req.Achievements
	}

	err = validation.ValidateWeeklyReview(review)
	if err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.planner.SaveWeeklyReview(r.Context(), review)
	if err != nil {
		slog.Error("failed to save weekly review", "error", err, "week", review.WeekStart)
		ui.Error(w, http.StatusInternalServerError, "failed to save review")
		return
	}
	ui.JSON(w, http.StatusOK, review)
}
