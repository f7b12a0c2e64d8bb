package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/templui/goalplanner/internal/calendar"
	"github.com/templui/goalplanner/internal/model"
	"github.com/templui/goalplanner/internal/service"
	"github.com/templui/goalplanner/internal/ui"
	"github.com/templui/goalplanner/internal/validation"
)

const maxBodyBytes = 1 << 20

type GoalHandler struct {
	goalService *service.GoalService
	loc         *time.Location
}

func NewGoalHandler(goalService *service.GoalService, loc *time.Location) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		loc:         loc,
	}
}

// goalRequest is the JSON body of the add endpoints. DueDate accepts a
// calendar date (2006-01-02) or an RFC 3339 timestamp.
type goalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"dueDate"`
}

func (req goalRequest) input(loc *time.Location) (model.GoalInput, error) {
	in := model.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.Category(strings.ToLower(strings.TrimSpace(req.Category))),
		Priority:    model.Priority(strings.ToLower(strings.TrimSpace(req.Priority))),
		Completed:   req.Completed,
	}

	due := strings.TrimSpace(req.DueDate)
	if due != "" {
		t, err := calendar.Parse(due, loc)
		if err != nil {
			t, err = time.Parse(time.RFC3339, due)
		}
		if err != nil {
			return in, fmt.Errorf("invalid due date %q", req.DueDate)
		}
		in.DueDate = &t
	}

	return validation.NormalizeGoalInput(in)
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return errors.New("request body is empty")
	}
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// decodeGoal decodes and validates an add request, writing a 400 on failure.
func decodeGoal(w http.ResponseWriter, r *http.Request, loc *time.Location) (model.GoalInput, bool) {
	var req goalRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return model.GoalInput{}, false
	}

	in, err := req.input(loc)
	if err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return model.GoalInput{}, false
	}
	return in, true
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	ui.JSON(w, http.StatusOK, h.goalService.Goals())
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeGoal(w, r, h.loc)
	if !ok {
		return
	}

	goal, err := h.goalService.Add(r.Context(), in)
	if err != nil {
		slog.Error("failed to create goal", "error", err)
		ui.Error(w, http.StatusInternalServerError, "failed to save goal")
		return
	}

	ui.JSON(w, http.StatusCreated, goal)
}

// Toggle flips a goal's completion. The store treats an unknown ID as a
// no-op; over HTTP it is reported as 404.
func (h *GoalHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	goal, found, err := h.goalService.ToggleComplete(r.Context(), goalID)
	if !found {
		ui.Error(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to toggle goal", "error", err, "goal_id", goalID)
		ui.Error(w, http.StatusInternalServerError, "failed to save goal")
		return
	}

	ui.JSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Export(w http.ResponseWriter, r *http.Request) {
	goals := h.goalService.Goals()

	data, err := json.MarshalIndent(goals, "", "  ")
	if err != nil {
		slog.Error("failed to export goals", "error", err)
		ui.Error(w, http.StatusInternalServerError, "failed to export goals")
		return
	}

	filename := fmt.Sprintf("goals-%s.json", calendar.Format(h.goalService.Now(), h.loc))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, err = w.Write(data)
	if err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
