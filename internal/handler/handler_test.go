package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/goalplanner/internal/kv"
	"github.com/templui/goalplanner/internal/markdown"
	"github.com/templui/goalplanner/internal/model"
	"github.com/templui/goalplanner/internal/repository"
	"github.com/templui/goalplanner/internal/service"
)

// Wednesday
var testNow = time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	goals   *service.GoalService
	planner *service.PlannerService
	mux     *http.ServeMux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := kv.NewMemoryStore()
	n := 0
	goals := service.NewGoalService(context.Background(), repository.NewGoalRepository(store, ""),
		service.WithClock(func() time.Time { return testNow }),
		service.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("goal-%d", n)
		}),
	)
	planner := service.NewPlannerService(goals, repository.NewJournalRepository(store), time.UTC)

	goal := NewGoalHandler(goals, time.UTC)
	plan := NewPlannerHandler(planner)
	home := NewHomeHandler(planner, markdown.NewParser())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", Health)
	mux.HandleFunc("GET /{$}", home.OverviewPage)
	mux.HandleFunc("GET /api/goals", goal.List)
	mux.HandleFunc("GET /api/goals/export", goal.Export)
	mux.HandleFunc("POST /api/goals", goal.Create)
	mux.HandleFunc("POST /api/goals/{id}/toggle", goal.Toggle)
	mux.HandleFunc("GET /api/overview", plan.Overview)
	mux.HandleFunc("GET /api/daily", plan.Daily)
	mux.HandleFunc("POST /api/daily", plan.AddDaily)
	mux.HandleFunc("PUT /api/daily/journal", plan.SaveJournal)
	mux.HandleFunc("GET /api/weekly", plan.Weekly)
	mux.HandleFunc("POST /api/weekly", plan.AddWeekly)
	mux.HandleFunc("PUT /api/weekly/review", plan.SaveReview)
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	return &testEnv{goals: goals, planner: planner, mux: mux}
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCreateAndListGoals(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/goals", `{"title":"  Learn Rust ","category":"Personal","priority":"medium","dueDate":"2024-01-07"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[model.Goal](t, rec)
	assert.Equal(t, "goal-1", created.ID)
	assert.Equal(t, "Learn Rust", created.Title)
	assert.Equal(t, model.CategoryPersonal, created.Category)
	assert.False(t, created.Completed)
	assert.True(t, testNow.Equal(created.CreatedAt))
	require.NotNil(t, created.DueDate)
	assert.Equal(t, "2024-01-07", created.DueDate.Format("2006-01-02"))

	rec = env.do(http.MethodGet, "/api/goals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	goals := decode[[]model.Goal](t, rec)
	require.Len(t, goals, 1)
	assert.Equal(t, created.ID, goals[0].ID)
}

func TestListGoals_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/goals", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateGoal_Rejects(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]string{
		"empty body":       ``,
		"bad json":         `{"title":`,
		"unknown field":    `{"title":"x","category":"health","priority":"low","owner":"me"}`,
		"blank title":      `{"title":"   ","category":"health","priority":"low"}`,
		"unknown category": `{"title":"x","category":"hobbies","priority":"low"}`,
		"unknown priority": `{"title":"x","category":"health","priority":"urgent"}`,
		"bad due date":     `{"title":"x","category":"health","priority":"low","dueDate":"soon"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(body))
			rec := httptest.NewRecorder()
			env.mux.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}

	assert.Empty(t, env.goals.Goals(), "rejected input never reaches the store")
}

func TestToggleGoal(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodPost, "/api/goals", `{"title":"a","category":"health","priority":"low"}`)

	rec := env.do(http.MethodPost, "/api/goals/goal-1/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[model.Goal](t, rec).Completed)

	rec = env.do(http.MethodPost, "/api/goals/goal-1/toggle", "")
	assert.False(t, decode[model.Goal](t, rec).Completed)

	rec = env.do(http.MethodPost, "/api/goals/missing/toggle", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, env.goals.Goals(), 1)
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodPost, "/api/goals", `{"title":"a","category":"health","priority":"low"}`)

	rec := env.do(http.MethodGet, "/api/goals/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="goals-2024-01-03.json"`, rec.Header().Get("Content-Disposition"))
	assert.Len(t, decode[[]model.Goal](t, rec), 1)
}

func TestOverviewEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodPost, "/api/goals", `{"title":"a","category":"health","priority":"low","dueDate":"2024-01-01"}`)
	env.do(http.MethodPost, "/api/goals", `{"title":"b","category":"career","priority":"high","completed":true}`)

	ov := decode[model.Overview](t, env.do(http.MethodGet, "/api/overview", ""))
	assert.Equal(t, 2, ov.Total)
	assert.Equal(t, 1, ov.Completed)
	assert.Equal(t, 50, ov.CompletionRate)
	require.Len(t, ov.Upcoming, 1)
	assert.Equal(t, model.UrgencyOverdue, ov.Upcoming[0].Deadline.Urgency)
	assert.Equal(t, "Overdue by 2 days", ov.Upcoming[0].Label)
}

func TestDaily(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/daily?date=2024-01-05", `{"title":"Dentist","category":"health","priority":"high","dueDate":"2024-02-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "2024-01-05", decode[model.Goal](t, rec).DueDate.Format("2006-01-02"), "the selected day wins")

	env.do(http.MethodPost, "/api/goals", `{"title":"undated","category":"health","priority":"low"}`)

	day := decode[model.DailySummary](t, env.do(http.MethodGet, "/api/daily?date=2024-01-05", ""))
	require.Len(t, day.Goals, 1)
	assert.Equal(t, "Dentist", day.Goals[0].Title)

	today := decode[model.DailySummary](t, env.do(http.MethodGet, "/api/daily", ""))
	assert.Equal(t, "2024-01-03", today.Date)
	require.Len(t, today.Goals, 1)
	assert.Equal(t, "undated", today.Goals[0].Title)
	assert.Equal(t, model.EnergyLevelDefault, today.Journal.EnergyLevel)

	rec = env.do(http.MethodGet, "/api/daily?date=01/05/2024", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveJournal(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPut, "/api/daily/journal?date=2024-01-03", `{"notes":"Deep work","mood":"excellent","energyLevel":9}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	day := decode[model.DailySummary](t, env.do(http.MethodGet, "/api/daily?date=2024-01-03", ""))
	assert.Equal(t, "Deep work", day.Journal.Notes)
	assert.Equal(t, model.MoodExcellent, day.Journal.Mood)
	assert.Equal(t, 9, day.Journal.EnergyLevel)

	rec = env.do(http.MethodPut, "/api/daily/journal", `{"energyLevel":11}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPut, "/api/daily/journal", `{"mood":"grumpy"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeekly(t *testing.T) {
	env := newTestEnv(t)

	// Any date inside the week resolves to its Monday.
	rec := env.do(http.MethodPost, "/api/weekly?week=2024-01-04", `{"title":"Plan sprint","category":"career","priority":"medium"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "2024-01-07", decode[model.Goal](t, rec).DueDate.Format("2006-01-02"))

	week := decode[model.WeeklySummary](t, env.do(http.MethodGet, "/api/weekly", ""))
	assert.Equal(t, "2024-01-01", week.WeekStart)
	assert.Equal(t, "2024-01-07", week.WeekEnd)
	require.Len(t, week.Goals, 1)
	assert.Equal(t, 1, week.Remaining)

	next := decode[model.WeeklySummary](t, env.do(http.MethodGet, "/api/weekly?week=2024-01-08", ""))
	assert.Empty(t, next.Goals)
}

func TestSaveReview(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPut, "/api/weekly/review?week=2024-01-03", `{"priorities":["Ship"," ",""],"reflection":"Good week","achievements":["Launched"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	review := decode[model.WeeklyReview](t, rec)
	assert.Equal(t, "2024-01-01", review.WeekStart)
	assert.Equal(t, []string{"Ship"}, review.Priorities)

	week := decode[model.WeeklySummary](t, env.do(http.MethodGet, "/api/weekly?week=2024-01-01", ""))
	assert.Equal(t, "Good week", week.Review.Reflection)
	assert.Equal(t, []string{"Launched"}, week.Review.Achievements)
}

func TestOverviewPage(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodPost, "/api/goals", `{"title":"Read <b>more</b>","description":"Two *chapters* a day","category":"education","priority":"low"}`)

	rec := env.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Read &lt;b&gt;more&lt;/b&gt;")
	assert.Contains(t, body, "<em>chapters</em>")
	assert.Contains(t, body, "Wednesday, January 3, 2024")
}

func TestNotFoundAndHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")

	rec = env.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
