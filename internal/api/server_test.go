package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/intelligence"
	"github.com/alexanderramin/aurora/internal/repository"
	"github.com/alexanderramin/aurora/internal/seed"
	"github.com/alexanderramin/aurora/internal/service"
	"github.com/alexanderramin/aurora/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:3000"

func newTestServer(t *testing.T, seeded bool) http.Handler {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	if seeded {
		_, err := seed.Load(context.Background(), uow, time.Now(), false)
		require.NoError(t, err)
	}

	tasks := repository.NewSQLiteTaskRepo(database)
	profiles := service.NewProfileService(repository.NewSQLiteProfileRepo(database), nil)
	plans := service.NewPlanService(tasks, repository.NewSQLitePlanRepo(database), uow)
	gen := intelligence.NewGenerator(intelligence.WithIndexSource(intelligence.FixedIndex(0)))
	chat := service.NewChatService(tasks, repository.NewSQLiteMessageRepo(database), profiles, plans, uow, gen)

	srv := NewServer(Services{
		Tasks:    service.NewTaskService(tasks),
		Profiles: profiles,
		Plans:    plans,
		Chat:     chat,
	}, nil, []string{testOrigin})
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, false), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestListTasks_SortedByDue(t *testing.T) {
	rec := do(t, newTestServer(t, true), http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	tasks := decodeBody[[]domain.Task](t, rec)
	require.Len(t, tasks, 5)
	assert.Equal(t, "systems-lab", tasks[0].ID)
	assert.Equal(t, "capstone-outline", tasks[4].ID)
}

func TestCreateTask(t *testing.T) {
	h := newTestServer(t, false)

	rec := do(t, h, http.MethodPost, "/api/tasks",
		`{"course":"Calc","title":"Problem set","due":"2025-06-18","effort":"Light","estimated_minutes":45}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[domain.Task](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.EffortLight, created.Effort)
	assert.Equal(t, 9, created.Due.Hour())

	rec = do(t, h, http.MethodGet, "/api/tasks", "")
	assert.Len(t, decodeBody[[]domain.Task](t, rec), 1)
}

func TestCreateTask_Validation(t *testing.T) {
	h := newTestServer(t, false)

	cases := map[string]string{
		"bad effort":   `{"course":"Calc","title":"x","due":"2025-06-18","effort":"epic","estimated_minutes":45}`,
		"bad due":      `{"course":"Calc","title":"x","due":"soon","effort":"light","estimated_minutes":45}`,
		"zero minutes": `{"course":"Calc","title":"x","due":"2025-06-18","effort":"light","estimated_minutes":0}`,
		"blank title":  `{"course":"Calc","title":"  ","due":"2025-06-18","effort":"light","estimated_minutes":10}`,
		"bad json":     `{"course":`,
		"unknown key":  `{"course":"Calc","priority":1}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/tasks", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeBody[errorBody](t, rec).Error)
		})
	}
}

func TestDeleteTask(t *testing.T) {
	h := newTestServer(t, true)

	rec := do(t, h, http.MethodDelete, "/api/tasks/calc-quiz", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/tasks/calc-quiz", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlanEndpoints(t *testing.T) {
	h := newTestServer(t, true)

	rec := do(t, h, http.MethodGet, "/api/plan", "")
	require.Equal(t, http.StatusOK, rec.Code)
	plan := decodeBody[domain.WeeklyPlan](t, rec)
	require.Len(t, plan, 7)
	assert.Equal(t, "Monday", plan[0].Day)

	rec = do(t, h, http.MethodPost, "/api/plan/regenerate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[domain.WeeklyPlan](t, rec), 7)
}

func TestAsk(t *testing.T) {
	h := newTestServer(t, true)

	rec := do(t, h, http.MethodPost, "/api/assistant", `{"message":"Help me plan my exam prep"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[askResponse](t, rec)
	assert.Equal(t, []string{"schedule", "exam", "resources"}, resp.Categories)
	assert.Len(t, resp.UpdatedPlan, 7)
	assert.NotEmpty(t, resp.RecommendedTasks)
	assert.LessOrEqual(t, len(resp.RecommendedTasks), 3)
	assert.NotEmpty(t, resp.FollowUpPrompts)

	rec = do(t, h, http.MethodGet, "/api/messages?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	msgs := decodeBody[[]domain.ChatMessage](t, rec)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
}

func TestAsk_OmitsAbsentPlan(t *testing.T) {
	h := newTestServer(t, true)

	rec := do(t, h, http.MethodPost, "/api/assistant", `{"message":"time for a break"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	_, hasPlan := raw["updated_plan"]
	assert.False(t, hasPlan)
	assert.Contains(t, raw, "follow_up_prompts")
}

func TestAsk_EmptyRecommendationIsNotNull(t *testing.T) {
	rec := do(t, newTestServer(t, false), http.MethodPost, "/api/assistant", `{"message":"time for a break"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Contains(t, raw, "recommended_tasks")
	assert.JSONEq(t, `[]`, string(raw["recommended_tasks"]))
}

func TestAskResponse_AbsentRecommendationIsNull(t *testing.T) {
	body, err := json.Marshal(askResponse{Reply: "hi", FollowUpPrompts: []string{}, Categories: []string{}})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, "null", string(raw["recommended_tasks"]))
	assert.NotContains(t, raw, "updated_plan")
}

func TestAsk_EmptyMessage(t *testing.T) {
	rec := do(t, newTestServer(t, false), http.MethodPost, "/api/assistant", `{"message":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessages_BadLimit(t *testing.T) {
	rec := do(t, newTestServer(t, false), http.MethodGet, "/api/messages?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStaticEndpoints(t *testing.T) {
	h := newTestServer(t, true)

	rec := do(t, h, http.MethodGet, "/api/resources", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]domain.Resource](t, rec), 4)

	rec = do(t, h, http.MethodGet, "/api/prompts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	prompts := decodeBody[promptsResponse](t, rec)
	assert.Len(t, prompts.QuickPrompts, 5)

	rec = do(t, h, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jordan", decodeBody[domain.Profile](t, rec).Name)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(t, false), http.MethodPut, "/api/plan", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS_Preflight(t *testing.T) {
	h := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	h := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
