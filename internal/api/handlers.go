package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/intelligence"
	"github.com/alexanderramin/aurora/internal/repository"
	"github.com/alexanderramin/aurora/internal/seed"
	"github.com/alexanderramin/aurora/internal/service"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

type taskRequest struct {
	Course           string `json:"course"`
	Title            string `json:"title"`
	Due              string `json:"due"`
	Effort           string `json:"effort"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

func (req taskRequest) toTask() (domain.Task, error) {
	due, err := domain.ParseDue(req.Due, time.Local)
	if err != nil {
		return domain.Task{}, err
	}
	effort, err := domain.ParseEffort(req.Effort)
	if err != nil {
		return domain.Task{}, err
	}
	return domain.Task{
		Course:           strings.TrimSpace(req.Course),
		Title:            strings.TrimSpace(req.Title),
		Due:              due,
		Effort:           effort,
		EstimatedMinutes: req.EstimatedMinutes,
	}, nil
}

type askRequest struct {
	Message string `json:"message"`
}

type askResponse struct {
	Reply            string            `json:"reply"`
	UpdatedPlan      domain.WeeklyPlan `json:"updated_plan,omitempty"`
	RecommendedTasks []domain.Task     `json:"recommended_tasks"`
	FollowUpPrompts  []string          `json:"follow_up_prompts"`
	Categories       []string          `json:"categories"`
}

type promptsResponse struct {
	QuickPrompts    []string `json:"quick_prompts"`
	DefaultFollowUp []string `json:"default_follow_ups"`
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.svc.Tasks.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !s.decode(w, r, &req) {
		return
	}
	task, err := req.toTask()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.svc.Tasks.Add(r.Context(), &task); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, task)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Tasks.Remove(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.svc.Plans.Current(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, plan)
}

func (s *Server) regeneratePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.svc.Plans.Regenerate(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, plan)
}

func (s *Server) ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, err := s.svc.Chat.Ask(r.Context(), req.Message)
	if err != nil {
		s.writeError(w, err)
		return
	}
	categories := res.Categories
	if categories == nil {
		categories = []string{}
	}
	s.writeJSON(w, http.StatusOK, askResponse{
		Reply:            res.Response.Reply,
		UpdatedPlan:      res.Response.UpdatedPlan,
		RecommendedTasks: res.Response.RecommendedTasks,
		FollowUpPrompts:  res.Response.FollowUpPrompts,
		Categories:       categories,
	})
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}
	msgs, err := s.svc.Chat.History(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Profiles.Get(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) listPrompts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, promptsResponse{
		QuickPrompts:    seed.QuickPrompts(),
		DefaultFollowUp: intelligence.DefaultFollowUps(),
	})
}

func (s *Server) listResources(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, seed.Resources())
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json: " + err.Error()})
		return false
	}
	return true
}

// writeError maps domain sentinels onto status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidTask), errors.Is(err, service.ErrEmptyMessage):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, status, errorBody{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encoding response", zap.Error(err))
	}
}
