package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	tasks        TaskService
	profiles     ProfileService
	plans        PlanService
	chat         ChatService
	historyLimit int
}

// NewDashboardService loads dashboard snapshots. historyLimit bounds the
// chat backlog; non-positive loads all of it.
func NewDashboardService(tasks TaskService, profiles ProfileService, plans PlanService, chat ChatService, historyLimit int) DashboardService {
	return &dashboardService{tasks: tasks, profiles: profiles, plans: plans, chat: chat, historyLimit: historyLimit}
}

func (s *dashboardService) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tasks, err := s.tasks.List(gctx)
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}
		snap.Tasks = tasks
		return nil
	})
	g.Go(func() error {
		p, err := s.profiles.Get(gctx)
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
		snap.Profile = p
		return nil
	})
	g.Go(func() error {
		plan, err := s.plans.Current(gctx)
		if err != nil {
			return fmt.Errorf("loading plan: %w", err)
		}
		snap.Plan = plan
		return nil
	})
	g.Go(func() error {
		history, err := s.chat.History(gctx, s.historyLimit)
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		snap.History = history
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
