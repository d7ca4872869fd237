package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/db"
	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/intelligence"
	"github.com/alexanderramin/aurora/internal/repository"
	"github.com/google/uuid"
)

// ErrEmptyMessage is returned when a chat message is blank after trimming.
var ErrEmptyMessage = errors.New("message is empty")

type chatService struct {
	tasks     repository.TaskRepo
	messages  repository.MessageRepo
	profiles  ProfileService
	plans     PlanService
	uow       db.UnitOfWork
	generator *intelligence.Generator
	now       func() time.Time
	observer  UseCaseObserver
}

func NewChatService(
	tasks repository.TaskRepo,
	messages repository.MessageRepo,
	profiles ProfileService,
	plans PlanService,
	uow db.UnitOfWork,
	generator *intelligence.Generator,
	observers ...UseCaseObserver,
) ChatService {
	if generator == nil {
		generator = intelligence.NewGenerator()
	}
	return &chatService{
		tasks:     tasks,
		messages:  messages,
		profiles:  profiles,
		plans:     plans,
		uow:       uow,
		generator: generator,
		now:       time.Now,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Ask runs one assistant turn against a snapshot of the current state and
// records both sides of the exchange. A regenerated plan is committed in
// the same transaction as the messages.
func (s *chatService) Ask(ctx context.Context, message string) (result *AskResult, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "ask-assistant", time.Now(), fields, &err)

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	actx, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	resp := s.generator.Respond(message, actx)
	categories := intelligence.Categories(message)
	fields["categories"] = categories
	fields["plan_updated"] = resp.UpdatedPlan != nil
	fields["recommended"] = len(resp.RecommendedTasks)

	at := s.now()
	question := domain.ChatMessage{ID: uuid.New().String(), Role: domain.RoleUser, Content: message, CreatedAt: at}
	answer := domain.ChatMessage{ID: uuid.New().String(), Role: domain.RoleAssistant, Content: resp.Reply, CreatedAt: at}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		msgs := repository.NewSQLiteMessageRepo(tx)
		if err := msgs.Append(ctx, &question); err != nil {
			return err
		}
		if err := msgs.Append(ctx, &answer); err != nil {
			return err
		}
		if resp.UpdatedPlan != nil {
			return repository.NewSQLitePlanRepo(tx).Replace(ctx, resp.UpdatedPlan)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recording assistant turn: %w", err)
	}

	return &AskResult{
		Response:   resp,
		Categories: categories,
		Question:   question,
		Answer:     answer,
	}, nil
}

func (s *chatService) History(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	return s.messages.ListRecent(ctx, limit)
}

func (s *chatService) snapshot(ctx context.Context) (domain.AssistantContext, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return domain.AssistantContext{}, fmt.Errorf("loading tasks: %w", err)
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return domain.AssistantContext{}, fmt.Errorf("loading profile: %w", err)
	}
	plan, err := s.plans.Current(ctx)
	if err != nil {
		return domain.AssistantContext{}, fmt.Errorf("loading plan: %w", err)
	}
	return domain.AssistantContext{Tasks: tasks, Profile: profile, Plan: plan}, nil
}
