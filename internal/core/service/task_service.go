package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/questlog/questlog/internal/api/metrics"
	"github.com/questlog/questlog/internal/core/domain"
	"github.com/questlog/questlog/internal/core/ports"
)

// TaskService implements owner-scoped task operations.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) List(ctx context.Context, userID int) ([]domain.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TaskService) Create(ctx context.Context, userID int, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.TaskName == "" || input.Status == "" {
		return nil, domain.ErrMissingFields
	}

	task := &domain.Task{
		UserID:      userID,
		TaskName:    input.TaskName,
		Status:      input.Status,
		CreatedDate: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("task").Inc()
	s.logger.Debug().Int("user_id", userID).Int("task_id", created.TaskID).Msg("task created")
	return created, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID int) error {
	if err := s.repo.Delete(ctx, userID, taskID); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues("task").Inc()
	return nil
}
