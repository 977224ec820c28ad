package ports

import (
	"context"

	"github.com/questlog/questlog/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	// ListByUser returns the owner's tasks in insertion order; never nil.
	ListByUser(ctx context.Context, userID int) ([]domain.Task, error)
	// Create appends the task, allocating its task_id from the store counter.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Delete removes the task only when both id and owner match; otherwise
	// domain.ErrTaskNotFound, deliberately indistinguishable from absence.
	Delete(ctx context.Context, userID, taskID int) error
}

// CharacterRepository defines persistence operations for characters.
type CharacterRepository interface {
	ListByUser(ctx context.Context, userID int) ([]domain.Character, error)
	Create(ctx context.Context, character *domain.Character) (*domain.Character, error)
	Delete(ctx context.Context, userID, characterID int) error
}
