package jsonstore

import (
	"context"

	"github.com/questlog/questlog/internal/core/domain"
)

// TaskRepository implements ports.TaskRepository over the document store.
type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID int) ([]domain.Task, error) {
	tasks := []domain.Task{}
	err := r.store.View(func(doc *Document) error {
		for _, t := range doc.Tasks {
			if t.UserID == userID {
				tasks = append(tasks, t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	created := *task
	err := r.store.Update(func(doc *Document) error {
		created.TaskID = doc.NextIDs.Task
		doc.NextIDs.Task++
		doc.Tasks = append(doc.Tasks, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes the task only when id and owner both match. A task owned by
// someone else reports not-found, same as one that never existed.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID int) error {
	return r.store.Update(func(doc *Document) error {
		kept := doc.Tasks[:0]
		for _, t := range doc.Tasks {
			if t.TaskID == taskID && t.UserID == userID {
				continue
			}
			kept = append(kept, t)
		}
		if len(kept) == len(doc.Tasks) {
			return domain.ErrTaskNotFound
		}
		doc.Tasks = kept
		return nil
	})
}
