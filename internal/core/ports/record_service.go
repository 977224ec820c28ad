package ports

import (
	"context"

	"github.com/questlog/questlog/internal/core/domain"
)

// CreateTaskInput carries the client-supplied task fields. The owner is never
// part of the input: it is forced to the authenticated identity.
type CreateTaskInput struct {
	TaskName string
	Status   string
}

type TaskService interface {
	List(ctx context.Context, userID int) ([]domain.Task, error)
	Create(ctx context.Context, userID int, input CreateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID int) error
}

// CreateCharacterInput carries the seven required character fields.
type CreateCharacterInput struct {
	CharacterName  string
	CharacterRace  string
	CharacterClass string
	CharacterBuild string
	CharacterLevel string
	CharacterSheet string
	CharacterImage string
}

type CharacterService interface {
	List(ctx context.Context, userID int) ([]domain.Character, error)
	Create(ctx context.Context, userID int, input CreateCharacterInput) (*domain.Character, error)
	Delete(ctx context.Context, userID, characterID int) error
}
