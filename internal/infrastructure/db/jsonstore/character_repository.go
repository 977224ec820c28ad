package jsonstore

import (
	"context"

	"github.com/questlog/questlog/internal/core/domain"
)

// CharacterRepository implements ports.CharacterRepository over the document
// store.
type CharacterRepository struct {
	store *Store
}

func NewCharacterRepository(store *Store) *CharacterRepository {
	return &CharacterRepository{store: store}
}

func (r *CharacterRepository) ListByUser(ctx context.Context, userID int) ([]domain.Character, error) {
	characters := []domain.Character{}
	err := r.store.View(func(doc *Document) error {
		for _, c := range doc.Characters {
			if c.UserID == userID {
				characters = append(characters, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *CharacterRepository) Create(ctx context.Context, character *domain.Character) (*domain.Character, error) {
	created := *character
	err := r.store.Update(func(doc *Document) error {
		created.CharacterID = doc.NextIDs.Character
		doc.NextIDs.Character++
		doc.Characters = append(doc.Characters, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CharacterRepository) Delete(ctx context.Context, userID, characterID int) error {
	return r.store.Update(func(doc *Document) error {
		kept := doc.Characters[:0]
		for _, c := range doc.Characters {
			if c.CharacterID == characterID && c.UserID == userID {
				continue
			}
			kept = append(kept, c)
		}
		if len(kept) == len(doc.Characters) {
			return domain.ErrCharacterNotFound
		}
		doc.Characters = kept
		return nil
	})
}
