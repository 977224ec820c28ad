package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/questlog/questlog/internal/api/metrics"
	"github.com/questlog/questlog/internal/core/domain"
	"github.com/questlog/questlog/internal/core/ports"
)

// CharacterService implements owner-scoped character operations.
type CharacterService struct {
	repo   ports.CharacterRepository
	logger zerolog.Logger
}

func NewCharacterService(repo ports.CharacterRepository, logger zerolog.Logger) *CharacterService {
	return &CharacterService{repo: repo, logger: logger}
}

func (s *CharacterService) List(ctx context.Context, userID int) ([]domain.Character, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *CharacterService) Create(ctx context.Context, userID int, input ports.CreateCharacterInput) (*domain.Character, error) {
	required := []string{
		input.CharacterName,
		input.CharacterRace,
		input.CharacterClass,
		input.CharacterBuild,
		input.CharacterLevel,
		input.CharacterSheet,
		input.CharacterImage,
	}
	for _, v := range required {
		if v == "" {
			return nil, domain.ErrMissingFields
		}
	}

	character := &domain.Character{
		UserID:         userID,
		CharacterName:  input.CharacterName,
		CharacterRace:  input.CharacterRace,
		CharacterClass: input.CharacterClass,
		CharacterBuild: input.CharacterBuild,
		CharacterLevel: input.CharacterLevel,
		CharacterSheet: input.CharacterSheet,
		CharacterImage: input.CharacterImage,
		CreatedDate:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, character)
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("character").Inc()
	s.logger.Debug().Int("user_id", userID).Int("character_id", created.CharacterID).Msg("character created")
	return created, nil
}

func (s *CharacterService) Delete(ctx context.Context, userID, characterID int) error {
	if err := s.repo.Delete(ctx, userID, characterID); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues("character").Inc()
	return nil
}
