package domain

import (
	"errors"
	"time"
)

var ErrCharacterNotFound = errors.New("character not found")

// Character is a user-scoped record with purely descriptive fields.
// Level is a string on purpose: the stored document keeps whatever text the
// client submitted ("5", "5 (epic)", ...).
type Character struct {
	CharacterID    int       `json:"character_id"`
	UserID         int       `json:"user_id"`
	CharacterName  string    `json:"character_name"`
	CharacterRace  string    `json:"character_race"`
	CharacterClass string    `json:"character_class"`
	CharacterBuild string    `json:"character_build"`
	CharacterLevel string    `json:"character_level"`
	CharacterSheet string    `json:"character_sheet"`
	CharacterImage string    `json:"character_image"`
	CreatedDate    time.Time `json:"created_date"`
}
