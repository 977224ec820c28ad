package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/questlog/questlog/internal/core/domain"
	"github.com/questlog/questlog/internal/core/ports"
)

type CharacterHandler struct {
	characterService ports.CharacterService
}

func NewCharacterHandler(characterService ports.CharacterService) *CharacterHandler {
	return &CharacterHandler{characterService: characterService}
}

type createCharacterRequest struct {
	CharacterName  string `json:"character_name"  validate:"required"`
	CharacterRace  string `json:"character_race"  validate:"required"`
	CharacterClass string `json:"character_class" validate:"required"`
	CharacterBuild string `json:"character_build" validate:"required"`
	CharacterLevel string `json:"character_level" validate:"required"`
	CharacterSheet string `json:"character_sheet" validate:"required"`
	CharacterImage string `json:"character_image" validate:"required"`
}

// List returns the authenticated user's characters in insertion order.
//
// @Summary      List own characters
// @Tags         characters
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Character
// @Failure      401  {object}  map[string]string
// @Router       /characters [get]
func (h *CharacterHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	characters, err := h.characterService.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, characters)
}

// Create adds a character owned by the authenticated user. All seven
// descriptive fields are required.
//
// @Summary      Create a character
// @Tags         characters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCharacterRequest  true  "Character fields"
// @Success      200   {object}  domain.Character
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /characters [post]
func (h *CharacterHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCharacterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	character, err := h.characterService.Create(c.Request().Context(), identity.UserID, ports.CreateCharacterInput{
		CharacterName:  req.CharacterName,
		CharacterRace:  req.CharacterRace,
		CharacterClass: req.CharacterClass,
		CharacterBuild: req.CharacterBuild,
		CharacterLevel: req.CharacterLevel,
		CharacterSheet: req.CharacterSheet,
		CharacterImage: req.CharacterImage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, character)
}

// Delete removes one of the authenticated user's characters.
//
// @Summary      Delete a character
// @Tags         characters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Character id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /characters/{id} [delete]
func (h *CharacterHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	characterID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrCharacterNotFound
	}

	if err := h.characterService.Delete(c.Request().Context(), identity.UserID, characterID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Msg: "Deleted"})
}
