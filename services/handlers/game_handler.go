package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/heartwired/valentine_api/dto"
	"github.com/heartwired/valentine_api/shared"
)

type GameHandler struct {
	unlockSvc UnlockServiceInterface
}

func NewGameHandler(unlockSvc UnlockServiceInterface) *GameHandler {
	return &GameHandler{
		unlockSvc: unlockSvc,
	}
}

// @Summary Report a game win
// @Description Validate a win payload and, on a first-time win, unlock the next reward
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param winRequest body dto.WinRequest true "Win report"
// @Success 200 {object} shared.Response{data=dto.WinResponse}
// @Router /api/v1/games/win [post]
func (h *GameHandler) ReportWin(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	sessionID := c.Locals(shared.SessionID).(string)

	var req dto.WinRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.unlockSvc.HandleWin(c.Context(), userID, sessionID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Win processed", resp)
}

// @Summary List games
// @Description List the available mini games and their win targets
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=[]dto.GameInfo}
// @Router /api/v1/games [get]
func (h *GameHandler) ListGames(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, http.StatusOK, "Success", h.unlockSvc.ListGames())
}

// @Summary Get unlock counts
// @Description Get the caller's unlock counters for all content kinds
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.UnlockCountDTO}
// @Router /api/v1/unlocks [get]
func (h *GameHandler) GetUnlocks(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.unlockSvc.GetCounts(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Random love note
// @Description Get a random short love message for the win popup
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.WinMessageResponse}
// @Router /api/v1/games/win-message [get]
func (h *GameHandler) WinMessage(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, http.StatusOK, "Success", h.unlockSvc.WinMessage())
}

// @Summary Reset session progress
// @Description Clear the caller's per-session game completion record
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/progress/reset [post]
func (h *GameHandler) ResetProgress(c *fiber.Ctx) error {
	sessionID := c.Locals(shared.SessionID).(string)

	if err := h.unlockSvc.ResetProgress(c.Context(), sessionID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Progress reset", "ok")
}
