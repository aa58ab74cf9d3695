package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/heartwired/valentine_api/shared"
)

type ContentHandler struct {
	contentSvc ContentServiceInterface
}

func NewContentHandler(contentSvc ContentServiceInterface) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

func (h *ContentHandler) caller(c *fiber.Ctx) (userID, role string) {
	userID, _ = c.Locals(shared.UserID).(string)
	role, _ = c.Locals(shared.UserRole).(string)
	if role == "" {
		role = shared.RoleGuest
	}
	return userID, role
}

// @Summary List pictures
// @Description Get the caller's visible pictures plus locked placeholder count
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.PictureCollectionResponse}
// @Router /api/v1/pictures [get]
func (h *ContentHandler) GetPictures(c *fiber.Ctx) error {
	userID, role := h.caller(c)

	resp, err := h.contentSvc.GetPictures(userID, role)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary List messages
// @Description Get the caller's visible messages plus locked placeholder count
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.MessageCollectionResponse}
// @Router /api/v1/messages [get]
func (h *ContentHandler) GetMessages(c *fiber.Ctx) error {
	userID, role := h.caller(c)

	resp, err := h.contentSvc.GetMessages(userID, role)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary List sweet treats
// @Description Get the caller's visible treats plus locked placeholder count
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.TreatCollectionResponse}
// @Router /api/v1/treats [get]
func (h *ContentHandler) GetTreats(c *fiber.Ctx) error {
	userID, role := h.caller(c)

	resp, err := h.contentSvc.GetTreats(userID, role)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
