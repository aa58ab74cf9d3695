package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/heartwired/valentine_api/dto"
	"github.com/heartwired/valentine_api/shared"
)

type AdminHandler struct {
	authSvc    AuthServiceInterface
	contentSvc ContentServiceInterface
	mediaSvc   MediaServiceInterface
}

func NewAdminHandler(authSvc AuthServiceInterface, contentSvc ContentServiceInterface, mediaSvc MediaServiceInterface) *AdminHandler {
	return &AdminHandler{
		authSvc:    authSvc,
		contentSvc: contentSvc,
		mediaSvc:   mediaSvc,
	}
}

// @Summary Create picture
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pictureRequest body dto.AddPictureRequest true "Picture details"
// @Success 201 {object} shared.Response{data=dto.PictureResponse}
// @Router /api/v1/admin/pictures [post]
func (h *AdminHandler) AddPicture(c *fiber.Ctx) error {
	var req dto.AddPictureRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.contentSvc.AddPicture(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Picture created", resp)
}

// @Summary Update picture
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picture ID"
// @Param pictureRequest body dto.UpdatePictureRequest true "Picture fields"
// @Success 200 {object} shared.Response{data=dto.PictureResponse}
// @Router /api/v1/admin/pictures/{id} [put]
func (h *AdminHandler) UpdatePicture(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdatePictureRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.contentSvc.UpdatePicture(id, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Picture updated", resp)
}

// @Summary Delete picture
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picture ID"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/admin/pictures/{id} [delete]
func (h *AdminHandler) DeletePicture(c *fiber.Ctx) error {
	if err := h.contentSvc.DeletePicture(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Picture deleted", "ok")
}

// @Summary Reorder pictures
// @Description Reassign picture positions to match the given ID order
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reorderRequest body dto.ReorderRequest true "Ordered picture IDs"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/admin/pictures/reorder [put]
func (h *AdminHandler) ReorderPictures(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if err := h.contentSvc.ReorderPictures(req); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Pictures reordered", "ok")
}

// @Summary Upload picture image
// @Description Upload a JPG or PNG image (max 5MB) for a picture
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Picture ID"
// @Param image formData file true "Image file"
// @Success 200 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/admin/pictures/{id}/image [post]
func (h *AdminHandler) UploadPictureImage(c *fiber.Ctx) error {
	id := c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return shared.NewBadRequestError(err, "Image file is required")
	}

	resp, err := h.mediaSvc.UploadPictureImage(id, file)
	if err != nil {
		return err
	}

	if err := h.contentSvc.SetPictureBlob(id, resp.ObjectKey, resp.URL); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Image uploaded", resp)
}

// @Summary Create message
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param messageRequest body dto.AddMessageRequest true "Message details"
// @Success 201 {object} shared.Response{data=dto.MessageResponse}
// @Router /api/v1/admin/messages [post]
func (h *AdminHandler) AddMessage(c *fiber.Ctx) error {
	var req dto.AddMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.contentSvc.AddMessage(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Message created", resp)
}

// @Summary Update message
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param messageRequest body dto.UpdateMessageRequest true "Message fields"
// @Success 200 {object} shared.Response{data=dto.MessageResponse}
// @Router /api/v1/admin/messages/{id} [put]
func (h *AdminHandler) UpdateMessage(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.contentSvc.UpdateMessage(id, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Message updated", resp)
}

// @Summary Delete message
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/admin/messages/{id} [delete]
func (h *AdminHandler) DeleteMessage(c *fiber.Ctx) error {
	if err := h.contentSvc.DeleteMessage(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Message deleted", "ok")
}

// @Summary Reorder messages
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reorderRequest body dto.ReorderRequest true "Ordered message IDs"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/admin/messages/reorder [put]
func (h *AdminHandler) ReorderMessages(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if err := h.contentSvc.ReorderMessages(req); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Messages reordered", "ok")
}

// @Summary Create sweet treat
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param treatRequest body dto.AddTreatRequest true "Treat details"
// @Success 201 {object} shared.Response{data=dto.TreatResponse}
// @Router /api/v1/admin/treats [post]
func (h *AdminHandler) AddTreat(c *fiber.Ctx) error {
	var req dto.AddTreatRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.contentSvc.AddTreat(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Treat created", resp)
}

// @Summary Update sweet treat
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Treat ID"
// @Param treatRequest body dto.UpdateTreatRequest true "Treat fields"
// @Success 200 {object} shared.Response{data=dto.TreatResponse}
// @Router /api/v1/admin/treats/{id} [put]
func (h *AdminHandler) UpdateTreat(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateTreatRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.contentSvc.UpdateTreat(id, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Treat updated", resp)
}

// @Summary Delete sweet treat
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Treat ID"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/admin/treats/{id} [delete]
func (h *AdminHandler) DeleteTreat(c *fiber.Ctx) error {
	if err := h.contentSvc.DeleteTreat(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Treat deleted", "ok")
}

// @Summary Reorder sweet treats
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reorderRequest body dto.ReorderRequest true "Ordered treat IDs"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/admin/treats/reorder [put]
func (h *AdminHandler) ReorderTreats(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if err := h.contentSvc.ReorderTreats(req); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Treats reordered", "ok")
}

// @Summary Assign role
// @Description Assign the admin or user role to an account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param roleRequest body dto.AssignRoleRequest true "Role to assign"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/admin/users/{id}/role [put]
func (h *AdminHandler) AssignRole(c *fiber.Ctx) error {
	var req dto.AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if err := h.authSvc.AssignRole(c.Params("id"), req.Role); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Role assigned", "ok")
}
