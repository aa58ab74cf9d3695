package services

import (
	"os"
	"strconv"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/heartwired/valentine_api/dto"
	"github.com/heartwired/valentine_api/model"
	"github.com/heartwired/valentine_api/services/repositories"
	"github.com/heartwired/valentine_api/shared"
)

// ContentService owns the ordered content collections and the role-resolved
// visible views over them. The visible view is never stored: it is recomputed
// from (role, unlock counters, full list) on every read.
type ContentService struct {
	appContext.DefaultService

	sqlSvc   *PostgresService
	minioSvc *MinIOService

	contentRepo *repositories.ContentRepository
	unlockRepo  *repositories.UnlockRepository

	totalSlots int
}

const CONTENT_SVC = "content_svc"

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *appContext.Context) error {
	svc.totalSlots = 5
	if slotsStr := os.Getenv("CONTENT_TOTAL_SLOTS"); slotsStr != "" {
		if slots, err := strconv.Atoi(slotsStr); err == nil && slots > 0 {
			svc.totalSlots = slots
		}
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)

	svc.contentRepo = repositories.NewContentRepository(svc.sqlSvc.Db())
	svc.unlockRepo = repositories.NewUnlockRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *ContentService) TotalSlots() int {
	return svc.totalSlots
}

func (svc *ContentService) Repository() *repositories.ContentRepository {
	return svc.contentRepo
}

func (svc *ContentService) UnlockRepository() *repositories.UnlockRepository {
	return svc.unlockRepo
}

// ==================== VISIBLE VIEWS (read path) ====================

// visibleCount resolves how many of listLen items a caller may see: admins
// see everything, users see the unlocked prefix, guests see nothing. The
// second result is the locked-placeholder count, floored at zero.
func visibleCount(role string, listLen, counter, totalSlots int) (visible, locked int) {
	switch role {
	case shared.RoleAdmin:
		return listLen, 0
	case shared.RoleUser:
		visible = counter
		if visible > listLen {
			visible = listLen
		}
		locked = totalSlots - visible
		if locked < 0 {
			locked = 0
		}
		return visible, locked
	default:
		return 0, totalSlots
	}
}

func buildPictureView(pictures []model.Picture, counts *model.UnlockCount, role string, totalSlots int) *dto.PictureCollectionResponse {
	counter := 0
	if counts != nil {
		counter = counts.Pictures
	}
	visible, locked := visibleCount(role, len(pictures), counter, totalSlots)

	out := make([]dto.PictureResponse, 0, visible)
	for _, p := range pictures[:visible] {
		out = append(out, dto.PictureResponse{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			URL:         p.URL,
			Position:    p.Position,
		})
	}

	return &dto.PictureCollectionResponse{
		Pictures: out,
		Locked:   locked,
		Total:    totalSlots,
	}
}

func buildMessageView(messages []model.Message, counts *model.UnlockCount, role string, totalSlots int) *dto.MessageCollectionResponse {
	counter := 0
	if counts != nil {
		counter = counts.Messages
	}
	visible, locked := visibleCount(role, len(messages), counter, totalSlots)

	out := make([]dto.MessageResponse, 0, visible)
	for _, m := range messages[:visible] {
		out = append(out, dto.MessageResponse{
			ID:       m.ID,
			Content:  m.Content,
			Position: m.Position,
		})
	}

	return &dto.MessageCollectionResponse{
		Messages: out,
		Locked:   locked,
		Total:    totalSlots,
	}
}

func buildTreatView(treats []model.SweetTreat, counts *model.UnlockCount, role string, totalSlots int) *dto.TreatCollectionResponse {
	counter := 0
	if counts != nil {
		counter = counts.Treats
	}
	visible, locked := visibleCount(role, len(treats), counter, totalSlots)

	out := make([]dto.TreatResponse, 0, visible)
	for _, t := range treats[:visible] {
		out = append(out, dto.TreatResponse{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Position:    t.Position,
		})
	}

	return &dto.TreatCollectionResponse{
		Treats: out,
		Locked: locked,
		Total:  totalSlots,
	}
}

func (svc *ContentService) callerCounts(userID, role string) (*model.UnlockCount, error) {
	if role != shared.RoleUser {
		return nil, nil
	}
	return svc.unlockRepo.GetCounts(userID)
}

func (svc *ContentService) GetPictures(userID, role string) (*dto.PictureCollectionResponse, error) {
	pictures, err := svc.contentRepo.GetPictures()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	counts, err := svc.callerCounts(userID, role)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return buildPictureView(pictures, counts, role, svc.totalSlots), nil
}

func (svc *ContentService) GetMessages(userID, role string) (*dto.MessageCollectionResponse, error) {
	messages, err := svc.contentRepo.GetMessages()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	counts, err := svc.callerCounts(userID, role)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return buildMessageView(messages, counts, role, svc.totalSlots), nil
}

func (svc *ContentService) GetTreats(userID, role string) (*dto.TreatCollectionResponse, error) {
	treats, err := svc.contentRepo.GetTreats()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	counts, err := svc.callerCounts(userID, role)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return buildTreatView(treats, counts, role, svc.totalSlots), nil
}

// ==================== PICTURES (owner write path) ====================

func (svc *ContentService) AddPicture(req dto.AddPictureRequest) (*dto.PictureResponse, error) {
	picture, err := svc.contentRepo.CreatePicture(&model.Picture{
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.PictureResponse{
		ID:          picture.ID,
		Title:       picture.Title,
		Description: picture.Description,
		URL:         picture.URL,
		Position:    picture.Position,
	}, nil
}

func (svc *ContentService) UpdatePicture(id string, req dto.UpdatePictureRequest) (*dto.PictureResponse, error) {
	picture, err := svc.contentRepo.GetPicture(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	picture.Title = req.Title
	picture.Description = req.Description
	picture.Position = req.Position

	if err := svc.contentRepo.UpdatePicture(picture); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.PictureResponse{
		ID:          picture.ID,
		Title:       picture.Title,
		Description: picture.Description,
		URL:         picture.URL,
		Position:    picture.Position,
	}, nil
}

func (svc *ContentService) DeletePicture(id string) error {
	picture, err := svc.contentRepo.GetPicture(id)
	if err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	if err := svc.contentRepo.DeletePicture(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	if picture.ObjectKey != "" {
		if err := svc.minioSvc.DeleteFile(picture.ObjectKey); err != nil {
			log.WithError(err).WithField("object_key", picture.ObjectKey).
				Warn("Failed to delete picture blob")
		}
	}

	return nil
}

func (svc *ContentService) ReorderPictures(req dto.ReorderRequest) error {
	if err := svc.contentRepo.ReorderPictures(req.OrderedIDs); err != nil {
		return shared.NewBadRequestError(err, "Failed to reorder pictures")
	}
	return nil
}

// SetPictureBlob records the stored object for a picture after upload.
func (svc *ContentService) SetPictureBlob(id, objectKey, url string) error {
	picture, err := svc.contentRepo.GetPicture(id)
	if err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	picture.ObjectKey = objectKey
	picture.URL = url

	if err := svc.contentRepo.UpdatePicture(picture); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

// ==================== MESSAGES (owner write path) ====================

func (svc *ContentService) AddMessage(req dto.AddMessageRequest) (*dto.MessageResponse, error) {
	message, err := svc.contentRepo.CreateMessage(&model.Message{
		Content:  req.Content,
		Position: req.Position,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.MessageResponse{
		ID:       message.ID,
		Content:  message.Content,
		Position: message.Position,
	}, nil
}

func (svc *ContentService) UpdateMessage(id string, req dto.UpdateMessageRequest) (*dto.MessageResponse, error) {
	message, err := svc.contentRepo.GetMessage(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	message.Content = req.Content
	message.Position = req.Position

	if err := svc.contentRepo.UpdateMessage(message); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.MessageResponse{
		ID:       message.ID,
		Content:  message.Content,
		Position: message.Position,
	}, nil
}

func (svc *ContentService) DeleteMessage(id string) error {
	if _, err := svc.contentRepo.GetMessage(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	if err := svc.contentRepo.DeleteMessage(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

func (svc *ContentService) ReorderMessages(req dto.ReorderRequest) error {
	if err := svc.contentRepo.ReorderMessages(req.OrderedIDs); err != nil {
		return shared.NewBadRequestError(err, "Failed to reorder messages")
	}
	return nil
}

// ==================== SWEET TREATS (owner write path) ====================

func (svc *ContentService) AddTreat(req dto.AddTreatRequest) (*dto.TreatResponse, error) {
	treat, err := svc.contentRepo.CreateTreat(&model.SweetTreat{
		Name:        req.Name,
		Description: req.Description,
		Position:    req.Position,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.TreatResponse{
		ID:          treat.ID,
		Name:        treat.Name,
		Description: treat.Description,
		Position:    treat.Position,
	}, nil
}

func (svc *ContentService) UpdateTreat(id string, req dto.UpdateTreatRequest) (*dto.TreatResponse, error) {
	treat, err := svc.contentRepo.GetTreat(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	treat.Name = req.Name
	treat.Description = req.Description
	treat.Position = req.Position

	if err := svc.contentRepo.UpdateTreat(treat); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.TreatResponse{
		ID:          treat.ID,
		Name:        treat.Name,
		Description: treat.Description,
		Position:    treat.Position,
	}, nil
}

func (svc *ContentService) DeleteTreat(id string) error {
	if _, err := svc.contentRepo.GetTreat(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	if err := svc.contentRepo.DeleteTreat(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

func (svc *ContentService) ReorderTreats(req dto.ReorderRequest) error {
	if err := svc.contentRepo.ReorderTreats(req.OrderedIDs); err != nil {
		return shared.NewBadRequestError(err, "Failed to reorder treats")
	}
	return nil
}
