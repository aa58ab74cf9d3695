package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartwired/valentine_api/model"
)

type ContentRepository struct {
	BaseRepository
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ==================== PICTURES ====================

// GetPictures returns the full picture list ordered by position ascending,
// ties broken by creation order.
func (ds *ContentRepository) GetPictures() ([]model.Picture, error) {
	var pictures []model.Picture
	if err := ds.db.Order("position asc, created_at asc").Find(&pictures).Error; err != nil {
		return nil, err
	}
	return pictures, nil
}

func (ds *ContentRepository) GetPicture(id string) (*model.Picture, error) {
	var picture model.Picture
	if err := ds.db.Where("id = ?", id).First(&picture).Error; err != nil {
		return nil, err
	}
	return &picture, nil
}

func (ds *ContentRepository) CreatePicture(picture *model.Picture) (*model.Picture, error) {
	if picture.ID == "" {
		id, _ := uuid.NewV7()
		picture.ID = id.String()
	}
	picture.CreatedAt = time.Now()
	picture.UpdatedAt = time.Now()

	if err := ds.db.Create(picture).Error; err != nil {
		return nil, err
	}
	return picture, nil
}

func (ds *ContentRepository) UpdatePicture(picture *model.Picture) error {
	picture.UpdatedAt = time.Now()
	return ds.db.Save(picture).Error
}

func (ds *ContentRepository) DeletePicture(id string) error {
	return ds.db.Where("id = ?", id).Delete(&model.Picture{}).Error
}

func (ds *ContentRepository) ReorderPictures(orderedIDs []string) error {
	return ds.reorder(&model.Picture{}, orderedIDs)
}

// ==================== MESSAGES ====================

func (ds *ContentRepository) GetMessages() ([]model.Message, error) {
	var messages []model.Message
	if err := ds.db.Order("position asc, created_at asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (ds *ContentRepository) GetMessage(id string) (*model.Message, error) {
	var message model.Message
	if err := ds.db.Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (ds *ContentRepository) CreateMessage(message *model.Message) (*model.Message, error) {
	if message.ID == "" {
		id, _ := uuid.NewV7()
		message.ID = id.String()
	}
	message.CreatedAt = time.Now()
	message.UpdatedAt = time.Now()

	if err := ds.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

func (ds *ContentRepository) UpdateMessage(message *model.Message) error {
	message.UpdatedAt = time.Now()
	return ds.db.Save(message).Error
}

func (ds *ContentRepository) DeleteMessage(id string) error {
	return ds.db.Where("id = ?", id).Delete(&model.Message{}).Error
}

func (ds *ContentRepository) ReorderMessages(orderedIDs []string) error {
	return ds.reorder(&model.Message{}, orderedIDs)
}

// ==================== SWEET TREATS ====================

func (ds *ContentRepository) GetTreats() ([]model.SweetTreat, error) {
	var treats []model.SweetTreat
	if err := ds.db.Order("position asc, created_at asc").Find(&treats).Error; err != nil {
		return nil, err
	}
	return treats, nil
}

func (ds *ContentRepository) GetTreat(id string) (*model.SweetTreat, error) {
	var treat model.SweetTreat
	if err := ds.db.Where("id = ?", id).First(&treat).Error; err != nil {
		return nil, err
	}
	return &treat, nil
}

func (ds *ContentRepository) CreateTreat(treat *model.SweetTreat) (*model.SweetTreat, error) {
	if treat.ID == "" {
		id, _ := uuid.NewV7()
		treat.ID = id.String()
	}
	treat.CreatedAt = time.Now()
	treat.UpdatedAt = time.Now()

	if err := ds.db.Create(treat).Error; err != nil {
		return nil, err
	}
	return treat, nil
}

func (ds *ContentRepository) UpdateTreat(treat *model.SweetTreat) error {
	treat.UpdatedAt = time.Now()
	return ds.db.Save(treat).Error
}

func (ds *ContentRepository) DeleteTreat(id string) error {
	return ds.db.Where("id = ?", id).Delete(&model.SweetTreat{}).Error
}

func (ds *ContentRepository) ReorderTreats(orderedIDs []string) error {
	return ds.reorder(&model.SweetTreat{}, orderedIDs)
}

// reorder reassigns positions 0..n-1 following the given id order, in one
// transaction. Unknown ids are rejected before any write.
func (ds *ContentRepository) reorder(entity interface{}, orderedIDs []string) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(entity).Where("id IN ?", orderedIDs).Count(&count).Error; err != nil {
			return err
		}
		if int(count) != len(orderedIDs) {
			return fmt.Errorf("reorder list contains %d unknown ids", len(orderedIDs)-int(count))
		}

		for position, id := range orderedIDs {
			err := tx.Model(entity).
				Where("id = ?", id).
				Updates(map[string]interface{}{
					"position":   position,
					"updated_at": time.Now(),
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
