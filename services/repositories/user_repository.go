package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartwired/valentine_api/model"
)

type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *UserRepository) Create(user *model.User) (*model.User, error) {
	if user.ID == "" {
		id, _ := uuid.NewV7()
		user.ID = id.String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := ds.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (ds *UserRepository) GetByID(id string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) GetByEmailOrUsername(identity string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("email = ? OR username = ?", identity, identity).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) Update(user *model.User) error {
	user.UpdatedAt = time.Now()
	return ds.db.Save(user).Error
}

func (ds *UserRepository) UpdateLastLogin(id string) error {
	return ds.db.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_login": time.Now(),
			"updated_at": time.Now(),
		}).Error
}

func (ds *UserRepository) UpdateRole(id, role string) error {
	return ds.db.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":       role,
			"updated_at": time.Now(),
		}).Error
}
