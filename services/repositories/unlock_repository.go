package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/heartwired/valentine_api/model"
)

type UnlockRepository struct {
	BaseRepository
}

func NewUnlockRepository(db *gorm.DB) *UnlockRepository {
	return &UnlockRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// GetCounts returns the caller's unlock counters, zero-valued when the user
// has never unlocked anything.
func (ds *UnlockRepository) GetCounts(userID string) (*model.UnlockCount, error) {
	var counts model.UnlockCount
	err := ds.db.Where("user_id = ?", userID).First(&counts).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.UnlockCount{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// Increment bumps the requested counters by one each, capped at maxSlots,
// inside a single transaction with the row locked. Returns the counters as
// they were before the increment and as they are after it.
func (ds *UnlockRepository) Increment(userID string, pictures, messages, treats bool, maxSlots int) (previous, current *model.UnlockCount, err error) {
	err = ds.db.Transaction(func(tx *gorm.DB) error {
		var counts model.UnlockCount
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&counts).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			counts = model.UnlockCount{UserID: userID}
			if err := tx.Create(&counts).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		prev := counts
		previous = &prev

		if pictures && counts.Pictures < maxSlots {
			counts.Pictures++
		}
		if messages && counts.Messages < maxSlots {
			counts.Messages++
		}
		if treats && counts.Treats < maxSlots {
			counts.Treats++
		}
		counts.UpdatedAt = time.Now()

		if err := tx.Save(&counts).Error; err != nil {
			return err
		}

		cur := counts
		current = &cur
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return previous, current, nil
}
