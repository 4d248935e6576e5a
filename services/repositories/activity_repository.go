package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kids-in-business/kib_api/model"
)

var ErrActivityNotFound = errors.New("activity not found")

type ActivityRepository struct {
	BaseRepository
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *ActivityRepository) ListOrdered() ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.Order("created_at asc").Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) Get(id string) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.Where("id = ?", id).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Activity{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ActivityRepository) Create(activity *model.Activity) (*model.Activity, error) {
	if err := r.db.Create(activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

// Update patches the listed columns only. Callers pass nil values for
// fields normalized to absent so they end up NULL, not "".
func (r *ActivityRepository) Update(id string, fields map[string]interface{}) error {
	result := r.db.Model(&model.Activity{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (r *ActivityRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.Activity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// SeedIfEmpty inserts the fallback catalog inside one transaction that
// re-checks emptiness, so two first loads racing each other cannot
// double-seed. Returns whether this call performed the seed.
func (r *ActivityRepository) SeedIfEmpty(activities []model.Activity) (bool, error) {
	seeded := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Activity{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Create(&activities).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	return seeded, err
}
