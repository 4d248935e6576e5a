package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kids-in-business/kib_api/model"
)

var ErrClassNotFound = errors.New("class not found")

type ClassRepository struct {
	BaseRepository
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{BaseRepository: NewBaseRepository(db)}
}

// ListByTeacher returns the teacher's classes in creation order, matching
// the ordering the catalog uses.
func (r *ClassRepository) ListByTeacher(teacherID string) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.Where("teacher_id = ?", teacherID).Order("created_at asc").Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) Get(id string) (*model.Class, error) {
	var class model.Class
	if err := r.db.Where("id = ?", id).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) Create(class *model.Class) (*model.Class, error) {
	if err := r.db.Create(class).Error; err != nil {
		return nil, err
	}
	return class, nil
}

// Rename updates the class name, filtered by owner so a teacher can only
// touch their own rows.
func (r *ClassRepository) Rename(id, teacherID, name string) error {
	result := r.db.Model(&model.Class{}).
		Where("id = ? AND teacher_id = ?", id, teacherID).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClassNotFound
	}
	return nil
}

func (r *ClassRepository) Delete(id, teacherID string) error {
	result := r.db.Where("id = ? AND teacher_id = ?", id, teacherID).Delete(&model.Class{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClassNotFound
	}
	return nil
}
