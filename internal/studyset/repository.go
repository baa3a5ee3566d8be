package studyset

import (
	"errors"

	"gorm.io/gorm"
)

type StudySetRepository interface {
	Create(s *StudySet) error
	GetByID(id string) (*StudySet, error)
	ListByUser(userID string) ([]*StudySet, error)
	Delete(id string) error

	AddItems(items []*StudyItem) error
	ListItemsBySet(setID string) ([]*StudyItem, error)
}

type studySetRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) StudySetRepository {
	return &studySetRepository{db: db}
}

func (r *studySetRepository) Create(s *StudySet) error {
	return r.db.Create(s).Error
}

func (r *studySetRepository) GetByID(id string) (*StudySet, error) {
	var set StudySet
	if err := r.db.First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

func (r *studySetRepository) ListByUser(userID string) ([]*StudySet, error) {
	var sets []*StudySet
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *studySetRepository) Delete(id string) error {
	return r.db.Delete(&StudySet{}, "id = ?", id).Error
}

func (r *studySetRepository) AddItems(items []*StudyItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *studySetRepository) ListItemsBySet(setID string) ([]*StudyItem, error) {
	var items []*StudyItem
	if err := r.db.
		Where("set_id = ?", setID).
		Order("position ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
