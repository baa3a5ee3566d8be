package studyset

import (
	"context"
	"errors"

	"github.com/studycoach/backend/internal/config"
	"github.com/studycoach/backend/internal/generation"
	"gorm.io/gorm"
)

var (
	ErrSetNotFound = errors.New("study set not found")
	ErrInvalidKind = errors.New("invalid study set kind")
)

type StudySetService interface {
	CreateSetWithItems(ctx context.Context, set *StudySet, items []*StudyItem) error
	GetSetWithItems(ctx context.Context, setID string) (*StudySetWithItemsDTO, error)
	ListSetsByUser(ctx context.Context, userID string) ([]*StudySet, error)
	DeleteSet(ctx context.Context, setID string) error
}

type studySetService struct {
	repo StudySetRepository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo StudySetRepository) StudySetService {
	return &studySetService{repo: repo, db: db}
}

// validKind accepts every single-artifact kind; "all" is not storable as one
// set.
func validKind(kind string) bool {
	k := generation.Kind(kind)
	return k.Valid() && k != generation.KindAll
}

func (s *studySetService) CreateSetWithItems(ctx context.Context, set *StudySet, items []*StudyItem) error {
	log := config.WithContext(ctx)

	if !validKind(set.Kind) {
		return ErrInvalidKind
	}

	log.WithField("kind", set.Kind).WithField("items", len(items)).Info("Saving study set")

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(set).Error; err != nil {
			log.WithError(err).Error("Failed to create study set")
			return err
		}

		for i := range items {
			items[i].SetID = set.ID
			items[i].Position = i
		}

		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				log.WithError(err).Error("Failed to create study set items")
				return err
			}
		}

		log.WithField("set_id", set.ID.String()).Info("Study set saved")
		return nil
	})
}

func (s *studySetService) GetSetWithItems(ctx context.Context, setID string) (*StudySetWithItemsDTO, error) {
	log := config.WithContext(ctx)

	set, err := s.repo.GetByID(setID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch study set")
		return nil, err
	}
	if set == nil {
		return nil, ErrSetNotFound
	}

	items, err := s.repo.ListItemsBySet(setID)
	if err != nil {
		log.WithError(err).Error("Failed to list study set items")
		return nil, err
	}

	return &StudySetWithItemsDTO{Set: set, Items: items}, nil
}

func (s *studySetService) ListSetsByUser(ctx context.Context, userID string) ([]*StudySet, error) {
	log := config.WithContext(ctx)

	sets, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list study sets")
		return nil, err
	}
	return sets, nil
}

func (s *studySetService) DeleteSet(ctx context.Context, setID string) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(setID); err != nil {
		log.WithError(err).Error("Failed to delete study set")
		return err
	}

	log.WithField("set_id", setID).Info("Study set deleted")
	return nil
}
