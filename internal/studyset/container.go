package studyset

import "gorm.io/gorm"

type StudySetContainer struct {
	Handler *Handler
}

func NewStudySetContainer(db *gorm.DB) *StudySetContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service)

	return &StudySetContainer{
		Handler: handler,
	}
}
