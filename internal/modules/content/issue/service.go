package issue

import (
	"gorm.io/gorm"

	"github.com/roar-media/core/internal/models"
)

// Service handles magazine issue business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]models.IssueModel, error) {
	var items []models.IssueModel
	if err := s.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Create(dto *CreateIssueDTO, coverName string) (*models.IssueModel, error) {
	item := models.IssueModel{
		Title:       dto.Title,
		Description: dto.Description,
		Season:      dto.Season,
		Year:        dto.Year,
		CoverImage:  coverName,
		Link:        dto.Link,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) Delete(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.IssueModel{}).Error
}
