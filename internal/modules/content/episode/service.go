package episode

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/roar-media/core/internal/models"
)

var (
	errNoEmbedURL = errors.New("embed code contains no playable url")

	// matches the src attribute of the pasted Spotify iframe snippet
	embedSrcRe = regexp.MustCompile(`src="([^"]+)"`)
)

// Service handles podcast episode business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]models.EpisodeModel, error) {
	var items []models.EpisodeModel
	if err := s.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Create(dto *CreateEpisodeDTO, coverName string) (*models.EpisodeModel, error) {
	url, err := extractEmbedURL(dto.Embed)
	if err != nil {
		return nil, err
	}

	item := models.EpisodeModel{
		Title:      dto.Title,
		Desc:       dto.Desc,
		Duration:   dto.Duration,
		Date:       dto.Date,
		URL:        url,
		VideoLink:  dto.VideoLink,
		Guests:     splitGuests(dto.Guests),
		CoverImage: coverName,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) Delete(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.EpisodeModel{}).Error
}

// extractEmbedURL pulls the playable URL out of a pasted iframe snippet.
// A bare URL pasted without markup is accepted as-is.
func extractEmbedURL(embed string) (string, error) {
	embed = strings.TrimSpace(embed)
	if m := embedSrcRe.FindStringSubmatch(embed); m != nil {
		return m[1], nil
	}
	if strings.HasPrefix(embed, "https://") {
		return embed, nil
	}
	return "", errNoEmbedURL
}
