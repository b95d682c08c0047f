package episode

import (
	"strings"

	"github.com/roar-media/core/internal/models"
)

// CreateEpisodeDTO is the multipart form posted from the podcast studio.
// Embed carries the full Spotify iframe snippet; the playable URL is
// extracted server-side. Guests is a comma-separated list.
type CreateEpisodeDTO struct {
	Title     string `form:"title" binding:"required"`
	Desc      string `form:"desc"`
	Duration  string `form:"duration"`
	Date      string `form:"date"`
	Embed     string `form:"embed" binding:"required"`
	VideoLink string `form:"videoLink"`
	Guests    string `form:"guests"`
}

type episodeResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Desc       string   `json:"desc"`
	Duration   string   `json:"duration"`
	Date       string   `json:"date"`
	URL        string   `json:"url"`
	VideoLink  string   `json:"videoLink"`
	Guests     []string `json:"guests"`
	CoverImage string   `json:"coverImage"`
}

func toResponse(e *models.EpisodeModel) episodeResponse {
	guests := []string(e.Guests)
	if guests == nil {
		guests = []string{}
	}
	return episodeResponse{
		ID:         e.ID,
		Title:      e.Title,
		Desc:       e.Desc,
		Duration:   e.Duration,
		Date:       e.Date,
		URL:        e.URL,
		VideoLink:  e.VideoLink,
		Guests:     guests,
		CoverImage: e.CoverImage,
	}
}

// splitGuests turns the comma-separated form value into a clean slice.
func splitGuests(raw string) models.StringArray {
	parts := strings.Split(raw, ",")
	out := make(models.StringArray, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}
