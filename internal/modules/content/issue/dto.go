package issue

import "github.com/roar-media/core/internal/models"

// CreateIssueDTO is the multipart form for adding a flipbook issue.
type CreateIssueDTO struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Season      string `form:"season"`
	Year        string `form:"year"`
	Link        string `form:"link" binding:"required"`
}

type issueResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Season      string `json:"season"`
	Year        string `json:"year"`
	CoverImage  string `json:"coverImage"`
	Link        string `json:"link"`
}

func toResponse(i *models.IssueModel) issueResponse {
	return issueResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Season:      i.Season,
		Year:        i.Year,
		CoverImage:  i.CoverImage,
		Link:        i.Link,
	}
}
