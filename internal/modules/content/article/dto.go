package article

import (
	"time"

	"github.com/roar-media/core/internal/models"
)

// SaveArticleDTO is the multipart form body for POST /articles. Blocks is
// the JSON-encoded wire array and is required on every save so the article
// body can never be silently dropped.
type SaveArticleDTO struct {
	ID      string `form:"id"`
	Title   string `form:"title"  binding:"required"`
	Author  string `form:"author"`
	Date    string `form:"date"`
	Status  string `form:"status" binding:"required,oneof=draft published"`
	Font    string `form:"font"`
	Color   string `form:"color"`
	Summary string `form:"summary"`
	Blocks  string `form:"blocks" binding:"required"`
}

// articleResponse is the API shape for an article; blocks stay in their
// stored wire form and are decoded lazily by the composer.
type articleResponse struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Author     string               `json:"author"`
	Date       string               `json:"date"`
	Font       string               `json:"font"`
	Color      string               `json:"color"`
	Summary    string               `json:"summary"`
	CoverImage string               `json:"coverImage"`
	PDFFile    string               `json:"pdfFile"`
	Status     models.ArticleStatus `json:"status"`
	Blocks     string               `json:"blocks"`
	Created    time.Time            `json:"created"`
	Modified   time.Time            `json:"modified"`
}

func toResponse(a *models.ArticleModel) articleResponse {
	return articleResponse{
		ID:         a.ID,
		Title:      a.Title,
		Author:     a.Author,
		Date:       a.Date,
		Font:       a.Font,
		Color:      a.Color,
		Summary:    a.Summary,
		CoverImage: a.CoverImage,
		PDFFile:    a.PDFFile,
		Status:     a.Status,
		Blocks:     a.Blocks,
		Created:    a.CreatedAt,
		Modified:   a.UpdatedAt,
	}
}
