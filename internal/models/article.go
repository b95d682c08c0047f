package models

// ArticleStatus is the lifecycle state of an article.
type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
)

// ArticleModel is one magazine article composed in the editor studio. The
// block sequence is stored in its wire form (a JSON array of
// {id,type,content}); decoding happens lazily per block in the composer.
type ArticleModel struct {
	Base
	Title      string        `json:"title"      gorm:"not null"`
	Author     string        `json:"author"`
	Date       string        `json:"date"`
	Font       string        `json:"font"`
	Color      string        `json:"color"`
	Summary    string        `json:"summary"`
	CoverImage string        `json:"coverImage"`
	PDFFile    string        `json:"pdfFile"    gorm:"column:pdf_file"`
	Status     ArticleStatus `json:"status"     gorm:"default:draft;index"`
	Blocks     string        `json:"blocks"     gorm:"type:longtext"`
}

func (ArticleModel) TableName() string { return "articles" }
