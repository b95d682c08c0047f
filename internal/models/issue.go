package models

// IssueModel is one flipbook issue of the magazine.
type IssueModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Season      string `json:"season"`
	Year        string `json:"year"`
	CoverImage  string `json:"coverImage"`
	Link        string `json:"link"        gorm:"type:text"`
}

func (IssueModel) TableName() string { return "issues" }
