package models

// EpisodeModel is one podcast episode in the directory. URL is the playable
// Spotify link, extracted from the pasted embed code on upload.
type EpisodeModel struct {
	Base
	Title      string      `json:"title"      gorm:"not null"`
	Desc       string      `json:"desc"       gorm:"type:text"`
	Duration   string      `json:"duration"`
	Date       string      `json:"date"`
	URL        string      `json:"url"        gorm:"type:text;not null"`
	VideoLink  string      `json:"videoLink"  gorm:"type:text"`
	Guests     StringArray `json:"guests"     gorm:"type:json"`
	CoverImage string      `json:"coverImage"`
}

func (EpisodeModel) TableName() string { return "episodes" }
