package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article is a blog post or case study. Both feed search results and
// title suggestions; Kind tells them apart.
type Article struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Kind string    `json:"kind" gorm:"not null;index;check:kind IN ('blog', 'case_study')"`
	Slug string    `json:"slug" gorm:"not null;uniqueIndex"`

	Title         string    `json:"title" gorm:"not null;index"`
	TitleLocales  LocaleMap `json:"title_locales" gorm:"type:jsonb;not null;default:'{}'"`
	Summary       string    `json:"summary"`
	SummaryLocale LocaleMap `json:"summary_locales" gorm:"type:jsonb;not null;default:'{}'"`

	ImageURL string `json:"image_url"`

	Published   bool       `json:"published" gorm:"not null;default:false;index"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Article) TableName() string {
	return "articles"
}
