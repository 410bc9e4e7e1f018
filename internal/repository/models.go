package repository

import "time"

type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

type Post struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"` // storage identifier
	ExternalID string    `gorm:"type:varchar(255);index"`     // caller-supplied id, not unique
	Title      string    `gorm:"type:text"`
	Summary    string    `gorm:"type:text"`
	Content    string    `gorm:"type:text"`
	Image      *string   `gorm:"type:text"` // uploaded media reference
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// PostUpdate holds the replaceable fields of a post. A nil field keeps the
// stored value.
type PostUpdate struct {
	ExternalID *string
	Title      *string
	Summary    *string
	Content    *string
	Image      *string
}
