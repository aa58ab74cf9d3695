// model/content.go
package model

import (
	"time"
)

// Picture is an ordered photo in the collection. The image bytes live in
// object storage; ObjectKey points at them and URL is the public location.
type Picture struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	ObjectKey   string    `json:"-"`
	URL         string    `json:"url"`
	Position    int       `json:"position" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Message is an ordered love note.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Position  int       `json:"position" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SweetTreat is an ordered treat with a name and description.
type SweetTreat struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Position    int       `json:"position" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UnlockCount holds the per-user unlock counters. Each counter only moves up,
// capped at the configured content total; only the unlock service writes it.
type UnlockCount struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	Pictures  int       `json:"pictures" gorm:"not null;default:0"`
	Messages  int       `json:"messages" gorm:"not null;default:0"`
	Treats    int       `json:"treats" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}
