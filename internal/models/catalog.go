package models

import (
	"time"

	"gorm.io/datatypes"
)

// Car is a vehicle listing
type Car struct {
	ID    uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Make  string `json:"make" gorm:"size:255;index" validate:"max=255"`
	Model string `json:"model" gorm:"size:255" validate:"max=255"`
	Price uint   `json:"price"`
	Year  uint   `json:"year" gorm:"index" validate:"lte=9999"`
}

// NewsFeedItem is a post in the news feed. DateCreated is assigned by the server.
type NewsFeedItem struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"size:255" validate:"max=255"`
	Body          string    `json:"body"`
	AuthorName    string    `json:"authorName" gorm:"size:255" validate:"max=255"`
	DateCreated   time.Time `json:"dateCreated"`
	AllowComments bool      `json:"allowComments"`
}

// Ticket is a support ticket
type Ticket struct {
	ID            uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string         `json:"title" gorm:"size:255" validate:"max=255"`
	AuthorName    string         `json:"authorName" gorm:"size:255" validate:"max=255"`
	Body          string         `json:"body"`
	PublishedDate datatypes.Date `json:"publishedDate"`
}

// Movie stores its category as a localization key (DramaKey, HorrorKey, ComedyKey)
type Movie struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string `json:"title" gorm:"size:255" validate:"max=255"`
	Category string `json:"category" gorm:"size:64" validate:"max=64"`
}

// TableName overrides the table name for NewsFeedItem
func (NewsFeedItem) TableName() string {
	return "news_feed_items"
}
