package models

import "time"

// Singer performs songs
type Singer struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:255;index" validate:"max=255"`
}

// Song belongs to an optional Singer. ReleaseDate is assigned by the server.
type Song struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:255" validate:"max=255"`
	SingerID    *uint     `json:"singerId,omitempty" gorm:"index"`
	Singer      *Singer   `json:"singer,omitempty" validate:"omitempty"`
	ReleaseDate time.Time `json:"releaseDate"`
}
