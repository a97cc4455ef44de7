package models

// Library holds books and rooms
type Library struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"size:255" validate:"max=255"`
	Location string `json:"location" gorm:"size:255" validate:"max=255"`
}

// Book belongs to a Library
type Book struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"size:255" validate:"max=255"`
	Category  string `json:"category" gorm:"size:255" validate:"max=255"`
	LibraryID uint   `json:"libraryId" gorm:"index;not null"`
}

// Room is a reading room inside a Library
type Room struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"size:255" validate:"max=255"`
	Capacity  uint   `json:"capacity"`
	LibraryID uint   `json:"libraryId" gorm:"index;not null"`
}
