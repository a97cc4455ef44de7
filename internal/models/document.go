package models

// Document holds reports
type Document struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:255" validate:"max=255"`
	Body string `json:"body"`
}

// Report belongs to a Document. Rows is computed at read time from the
// localized row headers and is not stored.
type Report struct {
	ID         uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string   `json:"name" gorm:"size:255" validate:"max=255"`
	Category   string   `json:"category" gorm:"size:255" validate:"max=255"`
	DocumentID uint     `json:"documentId" gorm:"index;not null"`
	Rows       []string `json:"rows" gorm:"-"`
}
