package models

// Company owns products
type Company struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"size:255" validate:"max=255"`
	Location string `json:"location" gorm:"size:255" validate:"max=255"`
}

// Product belongs to a Company
type Product struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"size:255" validate:"max=255"`
	Category  string `json:"category" gorm:"size:255" validate:"max=255"`
	CompanyID uint   `json:"companyId" gorm:"index;not null"`
}

// Project groups users
type Project struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"size:255" validate:"max=255"`
	Description string `json:"description"`
}

// User optionally belongs to a Project.
// Password is write-only: it is hashed into PasswordHash and never serialized.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName    string `json:"firstName" gorm:"size:255;index" validate:"max=255"`
	LastName     string `json:"lastName" gorm:"size:255;index" validate:"max=255"`
	Email        string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Password     string `json:"password,omitempty" gorm:"-" validate:"max=72"`
	PasswordHash string `json:"-" gorm:"size:255"`
	Age          uint   `json:"age" validate:"lte=150"`
	ProjectID    *uint  `json:"projectId,omitempty" gorm:"index"`
}
