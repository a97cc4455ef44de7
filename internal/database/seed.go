package database

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/localnerve/catalogdb/internal/logging"
	"github.com/localnerve/catalogdb/internal/models"
	"gorm.io/gorm"
)

type seedCompany struct {
	models.Company
	Products []models.Product `json:"products"`
}

type seedLibrary struct {
	models.Library
	Books []models.Book `json:"books"`
	Rooms []models.Room `json:"rooms"`
}

type seedDocument struct {
	models.Document
	Reports []models.Report `json:"reports"`
}

type seedSet struct {
	Cars      []models.Car   `json:"cars"`
	Movies    []models.Movie `json:"movies"`
	Companies []seedCompany  `json:"companies"`
	Libraries []seedLibrary  `json:"libraries"`
	Documents []seedDocument `json:"documents"`
}

// Seed loads the sample data set into an empty database.
// It is a no-op when any car already exists.
func Seed(db *gorm.DB, raw []byte) error {
	var set seedSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}

	var count int64
	if err := db.Model(&models.Car{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logging.Info().Msg("Seed skipped, database is not empty")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if len(set.Cars) > 0 {
			if err := tx.Create(&set.Cars).Error; err != nil {
				return err
			}
		}
		if len(set.Movies) > 0 {
			if err := tx.Create(&set.Movies).Error; err != nil {
				return err
			}
		}

		for _, c := range set.Companies {
			company := c.Company
			if err := tx.Create(&company).Error; err != nil {
				return err
			}
			for _, p := range c.Products {
				p.CompanyID = company.ID
				if err := tx.Create(&p).Error; err != nil {
					return err
				}
			}
		}

		for _, l := range set.Libraries {
			library := l.Library
			if err := tx.Create(&library).Error; err != nil {
				return err
			}
			for _, b := range l.Books {
				b.LibraryID = library.ID
				if err := tx.Create(&b).Error; err != nil {
					return err
				}
			}
			for _, r := range l.Rooms {
				r.LibraryID = library.ID
				if err := tx.Create(&r).Error; err != nil {
					return err
				}
			}
		}

		for _, d := range set.Documents {
			document := d.Document
			if err := tx.Create(&document).Error; err != nil {
				return err
			}
			for _, r := range d.Reports {
				r.DocumentID = document.ID
				if err := tx.Create(&r).Error; err != nil {
					return err
				}
			}
		}

		logging.Info().Int("cars", len(set.Cars)).Int("companies", len(set.Companies)).Msg("Seeded database")
		return nil
	})
}
