package database_test

import (
	"testing"

	"github.com/localnerve/catalogdb/data"
	"github.com/localnerve/catalogdb/internal/database"
	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	db := testutil.OpenDB(t)

	require.NoError(t, database.Seed(db, data.Seed))

	var cars, products, books, rooms, reports int64
	db.Model(&models.Car{}).Count(&cars)
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Book{}).Count(&books)
	db.Model(&models.Room{}).Count(&rooms)
	db.Model(&models.Report{}).Count(&reports)

	assert.EqualValues(t, 4, cars)
	assert.EqualValues(t, 2, products)
	assert.EqualValues(t, 1, books)
	assert.EqualValues(t, 1, rooms)
	assert.EqualValues(t, 1, reports)

	var product models.Product
	require.NoError(t, db.First(&product).Error)
	var company models.Company
	require.NoError(t, db.First(&company, product.CompanyID).Error)
	assert.Equal(t, "Contoso", company.Name)
}

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	db := testutil.OpenDB(t)

	require.NoError(t, db.Create(&models.Car{Make: "Lada", Model: "Niva", Year: 1977}).Error)
	require.NoError(t, database.Seed(db, data.Seed))

	var cars int64
	db.Model(&models.Car{}).Count(&cars)
	assert.EqualValues(t, 1, cars)
}

func TestSeedRejectsInvalidJSON(t *testing.T) {
	db := testutil.OpenDB(t)
	assert.Error(t, database.Seed(db, []byte("{")))
}
