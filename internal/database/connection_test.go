package database_test

import (
	"testing"

	"github.com/localnerve/catalogdb/internal/config"
	"github.com/localnerve/catalogdb/internal/database"
	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		dbType  string
		name    string
		wantErr bool
	}{
		{dbType: "mysql", name: "mysql"},
		{dbType: "mariadb", name: "mysql"},
		{dbType: "postgres", name: "postgres"},
		{dbType: "sqlite", name: "sqlite"},
		{dbType: "sqlserver", name: "sqlserver"},
		{dbType: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			d, err := database.Dialector(&config.Config{
				DBType:     tt.dbType,
				DBHost:     "localhost",
				DBPort:     "1234",
				DBDatabase: "testdb",
				DBUser:     "user",
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}
}

// exerciseDatabase runs a create, read, delete round trip against a live database
func exerciseDatabase(t *testing.T, db *gorm.DB) {
	require.NoError(t, database.AutoMigrate(db))

	company := models.Company{Name: "Initech", Location: "Austin"}
	require.NoError(t, db.Create(&company).Error)
	require.NoError(t, db.Create(&models.Product{Name: "TPS", Category: "Reports", CompanyID: company.ID}).Error)

	var products []models.Product
	require.NoError(t, db.Where("company_id = ?", company.ID).Find(&products).Error)
	require.Len(t, products, 1)
	assert.Equal(t, "TPS", products[0].Name)

	require.NoError(t, db.Delete(&models.Product{}, products[0].ID).Error)
}

func TestWithMariaDB(t *testing.T) {
	testutil.SkipWithoutDocker(t)

	cfg := testutil.StartMariaDB(t)
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	exerciseDatabase(t, db)
}

func TestWithPostgreSQL(t *testing.T) {
	testutil.SkipWithoutDocker(t)

	cfg := testutil.StartPostgres(t)
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	exerciseDatabase(t, db)
}
