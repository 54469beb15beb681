package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"purku.fi/survey/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250312_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Survey{}, &models.Building{},
					&models.OwnerInformation{}, &models.Surveyor{}, &models.Attachment{})
			},
		},
		{
			ID: "20250312_create_dictionary_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.BuildingType{}, &models.WasteCategory{},
					&models.WasteMaterial{}, &models.HazardousMaterial{},
					&models.ReusableMaterial{}, &models.Usage{}, &models.WasteSpecifier{})
			},
		},
		{
			ID: "20250312_create_item_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Reusable{}, &models.Waste{}, &models.HazardousWaste{})
			},
		},
		{
			ID: "20250418_add_building_location",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("ALTER TABLE buildings ADD COLUMN IF NOT EXISTS location jsonb").Error
			},
		},
	})

	return m.Migrate()
}
