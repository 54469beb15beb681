// Package export assembles a survey and its related entities into a
// formatted multi-section workbook delivered as a download.
package export

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"purku.fi/survey/models"
)

// Summary is the aggregate snapshot of everything belonging to one survey,
// loaded in full before the document pipeline runs. The pipeline itself
// never touches the database.
type Summary struct {
	Survey  models.Survey
	Creator *models.User

	Building *models.Building
	Owner    *models.OwnerInformation

	Reusables         []models.Reusable
	ReusableMaterials []models.ReusableMaterial

	Wastes          []models.Waste
	WasteCategories []models.WasteCategory
	WasteMaterials  []models.WasteMaterial
	WasteSpecifiers []models.WasteSpecifier

	HazardousWastes    []models.HazardousWaste
	HazardousMaterials []models.HazardousMaterial

	Usages        []models.Usage
	BuildingTypes []models.BuildingType

	Surveyors   []models.Surveyor
	Attachments []models.Attachment
}

// LoadSummary fetches the survey and all its collections plus the shared
// dictionaries. Only a missing survey is an error; empty collections and
// missing 1:1 records are normal.
func LoadSummary(db *gorm.DB, surveyID uuid.UUID) (*Summary, error) {
	var summary Summary

	if err := db.First(&summary.Survey, "id = ?", surveyID).Error; err != nil {
		return nil, err
	}

	var creator models.User
	if err := db.First(&creator, "id = ?", summary.Survey.CreatorID).Error; err == nil {
		summary.Creator = &creator
	}

	var building models.Building
	if err := db.First(&building, "survey_id = ?", surveyID).Error; err == nil {
		summary.Building = &building
	}
	var owner models.OwnerInformation
	if err := db.First(&owner, "survey_id = ?", surveyID).Error; err == nil {
		summary.Owner = &owner
	}

	if err := db.Where("survey_id = ?", surveyID).Order("created_at").Find(&summary.Reusables).Error; err != nil {
		return nil, err
	}
	if err := db.Where("survey_id = ?", surveyID).Order("created_at").Find(&summary.Wastes).Error; err != nil {
		return nil, err
	}
	if err := db.Where("survey_id = ?", surveyID).Order("created_at").Find(&summary.HazardousWastes).Error; err != nil {
		return nil, err
	}
	if err := db.Where("survey_id = ?", surveyID).Order("created_at").Find(&summary.Surveyors).Error; err != nil {
		return nil, err
	}
	if err := db.Where("survey_id = ?", surveyID).Order("created_at").Find(&summary.Attachments).Error; err != nil {
		return nil, err
	}

	// Shared dictionaries; small tables, loaded whole.
	if err := db.Find(&summary.ReusableMaterials).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&summary.WasteCategories).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&summary.WasteMaterials).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&summary.WasteSpecifiers).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&summary.HazardousMaterials).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&summary.Usages).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&summary.BuildingTypes).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}
