package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HazardousMaterial mirrors WasteMaterial for the hazardous-waste
// dictionary (asbestos sheet, PCB sealant, ...).
type HazardousMaterial struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	WasteCategoryID      *uuid.UUID     `gorm:"type:uuid;index" json:"wasteCategoryId,omitempty"`
	EwcSpecificationCode string         `gorm:"size:10" json:"ewcSpecificationCode"`
	LocalizedNames       LocalizedNames `gorm:"type:jsonb;not null" json:"localizedNames"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (hm *HazardousMaterial) BeforeCreate(tx *gorm.DB) (err error) {
	if hm.ID == uuid.Nil {
		hm.ID = uuid.New()
	}
	return
}

// WasteSpecifier narrows a hazardous item ("contains asbestos", ...).
type WasteSpecifier struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LocalizedNames LocalizedNames `gorm:"type:jsonb;not null" json:"localizedNames"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ws *WasteSpecifier) BeforeCreate(tx *gorm.DB) (err error) {
	if ws.ID == uuid.Nil {
		ws.ID = uuid.New()
	}
	return
}

// HazardousWaste is one hazardous material item on a survey.
type HazardousWaste struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SurveyID            uuid.UUID  `gorm:"type:uuid;index;not null" json:"surveyId"`
	HazardousMaterialID *uuid.UUID `gorm:"type:uuid" json:"hazardousMaterialId,omitempty"`
	WasteSpecifierID    *uuid.UUID `gorm:"type:uuid" json:"wasteSpecifierId,omitempty"`

	Amount      float64 `json:"amount"`
	Unit        string  `gorm:"size:10" json:"unit"`
	Description string  `gorm:"type:text" json:"description"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (hw *HazardousWaste) BeforeCreate(tx *gorm.DB) (err error) {
	if hw.ID == uuid.Nil {
		hw.ID = uuid.New()
	}
	return
}
