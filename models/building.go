package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BuildingType is an admin-maintained classification dictionary
// ("apartment block", "warehouse", ...), shared across surveys.
type BuildingType struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Code           string         `gorm:"size:50;uniqueIndex;not null" json:"code"`
	LocalizedNames LocalizedNames `gorm:"type:jsonb;not null" json:"localizedNames"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (bt *BuildingType) BeforeCreate(tx *gorm.DB) (err error) {
	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}
	return
}

// OtherStructure is a free-form auxiliary structure on the property
// (shed, silo, ...). Stored inside Building.OtherStructures as jsonb.
type OtherStructure struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Building is the physical structure a survey covers. 1:1 with Survey.
type Building struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SurveyID       uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"surveyId"`
	BuildingTypeID *uuid.UUID `gorm:"type:uuid" json:"buildingTypeId,omitempty"`

	PropertyID   string `gorm:"size:50" json:"propertyId"`
	BuildingID   string `gorm:"size:50" json:"buildingId"`
	PropertyName string `gorm:"size:200" json:"propertyName"`

	// Address
	StreetAddress string `gorm:"size:200" json:"streetAddress"`
	City          string `gorm:"size:100" json:"city"`
	PostCode      string `gorm:"size:20" json:"postCode"`

	ConstructionYear    int     `json:"constructionYear"`
	Space               float64 `json:"space"`  // floor area, m2
	Volume              float64 `json:"volume"` // m3
	Floors              int     `json:"floors"`
	Basements           int     `json:"basements"`
	Foundation          string  `gorm:"size:200" json:"foundation"`
	SupportingStructure string  `gorm:"size:200" json:"supportingStructure"`
	FacadeMaterial      string  `gorm:"size:200" json:"facadeMaterial"`
	RoofType            string  `gorm:"size:200" json:"roofType"`

	OtherStructures datatypes.JSON `gorm:"type:jsonb" json:"otherStructures,omitempty"`
	// Location is an optional GeoJSON point, validated on write.
	Location datatypes.JSON `gorm:"type:jsonb" json:"location,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Building) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
