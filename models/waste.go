package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WasteCategory is a European Waste Catalogue category
// ("02 01" agricultural waste, ...). Parent of WasteMaterial.
type WasteCategory struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	EwcCode        string         `gorm:"size:10;not null" json:"ewcCode"`
	LocalizedNames LocalizedNames `gorm:"type:jsonb;not null" json:"localizedNames"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (wc *WasteCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if wc.ID == uuid.Nil {
		wc.ID = uuid.New()
	}
	return
}

// WasteMaterial is a dictionary entry under one WasteCategory. The full
// EWC code of an item is the category code plus EwcSpecificationCode.
type WasteMaterial struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	WasteCategoryID      *uuid.UUID     `gorm:"type:uuid;index" json:"wasteCategoryId,omitempty"`
	EwcSpecificationCode string         `gorm:"size:10" json:"ewcSpecificationCode"`
	LocalizedNames       LocalizedNames `gorm:"type:jsonb;not null" json:"localizedNames"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (wm *WasteMaterial) BeforeCreate(tx *gorm.DB) (err error) {
	if wm.ID == uuid.Nil {
		wm.ID = uuid.New()
	}
	return
}

// Usage is the dictionary of disposal usages ("crushed for backfill", ...).
type Usage struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LocalizedNames LocalizedNames `gorm:"type:jsonb;not null" json:"localizedNames"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *Usage) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

// Waste is one disposed material item on a survey.
type Waste struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SurveyID        uuid.UUID  `gorm:"type:uuid;index;not null" json:"surveyId"`
	WasteMaterialID *uuid.UUID `gorm:"type:uuid" json:"wasteMaterialId,omitempty"`
	UsageID         *uuid.UUID `gorm:"type:uuid" json:"usageId,omitempty"`

	Amount      float64 `json:"amount"`
	Unit        string  `gorm:"size:10" json:"unit"`
	Description string  `gorm:"type:text" json:"description"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (wa *Waste) BeforeCreate(tx *gorm.DB) (err error) {
	if wa.ID == uuid.Nil {
		wa.ID = uuid.New()
	}
	return
}
