package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Usability grades for a reusable building component.
const (
	UsabilityExcellent    = "EXCELLENT"
	UsabilityGood         = "GOOD"
	UsabilityFair         = "FAIR"
	UsabilityPoor         = "POOR"
	UsabilityNotValidated = "NOT_VALIDATED"
)

// Measurement units for material amounts.
const (
	UnitKg  = "KG"
	UnitTn  = "TN"
	UnitM2  = "M2"
	UnitM3  = "M3"
	UnitPcs = "PCS"
	UnitRm  = "RM" // running meter
)

// ReusableMaterial is the shared dictionary of reusable material kinds
// (brick, timber beam, steel door, ...).
type ReusableMaterial struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LocalizedNames LocalizedNames `gorm:"type:jsonb;not null" json:"localizedNames"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (rm *ReusableMaterial) BeforeCreate(tx *gorm.DB) (err error) {
	if rm.ID == uuid.Nil {
		rm.ID = uuid.New()
	}
	return
}

// Reusable is one reusable material item found on site.
// Images are base64 data URIs captured by the mobile client.
type Reusable struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SurveyID           uuid.UUID  `gorm:"type:uuid;index;not null" json:"surveyId"`
	ReusableMaterialID *uuid.UUID `gorm:"type:uuid" json:"reusableMaterialId,omitempty"`

	ComponentName string         `gorm:"size:200" json:"componentName"`
	Usability     string         `gorm:"size:20;not null;default:NOT_VALIDATED" json:"usability"`
	Amount        float64        `json:"amount"`
	Unit          string         `gorm:"size:10" json:"unit"`
	AmountAsWaste float64        `json:"amountAsWaste"`
	Description   string         `gorm:"type:text" json:"description"`
	Images        pq.StringArray `gorm:"type:text[]" json:"images"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ru *Reusable) BeforeCreate(tx *gorm.DB) (err error) {
	if ru.ID == uuid.Nil {
		ru.ID = uuid.New()
	}
	return
}
