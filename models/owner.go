package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContactPerson is the owner's contact, stored inside
// OwnerInformation.ContactPerson as jsonb.
type ContactPerson struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Profession string `json:"profession"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// OwnerInformation holds the legal owner of the surveyed property.
// 1:1 with Survey.
type OwnerInformation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SurveyID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"surveyId"`
	OwnerName  string    `gorm:"size:200" json:"ownerName"`
	BusinessID string    `gorm:"size:50" json:"businessId"`

	ContactPerson datatypes.JSON `gorm:"type:jsonb" json:"contactPerson,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *OwnerInformation) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}
