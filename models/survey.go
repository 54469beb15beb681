package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Survey type describes the scope of the project.
const (
	SurveyTypeDemolition        = "DEMOLITION"
	SurveyTypeRenovation        = "RENOVATION"
	SurveyTypePartialDemolition = "PARTIAL_DEMOLITION"
)

const (
	SurveyStatusDraft = "DRAFT"
	SurveyStatusDone  = "DONE"
)

// Survey represents one demolition/renovation project. All other survey
// entities hang off it via SurveyID.
type Survey struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Type                  string     `gorm:"size:30;not null;default:DEMOLITION" json:"type"`
	Status                string     `gorm:"size:20;not null;default:DRAFT" json:"status"`
	StartDate             *time.Time `gorm:"type:date" json:"startDate,omitempty"`
	EndDate               *time.Time `gorm:"type:date" json:"endDate,omitempty"`
	MarkedAsDone          bool       `gorm:"default:false" json:"markedAsDone"`
	AdditionalInformation string     `gorm:"type:text" json:"additionalInformation"`
	CreatorID             uuid.UUID  `gorm:"type:uuid;not null;index" json:"creatorId"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"modifiedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Survey) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
