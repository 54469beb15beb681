package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Surveyor is a person who performed (part of) the survey on site.
type Surveyor struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SurveyID uuid.UUID `gorm:"type:uuid;index;not null" json:"surveyId"`

	Role       string    `gorm:"size:100" json:"role"`
	FirstName  string    `gorm:"size:100" json:"firstName"`
	LastName   string    `gorm:"size:100" json:"lastName"`
	Company    string    `gorm:"size:200" json:"company"`
	Email      string    `gorm:"size:100" json:"email"`
	Phone      string    `gorm:"size:20" json:"phone"`
	Visits     int       `json:"visits"`
	ReportDate *JSONTime `gorm:"type:date" json:"reportDate,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Surveyor) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// Attachment is an uploaded file or photo linked to a survey.
type Attachment struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SurveyID uuid.UUID `gorm:"type:uuid;index;not null" json:"surveyId"`

	Name string `gorm:"size:200;not null" json:"name"`
	URL  string `gorm:"size:500;not null" json:"url"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
