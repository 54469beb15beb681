package export

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"purku.fi/survey/models"
)

func TestLocalizedValue(t *testing.T) {
	names := models.LocalizedNames{
		{Language: "fi", Value: "Betoni"},
		{Language: "en", Value: "Concrete"},
	}

	tests := []struct {
		name     string
		names    models.LocalizedNames
		locale   string
		expected string
	}{
		{"finnish match", names, "fi", "Betoni"},
		{"english match", names, "en", "Concrete"},
		{"absent locale yields empty, no fallback", names, "sv", ""},
		{"empty names", models.LocalizedNames{}, "fi", ""},
		{"nil names", nil, "fi", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := localizedValue(tt.names, tt.locale); got != tt.expected {
				t.Errorf("localizedValue(%v, %q) = %q, expected %q",
					tt.names, tt.locale, got, tt.expected)
			}
		})
	}
}

func TestFindByIDMissYieldsNil(t *testing.T) {
	known := uuid.New()
	unknown := uuid.New()
	materials := []models.WasteMaterial{{ID: known}}

	if got := wasteMaterialByID(materials, &unknown); got != nil {
		t.Errorf("expected nil for unknown reference, got %+v", got)
	}
	if got := wasteMaterialByID(materials, nil); got != nil {
		t.Errorf("expected nil for nil reference, got %+v", got)
	}
	if got := wasteMaterialByID(materials, &known); got == nil || got.ID != known {
		t.Errorf("expected match for known reference, got %+v", got)
	}
}

func TestEwcCode(t *testing.T) {
	categoryID := uuid.New()
	missingID := uuid.New()
	categories := []models.WasteCategory{
		{ID: categoryID, EwcCode: "020104"},
	}

	tests := []struct {
		name       string
		categoryID *uuid.UUID
		spec       string
		expected   string
	}{
		{"category and specification compose", &categoryID, "99", "02010499"},
		{"unresolved category keeps specification half", &missingID, "99", "99"},
		{"nil category reference keeps specification half", nil, "99", "99"},
		{"empty specification keeps category half", &categoryID, "", "020104"},
		{"both halves empty", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ewcCode(categories, tt.categoryID, tt.spec); got != tt.expected {
				t.Errorf("ewcCode(...) = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)
	zero := time.Time{}

	tests := []struct {
		name     string
		t        *time.Time
		expected string
	}{
		{"set date formats as DD.MM.YYYY", &date, "16.05.2025"},
		{"nil date renders placeholder", nil, "date unknown"},
		{"zero date renders placeholder", &zero, "date unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDate(tt.t, "date unknown"); got != tt.expected {
				t.Errorf("formatDate() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestNumericRendering(t *testing.T) {
	if got := floatOrEmpty(0); got != "" {
		t.Errorf("floatOrEmpty(0) = %q, expected empty", got)
	}
	if got := floatOrEmpty(12.5); got != "12.5" {
		t.Errorf("floatOrEmpty(12.5) = %q, expected 12.5", got)
	}
	if got := intOrEmpty(0); got != "" {
		t.Errorf("intOrEmpty(0) = %q, expected empty", got)
	}
	if got := intOrEmpty(3); got != "3" {
		t.Errorf("intOrEmpty(3) = %q, expected 3", got)
	}
}

func TestFormatAmount(t *testing.T) {
	labels := labelsFor("en")

	tests := []struct {
		name     string
		amount   float64
		unit     string
		expected string
	}{
		{"amount with unit", 120, models.UnitM2, "120 m²"},
		{"amount without unit", 120, "", "120"},
		{"zero amount with unit", 0, models.UnitKg, "kg"},
		{"unknown unit drops label", 5, "FURLONG", "5"},
		{"nothing", 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAmount(tt.amount, tt.unit, labels); got != tt.expected {
				t.Errorf("formatAmount(%v, %q) = %q, expected %q",
					tt.amount, tt.unit, got, tt.expected)
			}
		})
	}
}
