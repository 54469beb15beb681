package export

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"purku.fi/survey/models"
)

// Lookup resolution policy: a reference that resolves to nothing renders as
// an empty value, never an error. All render-empty decisions live in this
// file so the contract stays auditable in one place.

// findByID scans items for the entry whose id matches ref. Collections are
// bounded by survey size, so a linear scan needs no index.
func findByID[T any](items []T, ref *uuid.UUID, id func(*T) uuid.UUID) *T {
	if ref == nil {
		return nil
	}
	for i := range items {
		if id(&items[i]) == *ref {
			return &items[i]
		}
	}
	return nil
}

func reusableMaterialByID(items []models.ReusableMaterial, ref *uuid.UUID) *models.ReusableMaterial {
	return findByID(items, ref, func(m *models.ReusableMaterial) uuid.UUID { return m.ID })
}

func wasteMaterialByID(items []models.WasteMaterial, ref *uuid.UUID) *models.WasteMaterial {
	return findByID(items, ref, func(m *models.WasteMaterial) uuid.UUID { return m.ID })
}

func hazardousMaterialByID(items []models.HazardousMaterial, ref *uuid.UUID) *models.HazardousMaterial {
	return findByID(items, ref, func(m *models.HazardousMaterial) uuid.UUID { return m.ID })
}

func wasteCategoryByID(items []models.WasteCategory, ref *uuid.UUID) *models.WasteCategory {
	return findByID(items, ref, func(c *models.WasteCategory) uuid.UUID { return c.ID })
}

func usageByID(items []models.Usage, ref *uuid.UUID) *models.Usage {
	return findByID(items, ref, func(u *models.Usage) uuid.UUID { return u.ID })
}

func wasteSpecifierByID(items []models.WasteSpecifier, ref *uuid.UUID) *models.WasteSpecifier {
	return findByID(items, ref, func(s *models.WasteSpecifier) uuid.UUID { return s.ID })
}

func buildingTypeByID(items []models.BuildingType, ref *uuid.UUID) *models.BuildingType {
	return findByID(items, ref, func(t *models.BuildingType) uuid.UUID { return t.ID })
}

// localizedValue returns the translation matching locale exactly, or "".
// There is deliberately no fallback chain to another locale.
func localizedValue(names models.LocalizedNames, locale string) string {
	for _, n := range names {
		if n.Language == locale {
			return n.Value
		}
	}
	return ""
}

// ewcCode composes the full EWC code: category code plus specification
// code, each half independently empty when its owner is unresolved.
func ewcCode(categories []models.WasteCategory, categoryID *uuid.UUID, specificationCode string) string {
	categoryCode := ""
	if c := wasteCategoryByID(categories, categoryID); c != nil {
		categoryCode = c.EwcCode
	}
	return categoryCode + specificationCode
}

// formatDate renders a date as DD.MM.YYYY, or the given placeholder when
// the date is absent.
func formatDate(t *time.Time, placeholder string) string {
	if t == nil || t.IsZero() {
		return placeholder
	}
	return t.Format("02.01.2006")
}

// floatOrEmpty renders a numeric field, empty when unset.
func floatOrEmpty(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// intOrEmpty renders an integer field, empty when unset.
func intOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
