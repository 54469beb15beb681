package export

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"purku.fi/survey/models"
)

// buildOwnerBuildingInfo renders the owner contact block, the address
// block, the twelve fixed building attribute rows, and the variable-length
// other-structures table when the building declares any.
func buildOwnerBuildingInfo(ctx context.Context, w *sheetWriter, summary *Summary, locale string, labels labelSet, client *http.Client) error {
	if err := w.heading(labels.SheetBuilding); err != nil {
		return err
	}

	var owner models.OwnerInformation
	if summary.Owner != nil {
		owner = *summary.Owner
	}
	var contact models.ContactPerson
	if len(owner.ContactPerson) > 0 {
		// Malformed contact JSON renders as empty fields.
		_ = json.Unmarshal(owner.ContactPerson, &contact)
	}

	if err := w.subheading(labels.Owner); err != nil {
		return err
	}
	if err := w.keyValue(labels.OwnerName, owner.OwnerName); err != nil {
		return err
	}
	if err := w.keyValue(labels.BusinessID, owner.BusinessID); err != nil {
		return err
	}
	if err := w.keyValue(labels.ContactPerson, strings.TrimSpace(contact.FirstName+" "+contact.LastName)); err != nil {
		return err
	}
	if err := w.keyValue(labels.Profession, contact.Profession); err != nil {
		return err
	}
	if err := w.keyValue(labels.Email, contact.Email); err != nil {
		return err
	}
	if err := w.keyValue(labels.Phone, contact.Phone); err != nil {
		return err
	}
	w.blank()

	var building models.Building
	if summary.Building != nil {
		building = *summary.Building
	}

	if err := w.subheading(labels.BuildingInfo); err != nil {
		return err
	}
	if err := w.keyValue(labels.Address, formatAddress(building)); err != nil {
		return err
	}

	buildingClass := ""
	if bt := buildingTypeByID(summary.BuildingTypes, building.BuildingTypeID); bt != nil {
		buildingClass = localizedValue(bt.LocalizedNames, locale)
	}

	rows := []struct {
		label string
		value string
	}{
		{labels.BuildingID, building.BuildingID},
		{labels.PropertyID, building.PropertyID},
		{labels.BuildingClass, buildingClass},
		{labels.ConstructionYear, intOrEmpty(building.ConstructionYear)},
		{labels.Space, floatOrEmpty(building.Space)},
		{labels.Volume, floatOrEmpty(building.Volume)},
		{labels.Floors, intOrEmpty(building.Floors)},
		{labels.Basements, intOrEmpty(building.Basements)},
		{labels.Foundation, building.Foundation},
		{labels.SupportingStructure, building.SupportingStructure},
		{labels.FacadeMaterial, building.FacadeMaterial},
		{labels.RoofStructure, building.RoofType},
	}
	for _, row := range rows {
		if err := w.keyValue(row.label, row.value); err != nil {
			return err
		}
	}

	structures := decodeOtherStructures(building.OtherStructures)
	if len(structures) == 0 {
		return nil
	}
	w.blank()
	if err := w.subheading(labels.OtherStructures); err != nil {
		return err
	}
	if err := w.tableHead(labels.Name, labels.Description); err != nil {
		return err
	}
	for _, structure := range structures {
		if err := w.tableRow(structure.Name, structure.Description); err != nil {
			return err
		}
	}
	return nil
}

func formatAddress(building models.Building) string {
	parts := make([]string, 0, 3)
	if building.StreetAddress != "" {
		parts = append(parts, building.StreetAddress)
	}
	cityLine := strings.TrimSpace(building.PostCode + " " + building.City)
	if cityLine != "" {
		parts = append(parts, cityLine)
	}
	return strings.Join(parts, ", ")
}

func decodeOtherStructures(raw []byte) []models.OtherStructure {
	if len(raw) == 0 {
		return nil
	}
	var structures []models.OtherStructure
	if err := json.Unmarshal(raw, &structures); err != nil {
		return nil
	}
	return structures
}
