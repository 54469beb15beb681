package export

import "purku.fi/survey/models"

// labelSet holds every fixed string the document renders for one locale.
// These are document chrome, not survey data, so unlike dictionary names
// they default to English when a locale has no label set.
type labelSet struct {
	// Section sheet names, in build order.
	SheetDemolition string
	SheetBuilding   string
	SheetReusables  string
	SheetWastes     string
	SheetHazardous  string

	DateUnknown string

	// Header/footer chrome.
	Modified string
	Ready    string
	Creator  string
	Page     string

	// Demolition info.
	PropertyName   string
	SurveyType     string
	StartDate      string
	EndDate        string
	Surveyors      string
	SurveyorRole   string
	SurveyorName   string
	Company        string
	Email          string
	Phone          string
	Visits         string
	ReportDate     string
	AdditionalInfo string
	Attachments    string

	// Owner / building info.
	Owner               string
	OwnerName           string
	BusinessID          string
	ContactPerson       string
	Profession          string
	BuildingInfo        string
	BuildingID          string
	PropertyID          string
	BuildingClass       string
	ConstructionYear    string
	Space               string
	Volume              string
	Floors              string
	Basements           string
	Foundation          string
	SupportingStructure string
	FacadeMaterial      string
	RoofStructure       string
	Address             string
	OtherStructures     string
	Name                string
	Description         string

	// Material sections.
	Material      string
	Usability     string
	ComponentName string
	Amount        string
	AmountAsWaste string
	WasteUsage    string
	WasteSpec     string
	EwcCode       string

	SurveyTypes map[string]string
	Usabilities map[string]string
	Units       map[string]string
}

var labelsEN = labelSet{
	SheetDemolition: "Demolition info",
	SheetBuilding:   "Owner and building",
	SheetReusables:  "Reusable materials",
	SheetWastes:     "Waste materials",
	SheetHazardous:  "Hazardous materials",

	DateUnknown: "date unknown",

	Modified: "Modified",
	Ready:    "Ready",
	Creator:  "Creator",
	Page:     "Page",

	PropertyName:   "Property name",
	SurveyType:     "Scope",
	StartDate:      "Start date",
	EndDate:        "End date",
	Surveyors:      "Surveyors",
	SurveyorRole:   "Role",
	SurveyorName:   "Name",
	Company:        "Company",
	Email:          "Email",
	Phone:          "Phone",
	Visits:         "Visits",
	ReportDate:     "Report date",
	AdditionalInfo: "Additional information",
	Attachments:    "Attachments",

	Owner:               "Owner",
	OwnerName:           "Owner name",
	BusinessID:          "Business ID",
	ContactPerson:       "Contact person",
	Profession:          "Profession",
	BuildingInfo:        "Building",
	BuildingID:          "Building ID",
	PropertyID:          "Property ID",
	BuildingClass:       "Building class",
	ConstructionYear:    "Construction year",
	Space:               "Area (m²)",
	Volume:              "Volume (m³)",
	Floors:              "Floors",
	Basements:           "Basement floors",
	Foundation:          "Foundation",
	SupportingStructure: "Supporting structure",
	FacadeMaterial:      "Façade material",
	RoofStructure:       "Roof structure",
	Address:             "Address",
	OtherStructures:     "Other structures",
	Name:                "Name",
	Description:         "Description",

	Material:      "Material",
	Usability:     "Usability",
	ComponentName: "Building part",
	Amount:        "Amount",
	AmountAsWaste: "Amount as waste",
	WasteUsage:    "Intended usage",
	WasteSpec:     "Specifier",
	EwcCode:       "EWC code",

	SurveyTypes: map[string]string{
		models.SurveyTypeDemolition:        "Demolition",
		models.SurveyTypeRenovation:        "Renovation",
		models.SurveyTypePartialDemolition: "Partial demolition",
	},
	Usabilities: map[string]string{
		models.UsabilityExcellent:    "Excellent",
		models.UsabilityGood:         "Good",
		models.UsabilityFair:         "Fair",
		models.UsabilityPoor:         "Poor",
		models.UsabilityNotValidated: "Not validated",
	},
	Units: map[string]string{
		models.UnitKg:  "kg",
		models.UnitTn:  "t",
		models.UnitM2:  "m²",
		models.UnitM3:  "m³",
		models.UnitPcs: "pcs",
		models.UnitRm:  "rm",
	},
}

var labelsFI = labelSet{
	SheetDemolition: "Purkutiedot",
	SheetBuilding:   "Omistaja ja rakennus",
	SheetReusables:  "Uudelleenkäytettävät",
	SheetWastes:     "Purkujätteet",
	SheetHazardous:  "Vaaralliset jätteet",

	DateUnknown: "päivämäärä ei tiedossa",

	Modified: "Muokattu",
	Ready:    "Valmis",
	Creator:  "Laatija",
	Page:     "Sivu",

	PropertyName:   "Kohteen nimi",
	SurveyType:     "Laajuus",
	StartDate:      "Aloituspäivä",
	EndDate:        "Lopetuspäivä",
	Surveyors:      "Kartoittajat",
	SurveyorRole:   "Rooli",
	SurveyorName:   "Nimi",
	Company:        "Yritys",
	Email:          "Sähköposti",
	Phone:          "Puhelin",
	Visits:         "Käyntikerrat",
	ReportDate:     "Raportin päivämäärä",
	AdditionalInfo: "Lisätiedot",
	Attachments:    "Liitteet",

	Owner:               "Omistaja",
	OwnerName:           "Omistajan nimi",
	BusinessID:          "Y-tunnus",
	ContactPerson:       "Yhteyshenkilö",
	Profession:          "Ammatti",
	BuildingInfo:        "Rakennus",
	BuildingID:          "Rakennustunnus",
	PropertyID:          "Kiinteistötunnus",
	BuildingClass:       "Rakennusluokka",
	ConstructionYear:    "Rakennusvuosi",
	Space:               "Pinta-ala (m²)",
	Volume:              "Tilavuus (m³)",
	Floors:              "Kerroksia",
	Basements:           "Kellarikerroksia",
	Foundation:          "Perustukset",
	SupportingStructure: "Kantava runko",
	FacadeMaterial:      "Julkisivumateriaali",
	RoofStructure:       "Kattorakenne",
	Address:             "Osoite",
	OtherStructures:     "Muut rakennelmat",
	Name:                "Nimi",
	Description:         "Kuvaus",

	Material:      "Materiaali",
	Usability:     "Käyttökelpoisuus",
	ComponentName: "Rakennusosa",
	Amount:        "Määrä",
	AmountAsWaste: "Määrä jätteenä",
	WasteUsage:    "Suunniteltu käyttö",
	WasteSpec:     "Tarkenne",
	EwcCode:       "EWC-koodi",

	SurveyTypes: map[string]string{
		models.SurveyTypeDemolition:        "Purku",
		models.SurveyTypeRenovation:        "Saneeraus",
		models.SurveyTypePartialDemolition: "Osittainen purku",
	},
	Usabilities: map[string]string{
		models.UsabilityExcellent:    "Erinomainen",
		models.UsabilityGood:         "Hyvä",
		models.UsabilityFair:         "Kelvollinen",
		models.UsabilityPoor:         "Huono",
		models.UsabilityNotValidated: "Ei arvioitu",
	},
	Units: map[string]string{
		models.UnitKg:  "kg",
		models.UnitTn:  "t",
		models.UnitM2:  "m²",
		models.UnitM3:  "m³",
		models.UnitPcs: "kpl",
		models.UnitRm:  "jm",
	},
}

// labelsFor picks the label set for a locale, defaulting to English.
func labelsFor(locale string) labelSet {
	if locale == "fi" {
		return labelsFI
	}
	return labelsEN
}
