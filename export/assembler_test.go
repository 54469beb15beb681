package export

import (
	"bytes"
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"purku.fi/survey/models"
)

var (
	testCategoryID         = uuid.New()
	testWasteMaterialID    = uuid.New()
	testDanglingMaterialID = uuid.New()
	testUsageID            = uuid.New()
	testBuildingTypeID     = uuid.New()
)

func testSummary() *Summary {
	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	return &Summary{
		Survey: models.Survey{
			ID:                    uuid.New(),
			Type:                  models.SurveyTypeDemolition,
			Status:                models.SurveyStatusDone,
			EndDate:               &endDate,
			MarkedAsDone:          true,
			AdditionalInformation: "Access through the rear gate.",
			CreatorID:             uuid.New(),
			UpdatedAt:             time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		},
		Creator: &models.User{Name: "Maija Mallikas"},
		Building: &models.Building{
			PropertyName:     "Kotkankatu 1",
			BuildingID:       "100012345A",
			PropertyID:       "091-001-0001-0001",
			BuildingTypeID:   &testBuildingTypeID,
			ConstructionYear: 1962,
			Space:            540,
			Volume:           1620,
			Floors:           2,
			Foundation:       "Concrete slab",
		},
		Owner: &models.OwnerInformation{
			OwnerName:  "Helsinki Housing Oy",
			BusinessID: "1234567-8",
		},
		BuildingTypes: []models.BuildingType{
			{ID: testBuildingTypeID, Code: "APARTMENT_BLOCK", LocalizedNames: models.LocalizedNames{
				{Language: "en", Value: "Apartment block"},
				{Language: "fi", Value: "Kerrostalo"},
			}},
		},
		Wastes: []models.Waste{
			{WasteMaterialID: &testWasteMaterialID, UsageID: &testUsageID, Amount: 12, Unit: models.UnitTn},
			{WasteMaterialID: &testDanglingMaterialID, Amount: 3, Unit: models.UnitM3},
		},
		WasteCategories: []models.WasteCategory{
			{ID: testCategoryID, EwcCode: "020104", LocalizedNames: models.LocalizedNames{
				{Language: "en", Value: "Waste plastics"},
			}},
		},
		WasteMaterials: []models.WasteMaterial{
			{ID: testWasteMaterialID, WasteCategoryID: &testCategoryID, EwcSpecificationCode: "99",
				LocalizedNames: models.LocalizedNames{{Language: "en", Value: "Plastic sheeting"}}},
		},
		Usages: []models.Usage{
			{ID: testUsageID, LocalizedNames: models.LocalizedNames{{Language: "en", Value: "Energy recovery"}}},
		},
		Surveyors: []models.Surveyor{
			{Role: "Lead surveyor", FirstName: "Matti", LastName: "Mallikas", Company: "Purku Oy", Visits: 2},
		},
	}
}

func assembleWorkbook(t *testing.T, summary *Summary, locale string) *excelize.File {
	t.Helper()
	buffer, err := NewAssembler().Assemble(context.Background(), summary, locale)
	if err != nil {
		t.Fatalf("assembling document: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(buffer.Bytes()))
	if err != nil {
		t.Fatalf("reading workbook back: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// findValue scans a sheet for the row labelled in column A and returns the
// column B value.
func findValue(t *testing.T, f *excelize.File, sheet, label string) (string, bool) {
	t.Helper()
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("reading rows of %s: %v", sheet, err)
	}
	for _, row := range rows {
		if len(row) > 0 && row[0] == label {
			if len(row) > 1 {
				return row[1], true
			}
			return "", true
		}
	}
	return "", false
}

func TestAssembleSectionOrder(t *testing.T) {
	f := assembleWorkbook(t, testSummary(), "en")

	expected := []string{
		"Demolition info",
		"Owner and building",
		"Reusable materials",
		"Waste materials",
		"Hazardous materials",
	}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, expected) {
		t.Errorf("sheet order = %v, expected %v", got, expected)
	}
}

func TestAssembleDateUnknownPlaceholder(t *testing.T) {
	f := assembleWorkbook(t, testSummary(), "en")

	// The fixture has no start date.
	value, ok := findValue(t, f, "Demolition info", "Start date")
	if !ok {
		t.Fatal("start date row not found")
	}
	if value != "date unknown" {
		t.Errorf("start date = %q, expected the placeholder literal", value)
	}

	value, ok = findValue(t, f, "Demolition info", "End date")
	if !ok {
		t.Fatal("end date row not found")
	}
	if value != "30.06.2025" {
		t.Errorf("end date = %q, expected 30.06.2025", value)
	}
}

func TestAssembleWasteRows(t *testing.T) {
	f := assembleWorkbook(t, testSummary(), "en")

	rows, err := f.GetRows("Waste materials")
	if err != nil {
		t.Fatalf("reading waste rows: %v", err)
	}

	var dataRows [][]string
	for i, row := range rows {
		if len(row) > 0 && row[0] == "Material" {
			dataRows = rows[i+1:]
			break
		}
	}
	if len(dataRows) != 2 {
		t.Fatalf("expected 2 waste rows, got %d", len(dataRows))
	}

	resolved := dataRows[0]
	if resolved[0] != "Plastic sheeting" {
		t.Errorf("material = %q, expected Plastic sheeting", resolved[0])
	}
	if resolved[1] != "Energy recovery" {
		t.Errorf("usage = %q, expected Energy recovery", resolved[1])
	}
	if resolved[2] != "02010499" {
		t.Errorf("EWC code = %q, expected 02010499", resolved[2])
	}

	// Second row references a deleted dictionary entry; material, usage and
	// EWC code all render empty, never an error marker.
	dangling := dataRows[1]
	for col := 0; col < 3; col++ {
		if col < len(dangling) && dangling[col] != "" {
			t.Errorf("dangling reference column %d = %q, expected empty", col, dangling[col])
		}
	}
}

func TestAssembleBuildingClassLookup(t *testing.T) {
	f := assembleWorkbook(t, testSummary(), "en")

	value, ok := findValue(t, f, "Owner and building", "Building class")
	if !ok {
		t.Fatal("building class row not found")
	}
	if value != "Apartment block" {
		t.Errorf("building class = %q, expected Apartment block", value)
	}
}

func TestAssembleLocaleWithoutTranslations(t *testing.T) {
	// Dictionary names carry only en translations; requesting sv must
	// render empty values without falling back to another locale.
	f := assembleWorkbook(t, testSummary(), "sv")

	rows, err := f.GetRows("Waste materials")
	if err != nil {
		t.Fatalf("reading waste rows: %v", err)
	}
	for i, row := range rows {
		if len(row) > 0 && row[0] == "Material" {
			data := rows[i+1]
			if len(data) > 0 && data[0] != "" {
				t.Errorf("material = %q, expected empty for untranslated locale", data[0])
			}
			// The EWC code is not localized and still composes.
			if len(data) > 2 && data[2] != "02010499" {
				t.Errorf("EWC code = %q, expected 02010499", data[2])
			}
			return
		}
	}
	t.Fatal("waste table head not found")
}

func TestAssembleOtherStructuresTable(t *testing.T) {
	summary := testSummary()
	f := assembleWorkbook(t, summary, "en")

	// Empty otherStructures renders no table at all.
	if _, ok := findValue(t, f, "Owner and building", "Other structures"); ok {
		t.Error("other structures table rendered for a building without any")
	}

	summary.Building.OtherStructures = datatypes.JSON([]byte(`[{"name":"Shed","description":"Wooden tool shed"}]`))
	f = assembleWorkbook(t, summary, "en")

	rows, err := f.GetRows("Owner and building")
	if err != nil {
		t.Fatalf("reading building rows: %v", err)
	}
	found := false
	for i, row := range rows {
		if len(row) > 0 && row[0] == "Other structures" {
			found = true
			head := rows[i+1]
			if head[0] != "Name" || head[1] != "Description" {
				t.Errorf("table head = %v", head)
			}
			entry := rows[i+2]
			if entry[0] != "Shed" || entry[1] != "Wooden tool shed" {
				t.Errorf("table row = %v", entry)
			}
			if i+3 < len(rows) {
				for _, extra := range rows[i+3:] {
					if len(extra) > 0 && extra[0] != "" {
						t.Errorf("unexpected extra table row %v", extra)
					}
				}
			}
		}
	}
	if !found {
		t.Error("other structures table missing for a building with one entry")
	}
}

func TestAssembleEmbedsFilteredImages(t *testing.T) {
	pngData := pngBytes(t, 600, 300)
	summary := testSummary()
	summary.Reusables = []models.Reusable{
		{
			ComponentName: "Timber beams",
			Usability:     models.UsabilityGood,
			Amount:        40,
			Unit:          models.UnitPcs,
			Images: pq.StringArray{
				dataURI("image/png", pngData),
				dataURI("image/bmp", bmpBytes()),
			},
		},
	}

	f := assembleWorkbook(t, summary, "en")

	cells, err := f.GetPictureCells("Reusable materials")
	if err != nil {
		t.Fatalf("listing picture cells: %v", err)
	}
	if len(cells) != 1 {
		t.Fatalf("expected 1 embedded picture, got %d at %v", len(cells), cells)
	}

	pictures, err := f.GetPictures("Reusable materials", cells[0])
	if err != nil {
		t.Fatalf("reading picture at %s: %v", cells[0], err)
	}
	if len(pictures) != 1 {
		t.Fatalf("expected 1 picture at %s, got %d", cells[0], len(pictures))
	}
	if !bytes.Equal(pictures[0].File, pngData) {
		t.Error("embedded picture bytes differ from the source png")
	}
	if pictures[0].Extension != ".png" {
		t.Errorf("embedded picture extension = %q, expected .png", pictures[0].Extension)
	}
}

func TestAssembleIdempotent(t *testing.T) {
	summary := testSummary()

	first := assembleWorkbook(t, summary, "en")
	second := assembleWorkbook(t, summary, "en")

	for _, sheet := range first.GetSheetList() {
		a, err := first.GetRows(sheet)
		if err != nil {
			t.Fatalf("reading %s: %v", sheet, err)
		}
		b, err := second.GetRows(sheet)
		if err != nil {
			t.Fatalf("reading %s: %v", sheet, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("section %s differs between two exports of the same input", sheet)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		summary  *Summary
		expected string
	}{
		{"property name", &Summary{Building: &models.Building{PropertyName: "Kotkankatu 1"}}, "Kotkankatu_1.xlsx"},
		{"reserved characters replaced", &Summary{Building: &models.Building{PropertyName: `a/b:c?d`}}, "a_b_c_d.xlsx"},
		{"empty property name", &Summary{Building: &models.Building{}}, "unnamed.xlsx"},
		{"no building", &Summary{}, "unnamed.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileName(tt.summary); got != tt.expected {
				t.Errorf("FileName() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
