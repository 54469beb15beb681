package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"purku.fi/survey/models"
)

// RunAllSeeding populates the shared dictionaries and the bootstrap admin.
// Every step is idempotent and skips rows that already exist.
func RunAllSeeding() error {
	log.Println("=== Starting Database Seeding ===")

	log.Println("[1/4] Seeding building types...")
	SeedBuildingTypes()

	log.Println("[2/4] Seeding EWC categories and materials...")
	SeedWasteDictionaries()

	log.Println("[3/4] Seeding usages and specifiers...")
	SeedUsagesAndSpecifiers()

	log.Println("[4/4] Seeding admin user...")
	SeedAdminUser()

	log.Println("=== Database Seeding Complete ===")
	return nil
}

func fiEn(fi, en string) models.LocalizedNames {
	return models.LocalizedNames{
		{Language: "fi", Value: fi},
		{Language: "en", Value: en},
	}
}

// SeedBuildingTypes creates the default building classification entries.
func SeedBuildingTypes() {
	types := []models.BuildingType{
		{Code: "DETACHED_HOUSE", LocalizedNames: fiEn("Omakotitalo", "Detached house")},
		{Code: "APARTMENT_BLOCK", LocalizedNames: fiEn("Kerrostalo", "Apartment block")},
		{Code: "ROW_HOUSE", LocalizedNames: fiEn("Rivitalo", "Row house")},
		{Code: "OFFICE", LocalizedNames: fiEn("Toimistorakennus", "Office building")},
		{Code: "INDUSTRIAL", LocalizedNames: fiEn("Teollisuusrakennus", "Industrial building")},
		{Code: "WAREHOUSE", LocalizedNames: fiEn("Varastorakennus", "Warehouse")},
		{Code: "SCHOOL", LocalizedNames: fiEn("Koulurakennus", "School building")},
		{Code: "OTHER", LocalizedNames: fiEn("Muu rakennus", "Other building")},
	}
	for _, bt := range types {
		var count int64
		DB.Model(&models.BuildingType{}).Where("code = ?", bt.Code).Count(&count)
		if count == 0 {
			if err := DB.Create(&bt).Error; err != nil {
				log.Printf("Error seeding building type %s: %v", bt.Code, err)
			}
		}
	}
}

// SeedWasteDictionaries creates a starter set of EWC categories and the
// waste/hazardous materials under them.
func SeedWasteDictionaries() {
	categories := []models.WasteCategory{
		{EwcCode: "1701", LocalizedNames: fiEn("Betoni, tiilet, laatat ja keramiikka", "Concrete, bricks, tiles and ceramics")},
		{EwcCode: "1702", LocalizedNames: fiEn("Puu, lasi ja muovi", "Wood, glass and plastic")},
		{EwcCode: "1704", LocalizedNames: fiEn("Metallit", "Metals")},
		{EwcCode: "1706", LocalizedNames: fiEn("Eristysaineet ja asbestia sisältävät rakennusaineet", "Insulation and asbestos-containing construction materials")},
		{EwcCode: "1708", LocalizedNames: fiEn("Kipsipohjaiset rakennusaineet", "Gypsum-based construction materials")},
		{EwcCode: "1709", LocalizedNames: fiEn("Muut rakentamisessa ja purkamisessa syntyvät jätteet", "Other construction and demolition wastes")},
	}
	byCode := map[string]models.WasteCategory{}
	for _, c := range categories {
		var existing models.WasteCategory
		err := DB.Where("ewc_code = ?", c.EwcCode).First(&existing).Error
		if err != nil {
			if err := DB.Create(&c).Error; err != nil {
				log.Printf("Error seeding waste category %s: %v", c.EwcCode, err)
				continue
			}
			existing = c
		}
		byCode[existing.EwcCode] = existing
	}

	materials := []struct {
		category string
		spec     string
		names    models.LocalizedNames
	}{
		{"1701", "01", fiEn("Betoni", "Concrete")},
		{"1701", "02", fiEn("Tiilet", "Bricks")},
		{"1701", "03", fiEn("Laatat ja keramiikka", "Tiles and ceramics")},
		{"1702", "01", fiEn("Puu", "Wood")},
		{"1702", "02", fiEn("Lasi", "Glass")},
		{"1702", "03", fiEn("Muovi", "Plastic")},
		{"1704", "05", fiEn("Rauta ja teräs", "Iron and steel")},
		{"1704", "01", fiEn("Kupari, pronssi ja messinki", "Copper, bronze and brass")},
		{"1708", "02", fiEn("Kipsipohjaiset rakennusaineet", "Gypsum-based construction materials")},
		{"1709", "04", fiEn("Sekalaiset rakennus- ja purkujätteet", "Mixed construction and demolition wastes")},
	}
	for _, m := range materials {
		cat, ok := byCode[m.category]
		if !ok {
			continue
		}
		var count int64
		DB.Model(&models.WasteMaterial{}).
			Where("waste_category_id = ? AND ewc_specification_code = ?", cat.ID, m.spec).
			Count(&count)
		if count == 0 {
			wm := models.WasteMaterial{
				WasteCategoryID:      &cat.ID,
				EwcSpecificationCode: m.spec,
				LocalizedNames:       m.names,
			}
			if err := DB.Create(&wm).Error; err != nil {
				log.Printf("Error seeding waste material %s%s: %v", m.category, m.spec, err)
			}
		}
	}

	hazardous := []struct {
		category string
		spec     string
		names    models.LocalizedNames
	}{
		{"1706", "01", fiEn("Asbestia sisältävät eristysaineet", "Insulation containing asbestos")},
		{"1706", "05", fiEn("Asbestia sisältävät rakennusaineet", "Construction materials containing asbestos")},
		{"1709", "02", fiEn("PCB:tä sisältävät rakennus- ja purkujätteet", "Construction and demolition wastes containing PCB")},
		{"1709", "03", fiEn("Muut vaarallisia aineita sisältävät jätteet", "Other wastes containing hazardous substances")},
	}
	for _, m := range hazardous {
		cat, ok := byCode[m.category]
		if !ok {
			continue
		}
		var count int64
		DB.Model(&models.HazardousMaterial{}).
			Where("waste_category_id = ? AND ewc_specification_code = ?", cat.ID, m.spec).
			Count(&count)
		if count == 0 {
			hm := models.HazardousMaterial{
				WasteCategoryID:      &cat.ID,
				EwcSpecificationCode: m.spec,
				LocalizedNames:       m.names,
			}
			if err := DB.Create(&hm).Error; err != nil {
				log.Printf("Error seeding hazardous material %s%s: %v", m.category, m.spec, err)
			}
		}
	}
}

// SeedUsagesAndSpecifiers creates the disposal usage and waste specifier
// dictionaries plus a starter set of reusable materials.
func SeedUsagesAndSpecifiers() {
	usages := []models.LocalizedNames{
		fiEn("Murskataan täyttöaineeksi", "Crushed for backfill"),
		fiEn("Energiahyödyntäminen", "Energy recovery"),
		fiEn("Kierrätys materiaalina", "Recycled as material"),
		fiEn("Loppusijoitus kaatopaikalle", "Landfill disposal"),
	}
	var usageCount int64
	DB.Model(&models.Usage{}).Count(&usageCount)
	if usageCount == 0 {
		for _, names := range usages {
			u := models.Usage{LocalizedNames: names}
			if err := DB.Create(&u).Error; err != nil {
				log.Printf("Error seeding usage: %v", err)
			}
		}
	}

	specifiers := []models.LocalizedNames{
		fiEn("Sisältää asbestia", "Contains asbestos"),
		fiEn("Sisältää PCB:tä", "Contains PCB"),
		fiEn("Sisältää lyijyä", "Contains lead"),
		fiEn("Kreosiittikyllästetty", "Creosote impregnated"),
	}
	var specCount int64
	DB.Model(&models.WasteSpecifier{}).Count(&specCount)
	if specCount == 0 {
		for _, names := range specifiers {
			ws := models.WasteSpecifier{LocalizedNames: names}
			if err := DB.Create(&ws).Error; err != nil {
				log.Printf("Error seeding waste specifier: %v", err)
			}
		}
	}

	reusables := []models.LocalizedNames{
		fiEn("Tiili", "Brick"),
		fiEn("Hirsi", "Log timber"),
		fiEn("Teräsovi", "Steel door"),
		fiEn("Ikkuna", "Window"),
		fiEn("Kattotiili", "Roof tile"),
	}
	var rmCount int64
	DB.Model(&models.ReusableMaterial{}).Count(&rmCount)
	if rmCount == 0 {
		for _, names := range reusables {
			rm := models.ReusableMaterial{LocalizedNames: names}
			if err := DB.Create(&rm).Error; err != nil {
				log.Printf("Error seeding reusable material: %v", err)
			}
		}
	}
}

// SeedAdminUser bootstraps one admin account so a fresh install can log in.
// Credentials come from ADMIN_EMAIL/ADMIN_PASSWORD; skipped when unset.
func SeedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}
	admin := models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
	}
}
