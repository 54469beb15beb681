package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"purku.fi/survey/config"
	"purku.fi/survey/models"
)

// Dictionary CRUD. These tables are shared across surveys and maintained by
// admins; deleting an entry leaves existing references dangling on purpose,
// the export renders such lookups as empty values.

// ---- Building types ----

func GetAllBuildingTypes(w http.ResponseWriter, r *http.Request) {
	var items []models.BuildingType
	if err := config.DB.Order("code").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func CreateBuildingType(w http.ResponseWriter, r *http.Request) {
	var item models.BuildingType
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, item)
}

func UpdateBuildingType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var item models.BuildingType
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	var update models.BuildingType
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.Code = update.Code
	item.LocalizedNames = update.LocalizedNames
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, item)
}

func DeleteBuildingType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	deleteDictionaryRow(w, config.DB.Delete(&models.BuildingType{}, "id = ?", id))
}

// ---- Waste categories ----

func GetAllWasteCategories(w http.ResponseWriter, r *http.Request) {
	var items []models.WasteCategory
	if err := config.DB.Order("ewc_code").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func CreateWasteCategory(w http.ResponseWriter, r *http.Request) {
	var item models.WasteCategory
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, item)
}

func UpdateWasteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var item models.WasteCategory
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	var update models.WasteCategory
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.EwcCode = update.EwcCode
	item.LocalizedNames = update.LocalizedNames
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, item)
}

func DeleteWasteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	deleteDictionaryRow(w, config.DB.Delete(&models.WasteCategory{}, "id = ?", id))
}

// ---- Waste materials ----

func GetAllWasteMaterials(w http.ResponseWriter, r *http.Request) {
	var items []models.WasteMaterial
	if err := config.DB.Order("ewc_specification_code").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func CreateWasteMaterial(w http.ResponseWriter, r *http.Request) {
	var item models.WasteMaterial
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, item)
}

func UpdateWasteMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var item models.WasteMaterial
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	var update models.WasteMaterial
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.WasteCategoryID = update.WasteCategoryID
	item.EwcSpecificationCode = update.EwcSpecificationCode
	item.LocalizedNames = update.LocalizedNames
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, item)
}

func DeleteWasteMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	deleteDictionaryRow(w, config.DB.Delete(&models.WasteMaterial{}, "id = ?", id))
}

// ---- Hazardous materials ----

func GetAllHazardousMaterials(w http.ResponseWriter, r *http.Request) {
	var items []models.HazardousMaterial
	if err := config.DB.Order("ewc_specification_code").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func CreateHazardousMaterial(w http.ResponseWriter, r *http.Request) {
	var item models.HazardousMaterial
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, item)
}

func UpdateHazardousMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var item models.HazardousMaterial
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	var update models.HazardousMaterial
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.WasteCategoryID = update.WasteCategoryID
	item.EwcSpecificationCode = update.EwcSpecificationCode
	item.LocalizedNames = update.LocalizedNames
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, item)
}

func DeleteHazardousMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	deleteDictionaryRow(w, config.DB.Delete(&models.HazardousMaterial{}, "id = ?", id))
}

// ---- Reusable materials ----

func GetAllReusableMaterials(w http.ResponseWriter, r *http.Request) {
	var items []models.ReusableMaterial
	if err := config.DB.Order("created_at").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func CreateReusableMaterial(w http.ResponseWriter, r *http.Request) {
	var item models.ReusableMaterial
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, item)
}

func UpdateReusableMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var item models.ReusableMaterial
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	var update models.ReusableMaterial
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.LocalizedNames = update.LocalizedNames
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, item)
}

func DeleteReusableMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	deleteDictionaryRow(w, config.DB.Delete(&models.ReusableMaterial{}, "id = ?", id))
}

// ---- Usages ----

func GetAllUsages(w http.ResponseWriter, r *http.Request) {
	var items []models.Usage
	if err := config.DB.Order("created_at").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func CreateUsage(w http.ResponseWriter, r *http.Request) {
	var item models.Usage
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, item)
}

func UpdateUsage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var item models.Usage
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	var update models.Usage
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.LocalizedNames = update.LocalizedNames
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, item)
}

func DeleteUsage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	deleteDictionaryRow(w, config.DB.Delete(&models.Usage{}, "id = ?", id))
}

// ---- Waste specifiers ----

func GetAllWasteSpecifiers(w http.ResponseWriter, r *http.Request) {
	var items []models.WasteSpecifier
	if err := config.DB.Order("created_at").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func CreateWasteSpecifier(w http.ResponseWriter, r *http.Request) {
	var item models.WasteSpecifier
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, item)
}

func UpdateWasteSpecifier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var item models.WasteSpecifier
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	var update models.WasteSpecifier
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.LocalizedNames = update.LocalizedNames
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, item)
}

func DeleteWasteSpecifier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	deleteDictionaryRow(w, config.DB.Delete(&models.WasteSpecifier{}, "id = ?", id))
}

// deleteDictionaryRow writes the response for a dictionary delete result.
func deleteDictionaryRow(w http.ResponseWriter, result *gorm.DB) {
	if result.Error != nil {
		http.Error(w, result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
