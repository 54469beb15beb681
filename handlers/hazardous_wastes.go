package handlers

import (
	"encoding/json"
	"net/http"

	"purku.fi/survey/config"
	"purku.fi/survey/models"
)

func GetAllHazardousWastes(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}
	var items []models.HazardousWaste
	if err := config.DB.Where("survey_id = ?", survey.ID).Order("created_at").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func CreateHazardousWaste(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}
	var item models.HazardousWaste
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.SurveyID = survey.ID
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, item)
}

func GetHazardousWaste(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var item models.HazardousWaste
	if err := config.DB.Where("id = ? AND survey_id = ?", id, survey.ID).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, item)
}

func UpdateHazardousWaste(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var item models.HazardousWaste
	if err := config.DB.Where("id = ? AND survey_id = ?", id, survey.ID).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	var update models.HazardousWaste
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	update.ID = item.ID
	update.SurveyID = survey.ID
	update.CreatedAt = item.CreatedAt
	if err := config.DB.Save(&update).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, update)
}

func DeleteHazardousWaste(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	result := config.DB.Where("id = ? AND survey_id = ?", id, survey.ID).Delete(&models.HazardousWaste{})
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
