package handlers

import (
	"encoding/json"
	"net/http"

	"purku.fi/survey/config"
	"purku.fi/survey/models"
)

// GetOwner returns the survey's owner information. 1:1 with the survey.
func GetOwner(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}
	var owner models.OwnerInformation
	if err := config.DB.First(&owner, "survey_id = ?", survey.ID).Error; err != nil {
		http.Error(w, "owner information not found", http.StatusNotFound)
		return
	}
	writeJSON(w, owner)
}

// UpsertOwner creates or replaces the survey's owner information.
func UpsertOwner(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}

	var payload models.OwnerInformation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var existing models.OwnerInformation
	err := config.DB.First(&existing, "survey_id = ?", survey.ID).Error
	if err != nil {
		payload.SurveyID = survey.ID
		if err := config.DB.Create(&payload).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, payload)
		return
	}

	payload.ID = existing.ID
	payload.SurveyID = survey.ID
	payload.CreatedAt = existing.CreatedAt
	if err := config.DB.Save(&payload).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, payload)
}
