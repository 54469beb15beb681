package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"purku.fi/survey/config"
	"purku.fi/survey/middleware"
	"purku.fi/survey/models"
)

// GetAllSurveys lists surveys visible to the caller, optionally filtered by
// status and type query parameters. Admins see every survey.
func GetAllSurveys(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	query := config.DB.Model(&models.Survey{})
	if claims.Role != models.RoleAdmin {
		query = query.Where("creator_id = ?", claims.UserID)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if surveyType := r.URL.Query().Get("type"); surveyType != "" {
		query = query.Where("type = ?", surveyType)
	}

	var surveys []models.Survey
	if err := query.Order("updated_at DESC").Find(&surveys).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, surveys)
}

func CreateSurvey(w http.ResponseWriter, r *http.Request) {
	var survey models.Survey
	if err := json.NewDecoder(r.Body).Decode(&survey); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	claims := middleware.GetClaims(r)
	creatorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "invalid token subject", http.StatusUnauthorized)
		return
	}
	survey.ID = uuid.Nil
	survey.CreatorID = creatorID
	if survey.Type == "" {
		survey.Type = models.SurveyTypeDemolition
	}
	if survey.Status == "" {
		survey.Status = models.SurveyStatusDraft
	}

	if err := config.DB.Create(&survey).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, survey)
}

func GetSurvey(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, survey)
}

func UpdateSurvey(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}

	var update models.Survey
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	survey.Type = update.Type
	survey.Status = update.Status
	survey.StartDate = update.StartDate
	survey.EndDate = update.EndDate
	survey.MarkedAsDone = update.MarkedAsDone
	survey.AdditionalInformation = update.AdditionalInformation
	if survey.MarkedAsDone {
		survey.Status = models.SurveyStatusDone
	}

	if err := config.DB.Save(survey).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, survey)
}

func DeleteSurvey(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}
	if err := config.DB.Delete(survey).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
