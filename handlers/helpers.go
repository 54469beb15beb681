package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"purku.fi/survey/config"
	"purku.fi/survey/middleware"
	"purku.fi/survey/models"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// surveyFromRequest loads the survey addressed by the {surveyId} path
// variable and enforces ownership: surveyors see their own surveys, admins
// see all. Writes the error response itself when it returns false.
func surveyFromRequest(w http.ResponseWriter, r *http.Request) (*models.Survey, bool) {
	vars := mux.Vars(r)
	surveyID, err := uuid.Parse(vars["surveyId"])
	if err != nil {
		http.Error(w, "invalid survey id", http.StatusBadRequest)
		return nil, false
	}

	var survey models.Survey
	if err := config.DB.First(&survey, "id = ?", surveyID).Error; err != nil {
		http.Error(w, "survey not found", http.StatusNotFound)
		return nil, false
	}

	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return nil, false
	}
	if claims.Role != models.RoleAdmin && survey.CreatorID.String() != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return nil, false
	}
	return &survey, true
}

// pathID parses a uuid path variable, writing the error response on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
