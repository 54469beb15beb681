package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"purku.fi/survey/config"
	"purku.fi/survey/models"
)

// GetBuilding returns the survey's building record. 1:1 with the survey.
func GetBuilding(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}
	var building models.Building
	if err := config.DB.First(&building, "survey_id = ?", survey.ID).Error; err != nil {
		http.Error(w, "building not found", http.StatusNotFound)
		return
	}
	writeJSON(w, building)
}

// UpsertBuilding creates or replaces the survey's building record.
func UpsertBuilding(w http.ResponseWriter, r *http.Request) {
	survey, ok := surveyFromRequest(w, r)
	if !ok {
		return
	}

	var payload models.Building
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := validateLocation(payload.Location); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var existing models.Building
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

// validateLocation checks that an optional building location is a GeoJSON
// point with sane coordinates.
func validateLocation(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	geometry, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return errors.New("location must be a GeoJSON geometry")
	}
	point, ok := geometry.Geometry().(orb.Point)
	if !ok {
		return errors.New("location must be a GeoJSON point")
	}
	if point.Lon() < -180 || point.Lon() > 180 || point.Lat() < -90 || point.Lat() > 90 {
		return errors.New("location coordinates out of range")
	}
	return nil
}
