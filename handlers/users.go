package handlers

import (
	"net/http"

	"purku.fi/survey/config"
	"purku.fi/survey/models"
)

// GetAllUsers lists registered users. Admin only.
func GetAllUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	if err := config.DB.Order("created_at").Find(&users).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, users)
}
