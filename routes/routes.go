package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"purku.fi/survey/handlers"
	"purku.fi/survey/middleware"
	"purku.fi/survey/models"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.Profile).Methods("GET")
	api.HandleFunc("/files", handlers.UploadFile).Methods("POST")

	// Surveys
	api.HandleFunc("/surveys", handlers.GetAllSurveys).Methods("GET")
	api.HandleFunc("/surveys", handlers.CreateSurvey).Methods("POST")
	api.HandleFunc("/surveys/{surveyId}", handlers.GetSurvey).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}", handlers.UpdateSurvey).Methods("PUT")
	api.HandleFunc("/surveys/{surveyId}", handlers.DeleteSurvey).Methods("DELETE")

	// Document export
	api.HandleFunc("/surveys/{surveyId}/export", handlers.ExportSurvey).Methods("GET")

	// 1:1 sub-resources
	api.HandleFunc("/surveys/{surveyId}/building", handlers.GetBuilding).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}/building", handlers.UpsertBuilding).Methods("PUT")
	api.HandleFunc("/surveys/{surveyId}/owner", handlers.GetOwner).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}/owner", handlers.UpsertOwner).Methods("PUT")

	// Collection sub-resources
	api.HandleFunc("/surveys/{surveyId}/reusables", handlers.GetAllReusables).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}/reusables", handlers.CreateReusable).Methods("POST")
	api.HandleFunc("/surveys/{surveyId}/reusables/{id}", handlers.GetReusable).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}/reusables/{id}", handlers.UpdateReusable).Methods("PUT")
	api.HandleFunc("/surveys/{surveyId}/reusables/{id}", handlers.DeleteReusable).Methods("DELETE")

	api.HandleFunc("/surveys/{surveyId}/wastes", handlers.GetAllWastes).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}/wastes", handlers.CreateWaste).Methods("POST")
	api.HandleFunc("/surveys/{surveyId}/wastes/{id}", handlers.GetWaste).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}/wastes/{id}", handlers.UpdateWaste).Methods("PUT")
	api.HandleFunc("/surveys/{surveyId}/wastes/{id}", handlers.DeleteWaste).Methods("DELETE")

	api.HandleFunc("/surveys/{surveyId}/hazardous-wastes", handlers.GetAllHazardousWastes).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}/hazardous-wastes", handlers.CreateHazardousWaste).Methods("POST")
	api.HandleFunc("/surveys/{surveyId}/hazardous-wastes/{id}", handlers.GetHazardousWaste).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}/hazardous-wastes/{id}", handlers.UpdateHazardousWaste).Methods("PUT")
	api.HandleFunc("/surveys/{surveyId}/hazardous-wastes/{id}", handlers.DeleteHazardousWaste).Methods("DELETE")

	api.HandleFunc("/surveys/{surveyId}/surveyors", handlers.GetAllSurveyors).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}/surveyors", handlers.CreateSurveyor).Methods("POST")
	api.HandleFunc("/surveys/{surveyId}/surveyors/{id}", handlers.UpdateSurveyor).Methods("PUT")
	api.HandleFunc("/surveys/{surveyId}/surveyors/{id}", handlers.DeleteSurveyor).Methods("DELETE")

	api.HandleFunc("/surveys/{surveyId}/attachments", handlers.GetAllAttachments).Methods("GET")
	api.HandleFunc("/surveys/{surveyId}/attachments", handlers.CreateAttachment).Methods("POST")
	api.HandleFunc("/surveys/{surveyId}/attachments/{id}", handlers.DeleteAttachment).Methods("DELETE")

	// Dictionaries are readable by every authenticated user.
	api.HandleFunc("/building-types", handlers.GetAllBuildingTypes).Methods("GET")
	api.HandleFunc("/waste-categories", handlers.GetAllWasteCategories).Methods("GET")
	api.HandleFunc("/waste-materials", handlers.GetAllWasteMaterials).Methods("GET")
	api.HandleFunc("/hazardous-materials", handlers.GetAllHazardousMaterials).Methods("GET")
	api.HandleFunc("/reusable-materials", handlers.GetAllReusableMaterials).Methods("GET")
	api.HandleFunc("/usages", handlers.GetAllUsages).Methods("GET")
	api.HandleFunc("/waste-specifiers", handlers.GetAllWasteSpecifiers).Methods("GET")

	// =====================================================
	// Admin Routes (require admin role)
	// =====================================================
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(func(next http.Handler) http.Handler {
		return middleware.RequireRole([]string{models.RoleAdmin}, next)
	})
	registerAdminRoutes(admin)

	return r
}

// registerAdminRoutes registers dictionary maintenance and user listing.
func registerAdminRoutes(admin *mux.Router) {
	admin.HandleFunc("/users", handlers.GetAllUsers).Methods("GET")

	admin.HandleFunc("/building-types", handlers.CreateBuildingType).Methods("POST")
	admin.HandleFunc("/building-types/{id}", handlers.UpdateBuildingType).Methods("PUT")
	admin.HandleFunc("/building-types/{id}", handlers.DeleteBuildingType).Methods("DELETE")

	admin.HandleFunc("/waste-categories", handlers.CreateWasteCategory).Methods("POST")
	admin.HandleFunc("/waste-categories/{id}", handlers.UpdateWasteCategory).Methods("PUT")
	admin.HandleFunc("/waste-categories/{id}", handlers.DeleteWasteCategory).Methods("DELETE")

	admin.HandleFunc("/waste-materials", handlers.CreateWasteMaterial).Methods("POST")
	admin.HandleFunc("/waste-materials/{id}", handlers.UpdateWasteMaterial).Methods("PUT")
	admin.HandleFunc("/waste-materials/{id}", handlers.DeleteWasteMaterial).Methods("DELETE")

	admin.HandleFunc("/hazardous-materials", handlers.CreateHazardousMaterial).Methods("POST")
	admin.HandleFunc("/hazardous-materials/{id}", handlers.UpdateHazardousMaterial).Methods("PUT")
	admin.HandleFunc("/hazardous-materials/{id}", handlers.DeleteHazardousMaterial).Methods("DELETE")

	admin.HandleFunc("/reusable-materials", handlers.CreateReusableMaterial).Methods("POST")
	admin.HandleFunc("/reusable-materials/{id}", handlers.UpdateReusableMaterial).Methods("PUT")
	admin.HandleFunc("/reusable-materials/{id}", handlers.DeleteReusableMaterial).Methods("DELETE")

	admin.HandleFunc("/usages", handlers.CreateUsage).Methods("POST")
	admin.HandleFunc("/usages/{id}", handlers.UpdateUsage).Methods("PUT")
	admin.HandleFunc("/usages/{id}", handlers.DeleteUsage).Methods("DELETE")

	admin.HandleFunc("/waste-specifiers", handlers.CreateWasteSpecifier).Methods("POST")
	admin.HandleFunc("/waste-specifiers/{id}", handlers.UpdateWasteSpecifier).Methods("PUT")
	admin.HandleFunc("/waste-specifiers/{id}", handlers.DeleteWasteSpecifier).Methods("DELETE")
}
