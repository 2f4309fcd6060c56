package routes

import (
	"pawmate_server/controllers"
	"pawmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for profile operations under /api/profiles
func RegisterProfileRoutes(r *mux.Router, profileService *services.ProfileService) {
	controller := controllers.NewProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()

	profileRouter.HandleFunc("", controller.CreatePetProfile).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.GetPetProfile).Methods("GET")
	profileRouter.HandleFunc("/{userId}/exists", controller.HasPetProfile).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.UpdatePetProfile).Methods("PATCH")
	profileRouter.HandleFunc("/{userId}", controller.DeletePetProfile).Methods("DELETE")
}
