package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"pawmate_server/models"
	"pawmate_server/services"

	"github.com/gorilla/mux"
)

// ProfileController handles HTTP requests for pet profiles
type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// CreatePetProfile creates or wholesale-replaces a profile
func (pc *ProfileController) CreatePetProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.PetProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if profile.UserID == "" || profile.PetName == "" {
		http.Error(w, "userId and petName are required", http.StatusBadRequest)
		return
	}
	if profile.Age <= 0 {
		http.Error(w, "Age must be a positive integer", http.StatusBadRequest)
		return
	}

	if err := pc.ProfileService.SaveProfile(r.Context(), profile); err != nil {
		log.Println("Error saving profile:", err)
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(profile)
}

// GetPetProfile fetches a profile by user ID
func (pc *ProfileController) GetPetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := pc.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		log.Println("Error fetching profile:", err)
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(profile)
}

// HasPetProfile is the existence gate used by the onboarding flow
func (pc *ProfileController) HasPetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := pc.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		log.Println("Error fetching profile:", err)
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"exists": profile != nil})
}

// UpdatePetProfile updates individual profile fields
func (pc *ProfileController) UpdatePetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var request struct {
		PetName       *string  `json:"petName"`
		Age           *int     `json:"age"`
		Breed         *string  `json:"breed"`
		About         *string  `json:"about"`
		PhotoRef      *string  `json:"photoRef"`
		ContactHandle *string  `json:"contactHandle"`
		Latitude      *float64 `json:"latitude"`
		Longitude     *float64 `json:"longitude"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if request.Age != nil && *request.Age <= 0 {
		http.Error(w, "Age must be a positive integer", http.StatusBadRequest)
		return
	}
	// location updates come as a pair or not at all
	if (request.Latitude == nil) != (request.Longitude == nil) {
		http.Error(w, "Latitude and longitude must be provided together", http.StatusBadRequest)
		return
	}

	existing, err := pc.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	updates := map[string]interface{}{}
	if request.PetName != nil {
		updates["petName"] = *request.PetName
	}
	if request.Age != nil {
		updates["age"] = *request.Age
	}
	if request.Breed != nil {
		updates["breed"] = *request.Breed
	}
	if request.About != nil {
		updates["about"] = *request.About
	}
	if request.PhotoRef != nil {
		updates["photoRef"] = *request.PhotoRef
	}
	if request.ContactHandle != nil {
		updates["contactHandle"] = *request.ContactHandle
	}
	if request.Latitude != nil {
		updates["latitude"] = *request.Latitude
		updates["longitude"] = *request.Longitude
	}
	if len(updates) == 0 {
		http.Error(w, "No fields to update", http.StatusBadRequest)
		return
	}

	updated, err := pc.ProfileService.UpdateProfileFields(r.Context(), userID, updates)
	if err != nil {
		log.Println("Error updating profile:", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(updated)
}

// DeletePetProfile removes the profile on user request
func (pc *ProfileController) DeletePetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := pc.ProfileService.DeleteProfile(r.Context(), userID); err != nil {
		log.Println("Error deleting profile:", err)
		http.Error(w, "Failed to delete profile", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Profile deleted"})
}
