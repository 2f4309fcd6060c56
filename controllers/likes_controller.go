package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"pawmate_server/models"
	"pawmate_server/services"
)

// LikesController handles HTTP requests for the likes inbox
type LikesController struct {
	LikesService *services.LikesInboxService
}

// NewLikesController creates a new LikesController instance
func NewLikesController(likesService *services.LikesInboxService) *LikesController {
	return &LikesController{LikesService: likesService}
}

// HandleOpen drains pending mutual matches and shows the first inbound like
func (lc *LikesController) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	event, err := lc.LikesService.Open(r.Context(), request.UserID)
	if err != nil {
		log.Println("Error opening likes inbox:", err)
		http.Error(w, "Failed to open likes inbox", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(event)
}

// HandleAction applies reciprocate/skip/stop to the like entry on display
func (lc *LikesController) HandleAction(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID  string `json:"userId"`
		Action  string `json:"action"`
		LikerID string `json:"likerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.Action == "" {
		http.Error(w, "userId and action are required", http.StatusBadRequest)
		return
	}

	switch request.Action {
	case models.InboxReciprocate, models.InboxSkip:
		if request.LikerID == "" {
			http.Error(w, "likerId is required for reciprocate/skip", http.StatusBadRequest)
			return
		}
	case models.InboxStop:
	default:
		http.Error(w, "action must be reciprocate, skip or stop", http.StatusBadRequest)
		return
	}

	event, err := lc.LikesService.React(r.Context(), request.UserID, request.Action, request.LikerID)
	if err != nil {
		log.Println("Error processing inbox action:", err)
		http.Error(w, "Failed to process inbox action", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(event)
}
