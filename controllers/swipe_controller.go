package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"pawmate_server/models"
	"pawmate_server/services"
)

// SwipeController handles HTTP requests for discovery sessions
type SwipeController struct {
	SwipeService *services.SwipeService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(swipeService *services.SwipeService) *SwipeController {
	return &SwipeController{SwipeService: swipeService}
}

// HandleStart begins a discovery session and shows the first candidate
func (sc *SwipeController) HandleStart(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Mode   string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	if request.Mode != models.ModeNearby && request.Mode != models.ModeAll {
		http.Error(w, "mode must be 'nearby' or 'all'", http.StatusBadRequest)
		return
	}

	event, err := sc.SwipeService.Start(r.Context(), request.UserID, request.Mode)
	if err != nil {
		log.Println("Error starting discovery session:", err)
		http.Error(w, "Failed to start browsing", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(event)
}

// HandleReaction applies like/dislike/stop/report to the candidate on display
func (sc *SwipeController) HandleReaction(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		Action   string `json:"action"`
		TargetID string `json:"targetId"`
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
	case models.ReactionLike, models.ReactionDislike:
		if request.TargetID == "" {
			http.Error(w, "targetId is required for like/dislike", http.StatusBadRequest)
			return
		}
	case models.ReactionStop, models.ReactionReport:
	default:
		http.Error(w, "action must be like, dislike, stop or report", http.StatusBadRequest)
		return
	}

	event, err := sc.SwipeService.React(r.Context(), request.UserID, request.Action, request.TargetID)
	if err != nil {
		log.Println("Error processing reaction:", err)
		http.Error(w, "Failed to process reaction", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(event)
}

// HandleReport captures the free-text reason completing a pending report
func (sc *SwipeController) HandleReport(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.Reason == "" {
		http.Error(w, "userId and reason are required", http.StatusBadRequest)
		return
	}

	event, err := sc.SwipeService.SubmitReport(r.Context(), request.UserID, request.Reason)
	if err != nil {
		log.Println("Error filing report:", err)
		http.Error(w, "Failed to file report", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(event)
}
