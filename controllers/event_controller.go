package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"pawmate_server/models"
	"pawmate_server/services"
)

// EventController serves the public events listing
type EventController struct {
	EventService *services.EventService
}

// NewEventController creates a new EventController instance
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{EventService: eventService}
}

// HandleListEvents returns events happening today or later
func (ec *EventController) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := ec.EventService.ListUpcomingEvents(r.Context())
	if err != nil {
		log.Println("Error listing events:", err)
		http.Error(w, "Failed to list events", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	json.NewEncoder(w).Encode(events)
}
