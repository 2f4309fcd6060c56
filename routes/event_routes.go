package routes

import (
	"pawmate_server/controllers"
	"pawmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterEventRoutes sets up the public events listing under /api/events
func RegisterEventRoutes(r *mux.Router, eventService *services.EventService) {
	controller := controllers.NewEventController(eventService)

	r.HandleFunc("/api/events", controller.HandleListEvents).Methods("GET")
}
