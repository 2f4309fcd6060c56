package routes

import (
	"pawmate_server/controllers"
	"pawmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up routes for discovery sessions under /api/swipe
func RegisterSwipeRoutes(r *mux.Router, swipeService *services.SwipeService) {
	controller := controllers.NewSwipeController(swipeService)

	swipeRouter := r.PathPrefix("/api/swipe").Subrouter()

	swipeRouter.HandleFunc("/start", controller.HandleStart).Methods("POST")
	swipeRouter.HandleFunc("/react", controller.HandleReaction).Methods("POST")
	swipeRouter.HandleFunc("/report", controller.HandleReport).Methods("POST")
}
