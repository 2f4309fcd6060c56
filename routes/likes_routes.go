package routes

import (
	"pawmate_server/controllers"
	"pawmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterLikesRoutes sets up routes for the likes inbox under /api/likes
func RegisterLikesRoutes(r *mux.Router, likesService *services.LikesInboxService) {
	controller := controllers.NewLikesController(likesService)

	likesRouter := r.PathPrefix("/api/likes").Subrouter()

	likesRouter.HandleFunc("/open", controller.HandleOpen).Methods("POST")
	likesRouter.HandleFunc("/react", controller.HandleAction).Methods("POST")
}
