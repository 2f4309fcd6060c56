package routes

import (
	"pawmate_server/controllers"
	"pawmate_server/services"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes sets up the moderation routes under /api/admin
func RegisterAdminRoutes(r *mux.Router, adminService *services.AdminService, eventService *services.EventService) {
	controller := controllers.NewAdminController(adminService, eventService)

	adminRouter := r.PathPrefix("/api/admin").Subrouter()

	adminRouter.HandleFunc("/complaints", controller.HandleListComplaints).Methods("GET")
	adminRouter.HandleFunc("/complaints/resolve", controller.HandleResolveComplaint).Methods("POST")
	adminRouter.HandleFunc("/events", controller.HandleCreateEvent).Methods("POST")
}
