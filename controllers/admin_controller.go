package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"pawmate_server/models"
	"pawmate_server/services"
)

// AdminController handles the allow-list gated moderation endpoints
type AdminController struct {
	AdminService *services.AdminService
	EventService *services.EventService
}

// NewAdminController creates a new AdminController instance
func NewAdminController(adminService *services.AdminService, eventService *services.EventService) *AdminController {
	return &AdminController{AdminService: adminService, EventService: eventService}
}

// HandleListComplaints lists open reports joined with the reported profiles
func (ac *AdminController) HandleListComplaints(w http.ResponseWriter, r *http.Request) {
	adminID := r.URL.Query().Get("adminId")
	if !ac.AdminService.IsAdmin(adminID) {
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}

	complaints, err := ac.AdminService.ListComplaints(r.Context())
	if err != nil {
		log.Println("Error listing complaints:", err)
		http.Error(w, "Failed to list complaints", http.StatusInternalServerError)
		return
	}
	if complaints == nil {
		complaints = []services.Complaint{}
	}

	json.NewEncoder(w).Encode(complaints)
}

// HandleResolveComplaint closes a report, optionally removing the profile
func (ac *AdminController) HandleResolveComplaint(w http.ResponseWriter, r *http.Request) {
	var request struct {
		AdminID  string `json:"adminId"`
		ReportID string `json:"reportId"`
		Action   string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if !ac.AdminService.IsAdmin(request.AdminID) {
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}
	if request.ReportID == "" {
		http.Error(w, "reportId is required", http.StatusBadRequest)
		return
	}
	if request.Action != services.ResolveRemoveProfile && request.Action != services.ResolveKeepProfile {
		http.Error(w, "action must be remove_profile or keep_profile", http.StatusBadRequest)
		return
	}

	if err := ac.AdminService.ResolveComplaint(r.Context(), request.ReportID, request.Action); err != nil {
		log.Println("Error resolving complaint:", err)
		http.Error(w, "Failed to resolve complaint", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Complaint resolved"})
}

// HandleCreateEvent announces a meetup, admins only
func (ac *AdminController) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var request struct {
		AdminID string       `json:"adminId"`
		Event   models.Event `json:"event"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if !ac.AdminService.IsAdmin(request.AdminID) {
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}
	if request.Event.Name == "" || request.Event.Date == "" {
		http.Error(w, "event name and date are required", http.StatusBadRequest)
		return
	}

	event, err := ac.EventService.AddEvent(r.Context(), request.Event)
	if err != nil {
		log.Println("Error creating event:", err)
		http.Error(w, "Failed to create event", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event)
}
