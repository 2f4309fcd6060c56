package routes

import (
	"pawmate_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for photo storage operations
func RegisterS3Routes(r *mux.Router) {
	r.HandleFunc("/generate-presigned-url", controllers.GeneratePresignedURL).Methods("POST")
	r.HandleFunc("/get-presigned-read-url", controllers.GetPresignedReadURL).Methods("POST")
}
