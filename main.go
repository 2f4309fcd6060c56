package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"pawmate_server/routes"
	"pawmate_server/services"
	"pawmate_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Notification gateway
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	notifier := &socket.SocketNotifier{Server: socketServer}

	// Initialize Services
	profileService := &services.ProfileService{Dynamo: dynamoService}
	relationshipService := &services.RelationshipService{Dynamo: dynamoService}
	reportService := &services.ReportService{Dynamo: dynamoService}
	eventService := &services.EventService{Dynamo: dynamoService}

	sessionStore := services.NewSessionStore()
	candidateService := &services.CandidateService{
		Profiles: profileService,
		Ledger:   relationshipService,
	}
	swipeService := &services.SwipeService{
		Candidates: candidateService,
		Profiles:   profileService,
		Ledger:     relationshipService,
		Reports:    reportService,
		Notifier:   notifier,
		Sessions:   sessionStore,
	}
	likesService := &services.LikesInboxService{
		Profiles: profileService,
		Ledger:   relationshipService,
		Notifier: notifier,
		Sessions: sessionStore,
	}
	adminService := services.NewAdminService(profileService, reportService, notifier)

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to PawMate")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Notification socket endpoint
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterProfileRoutes(r, profileService)
	routes.RegisterSwipeRoutes(r, swipeService)
	routes.RegisterLikesRoutes(r, likesService)
	routes.RegisterEventRoutes(r, eventService)
	routes.RegisterAdminRoutes(r, adminService, eventService)
	routes.RegisterS3Routes(r)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
