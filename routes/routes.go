package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogapi/handlers"
	"blogapi/middleware"
	"blogapi/monitoring"
	"blogapi/repositories"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	feedHandler *handlers.FeedHandler,
	systemHandler *handlers.SystemHandler,
	tokens repositories.TokenRepository,
) http.Handler {
	router := mux.NewRouter()

	// Open routes
	router.HandleFunc("/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/token", authHandler.Login).Methods("POST")
	router.HandleFunc("/health", systemHandler.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Everything below requires a valid token
	api := router.PathPrefix("/").Subrouter()
	api.Use(middleware.Auth(tokens))

	// User routes
	api.HandleFunc("/users", userHandler.List).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.Retrieve).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/follow", userHandler.FollowChange).Methods("POST", "DELETE")
	api.HandleFunc("/users/{id:[0-9]+}/following", userHandler.Following).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/followers", userHandler.Followers).Methods("GET")
	api.HandleFunc("/me", userHandler.Me).Methods("GET")
	api.HandleFunc("/me", userHandler.UpdateMe).Methods("PUT", "PATCH")
	api.HandleFunc("/me", userHandler.DeleteMe).Methods("DELETE")
	api.HandleFunc("/me/upload-photo", userHandler.UploadPhoto).Methods("POST", "DELETE")

	// Post routes
	api.HandleFunc("/posts", postHandler.List).Methods("GET")
	api.HandleFunc("/posts", postHandler.Create).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}", postHandler.Retrieve).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", postHandler.Update).Methods("PUT", "PATCH")
	api.HandleFunc("/posts/{id:[0-9]+}", postHandler.Delete).Methods("DELETE")
	api.HandleFunc("/posts/{id:[0-9]+}/upload-image", postHandler.UploadImage).Methods("POST", "DELETE")

	// Comment routes
	api.HandleFunc("/comments", commentHandler.List).Methods("GET")
	api.HandleFunc("/comments", commentHandler.Create).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}", commentHandler.Update).Methods("PUT", "PATCH")
	api.HandleFunc("/comments/{id:[0-9]+}", commentHandler.Delete).Methods("DELETE")

	// Feed route
	api.HandleFunc("/feed", feedHandler.GetFeed).Methods("GET")

	return monitoring.InstrumentHandler(router)
}
