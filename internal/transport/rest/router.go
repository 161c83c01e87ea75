package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/aaryashetye/survey-API/internal/repository"
	"github.com/aaryashetye/survey-API/internal/service"
	"github.com/aaryashetye/survey-API/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	AdminRepo       repository.AdminRepo
	SurveyorRepo    repository.SurveyorRepo
	ParticipantRepo repository.ParticipantRepo
	CycleRepo       repository.CycleRepo
	QuestionSetRepo repository.QuestionSetRepo
	ResponseRepo    repository.ResponseRepo
	AnalysisRepo    repository.AnalysisRepo
	SurveyService   *service.SurveyService
	ResponseService *service.ResponseService
	AnalysisService *service.AnalysisService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	adminHandler := handler.NewAdminHandler(c.AdminRepo)
	surveyorHandler := handler.NewSurveyorHandler(c.SurveyorRepo)
	participantHandler := handler.NewParticipantHandler(c.ParticipantRepo)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	cycleHandler := handler.NewCycleHandler(c.CycleRepo)
	questionHandler := handler.NewQuestionHandler(c.QuestionSetRepo)
	responseHandler := handler.NewResponseHandler(c.ResponseService, c.AnalysisService, c.ResponseRepo)
	analysisHandler := handler.NewAnalysisHandler(c.AnalysisRepo, c.AnalysisService)

	r.Use(corsMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/admins", adminHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/admins", adminHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/admins/{id}", adminHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/admins/{id}", adminHandler.Update).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/admins/{id}", adminHandler.Delete).Methods("DELETE", "OPTIONS")

	v1.HandleFunc("/surveyors", surveyorHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/surveyors", surveyorHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/surveyors/{id}", surveyorHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/surveyors/{id}", surveyorHandler.Update).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/surveyors/{id}", surveyorHandler.Delete).Methods("DELETE", "OPTIONS")

	v1.HandleFunc("/participants", participantHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/participants", participantHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/participants/{id}", participantHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/participants/{id}", participantHandler.Update).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/participants/{id}", participantHandler.Delete).Methods("DELETE", "OPTIONS")

	v1.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/surveys/{id}", surveyHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/surveys/{id}", surveyHandler.Update).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/surveys/{id}", surveyHandler.Delete).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/surveys/{id}/recalculate_counts", surveyHandler.RecalculateCounts).Methods("POST", "OPTIONS")

	v1.HandleFunc("/cycles", cycleHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/cycles", cycleHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/cycles/{id}", cycleHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/cycles/{id}", cycleHandler.Update).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/cycles/{id}", cycleHandler.Delete).Methods("DELETE", "OPTIONS")

	v1.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/questions", questionHandler.Put).Methods("POST", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/questions", questionHandler.GetBySurvey).Methods("GET", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/questions", questionHandler.DeleteBySurvey).Methods("DELETE", "OPTIONS")

	v1.HandleFunc("/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/responses", responseHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/responses/{id}", responseHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/responses/{id}", responseHandler.Update).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/responses/{id}", responseHandler.Delete).Methods("DELETE", "OPTIONS")

	v1.HandleFunc("/analysis", analysisHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/analysis", analysisHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/analysis/{id}", analysisHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/analysis/{id}", analysisHandler.Update).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/analysis/{id}", analysisHandler.Delete).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/map-pins", analysisHandler.MapPins).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
