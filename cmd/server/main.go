package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/fittrack/fittrack-backend/internal/config"
	"github.com/fittrack/fittrack-backend/internal/db"
	"github.com/fittrack/fittrack-backend/internal/handler"
	"github.com/fittrack/fittrack-backend/internal/middleware"
	"github.com/fittrack/fittrack-backend/internal/repository"
	"github.com/fittrack/fittrack-backend/internal/service"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Printf("database disconnect failed: %v", err)
		}
	}()

	database := client.Database(cfg.DBName)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("index bootstrap failed: %v", err)
	}

	exerciseRepo := repository.NewExerciseRepository(database)
	foodRepo := repository.NewFoodEntryRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	insightRepo := repository.NewInsightRepository(database)
	statusRepo := repository.NewStatusCheckRepository(database)

	insightService := service.NewInsightService(cfg.OpenAIKey, cfg.OpenAIModel)

	exerciseHandler := handler.NewExerciseHandler(exerciseRepo)
	nutritionHandler := handler.NewNutritionHandler(foodRepo)
	goalHandler := handler.NewGoalHandler(goalRepo)
	progressHandler := handler.NewProgressHandler(progressRepo)
	insightHandler := handler.NewInsightHandler(insightService, insightRepo)
	dashboardHandler := handler.NewDashboardHandler(exerciseRepo, foodRepo, goalRepo, progressRepo)
	statusHandler := handler.NewStatusHandler(statusRepo)

	r := mux.NewRouter()

	// Global middleware: CORS → Security Headers → MaxBytesReader
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
			next.ServeHTTP(w, r)
		})
	})

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.APIKeyMiddleware(cfg.APIKey))

	api.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"FitTrack API - Your AI-Powered Fitness Journey Tracker"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/nutrition/search", nutritionHandler.Search).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/status", statusHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/status", statusHandler.List).Methods(http.MethodGet, http.MethodOptions)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware())

	protected.HandleFunc("/exercises", exerciseHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/exercises", exerciseHandler.List).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/nutrition", nutritionHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/nutrition", nutritionHandler.List).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/goals", goalHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/goals", goalHandler.List).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/progress", progressHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/progress", progressHandler.List).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/ai/insights", insightHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/dashboard", dashboardHandler.Get).Methods(http.MethodGet, http.MethodOptions)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown failed: %v", err)
	}
}
