package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/campusgram/campusgram/database"
	"github.com/campusgram/campusgram/helpers"
	"github.com/campusgram/campusgram/router"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// getEnv reads key with a fallback for local runs
func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Get key-value in .env file
	godotenv.Load()

	port := getEnv("PORT", "8000")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := database.Connect(ctx,
		getEnv("MONGO_URL", "mongodb://localhost:27017"),
		getEnv("MONGO_DATABASE", "campusgram"))
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to mongodb")
	}
	defer store.Disconnect(context.Background())

	helpers.InitNATS()

	handler := &router.Handler{
		Store:     store,
		Cache:     database.NewCache(os.Getenv("MEM_URL")),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}

	// Create routes
	routes := router.New(handler)
	routes.Handle("/metrics", promhttp.HandlerFor(helpers.GetRegistry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// Count requests and their duration, except scrapes
	metrics := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			helpers.IncrementRequests(r.Method)

			next.ServeHTTP(w, r)

			helpers.ObserveRequestDuration(time.Since(start).Seconds())
		})
	}

	trace := helpers.InitTracer(port)

	log.Info().Msgf("server is starting on port %v", port)

	// Create web server
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router.CORS(metrics(trace(routes))),
		ReadHeaderTimeout: 3 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("unable to start server")
	}
}
