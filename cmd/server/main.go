package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"weather-lookup-service/internal/adapters/openweather"
	"weather-lookup-service/internal/api"
	"weather-lookup-service/internal/config"
	"weather-lookup-service/internal/platform/logging"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the OpenWeather adapter behind ports and starts the HTTP server.
func main() {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := logging.Setup("weather", cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	if dotenvErr != nil {
		log.Println("level=info msg=\"No .env file found (using environment variables)\"")
	}
	for _, w := range cfg.Warnings() {
		log.Printf("level=warn msg=%q", w)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("level=error msg=\"invalid config\" err=%v", err)
	}

	client, err := openweather.NewClient(cfg.APIKey, openweather.Options{
		GeoBaseURL:     cfg.GeoBaseURL,
		WeatherBaseURL: cfg.WeatherBaseURL,
		Timeout:        cfg.HTTPTimeout,
	})
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(client, client, cfg.TemperatureUnit)

	// Write timeout leaves room for two sequential upstream calls.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.HTTPTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("level=info msg=\"server listening\" addr=:%s unit=%s", cfg.Port, cfg.TemperatureUnit)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("level=error msg=\"listen failed\" err=%v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("level=info msg=\"shutting down server\"")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("level=error msg=\"forced shutdown\" err=%v", err)
	}
}
