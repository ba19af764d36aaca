package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"weather-lookup-service/internal/adapters/openweather"
	"weather-lookup-service/internal/config"
	"weather-lookup-service/internal/domain"
	"weather-lookup-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var unitFlag string

var rootCmd = &cobra.Command{
	Use:          "weathertool",
	Short:        "Look up current weather for a city from the command line",
	SilenceUsage: true,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <city>",
	Short: "Resolve a city and print its surfaced weather as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var convertCmd = &cobra.Command{
	Use:   "convert <kelvin>",
	Short: "Convert a Kelvin temperature to the configured unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&unitFlag, "unit", "u", "", "Temperature unit (defaults to TEMPERATURE_UNIT)")
	rootCmd.AddCommand(lookupCmd, convertCmd)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if unitFlag != "" {
		cfg.TemperatureUnit = unitFlag
	}
	for _, w := range cfg.Warnings() {
		log.Printf("level=warn msg=%q", w)
	}
	return cfg, nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := openweather.NewClient(cfg.APIKey, openweather.Options{
		GeoBaseURL:     cfg.GeoBaseURL,
		WeatherBaseURL: cfg.WeatherBaseURL,
		Timeout:        cfg.HTTPTimeout,
	})
	if err != nil {
		return err
	}

	res, err := services.SurfaceWeather(
		cmd.Context(),
		services.SurfaceWeatherRequest{City: args[0], Unit: cfg.TemperatureUnit},
		client,
		client,
	)
	if err != nil {
		return fmt.Errorf("lookup %q: %w", args[0], err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]string{
		"Description": res.Description,
		"Icon":        res.Icon,
		"Temperature": res.Temperature,
	})
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	kelvin, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("convert: parse kelvin %q: %w", args[0], err)
	}

	value, unit := domain.ConvertKelvin(kelvin, cfg.TemperatureUnit)
	fmt.Fprintln(cmd.OutOrStdout(), domain.FormatTemperature(value, unit))
	return nil
}
