package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"NAME" default:"fleetrental"`
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
	} `envconfig:"APP"`

	Data struct {
		Dir           string `envconfig:"DIR" default:"data"`
		CustomersFile string `envconfig:"CUSTOMERS_FILE" default:"customers.csv"`
		VehiclesFile  string `envconfig:"VEHICLES_FILE" default:"vehicles.csv"`
		BookingsFile  string `envconfig:"BOOKINGS_FILE" default:"bookings.csv"`
		ReportFile    string `envconfig:"REPORT_FILE" default:"fleet_report.pdf"`
	} `envconfig:"DATA"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET" default:"fleetrental-access"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET" default:"fleetrental-refresh"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN" default:"60"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"1440"`
	} `envconfig:"JWT"`

	Seed struct {
		AdminName     string `envconfig:"ADMIN_NAME" default:"Administrator"`
		AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@fleetrental.local"`
		AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
		AdminPassword string `envconfig:"ADMIN_PASSWORD" default:""`
	} `envconfig:"SEED"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
