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
		Name     string `envconfig:"NAME" default:"Crown Inn Front Desk"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Timezone string `envconfig:"TIMEZONE"`
	} `envconfig:"APP"`

	Storage struct {
		// Path is the sqlite file backing the local key-value store.
		Path string `envconfig:"PATH" default:"frontdesk.db"`
		// Key is the well-known key the whole state envelope lives under.
		Key     string `envconfig:"KEY" default:"crownInnHotelData"`
		Version string `envconfig:"VERSION" default:"4.0"`
	} `envconfig:"STORAGE"`
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

		log.Info().Msg("Front desk configuration initialized successfully")
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
