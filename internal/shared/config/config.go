package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"planets-core/internal/shared/utils"
)

type Config struct {
	Logging  LoggingConfig
	Universe UniverseConfig
	Scenario ScenarioConfig
}

type LoggingConfig struct {
	Level      string
	Format     string
	JSONFormat bool
}

type UniverseConfig struct {
	Width             int
	Height            int
	PlanetCount       int
	MinDistance       int
	SizeAwareDistance bool
	Seed              int64
	Players           []string
}

type ScenarioConfig struct {
	Path string
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

func load() (*Config, error) {
	config := &Config{
		Logging:  loadLoggingConfig(),
		Universe: loadUniverseConfig(),
		Scenario: loadScenarioConfig(),
	}

	return config, nil
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")
	jsonFormat := environment == "production"

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		Format:     utils.GetEnv("LOG_FORMAT", "text"),
		JSONFormat: jsonFormat,
	}
}

func loadUniverseConfig() UniverseConfig {
	width, _ := strconv.Atoi(utils.GetEnv("UNIVERSE_WIDTH", "150"))
	height, _ := strconv.Atoi(utils.GetEnv("UNIVERSE_HEIGHT", "150"))
	planetCount, _ := strconv.Atoi(utils.GetEnv("UNIVERSE_PLANET_COUNT", "10"))
	minDistance, _ := strconv.Atoi(utils.GetEnv("UNIVERSE_MIN_DISTANCE", "10"))
	seed, _ := strconv.ParseInt(utils.GetEnv("UNIVERSE_SEED", "0"), 10, 64)
	sizeAware := utils.GetEnv("UNIVERSE_SIZE_AWARE_DISTANCE", "false") == "true"

	return UniverseConfig{
		Width:             width,
		Height:            height,
		PlanetCount:       planetCount,
		MinDistance:       minDistance,
		SizeAwareDistance: sizeAware,
		Seed:              seed,
		Players:           splitNames(utils.GetEnv("UNIVERSE_PLAYERS", "Aaron,Peter")),
	}
}

func loadScenarioConfig() ScenarioConfig {
	return ScenarioConfig{
		Path: utils.GetEnv("SCENARIO_PATH", ""),
	}
}

func splitNames(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func (c *Config) validate() error {
	if c.Universe.Width <= 0 || c.Universe.Height <= 0 {
		return fmt.Errorf("UNIVERSE_WIDTH and UNIVERSE_HEIGHT must be positive")
	}

	if c.Universe.PlanetCount < 0 {
		return fmt.Errorf("UNIVERSE_PLANET_COUNT must not be negative")
	}

	if c.Universe.MinDistance < 0 {
		return fmt.Errorf("UNIVERSE_MIN_DISTANCE must not be negative")
	}

	return nil
}
